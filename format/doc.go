// Package format names the document formats the command line tools read
// and write.
package format
