package dump

type DumpOption func(*dumpOpts)

type dumpOpts struct {
	truncate int
	colors   *Colors
}

// Truncate limits rendered strings to their first n bytes, followed by a
// marker giving the full length. n <= 0 disables truncation.
func Truncate(n int) DumpOption {
	return func(o *dumpOpts) { o.truncate = n }
}

// DumpColors colours the output with c. A nil c turns colouring off.
func DumpColors(c *Colors) DumpOption {
	return func(o *dumpOpts) { o.colors = c }
}
