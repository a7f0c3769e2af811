package token

// Delimiters of the wire format.
const (
	IntStart  byte = 'i'
	ListStart byte = 'l'
	DictStart byte = 'd'
	End       byte = 'e'
	Colon     byte = ':'
	Minus     byte = '-'
)

// Kind is the kind of value a leading byte introduces.
type Kind int

const (
	Invalid Kind = iota
	Int
	String
	List
	Dict
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "string"
	case List:
		return "list"
	case Dict:
		return "dict"
	default:
		return "invalid"
	}
}

// Classify reports the kind of value started by the first byte of d. An
// empty slice is Invalid.
func Classify(d []byte) Kind {
	if len(d) == 0 {
		return Invalid
	}
	switch c := d[0]; {
	case c == IntStart:
		return Int
	case c == ListStart:
		return List
	case c == DictStart:
		return Dict
	case IsDigit(c):
		return String
	default:
		return Invalid
	}
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
