package outcome

// Kind discriminates a Result. The zero value is OK.
type Kind int

const (
	OK Kind = iota
	NotFound
	PermissionDenied
	MalformedContent
	InvalidOperandType
	OutOfRange
	DivideByZero
	Unclassified
)

var kindNames = map[Kind]string{
	OK:                 "ok",
	NotFound:           "not-found",
	PermissionDenied:   "permission-denied",
	MalformedContent:   "malformed-content",
	InvalidOperandType: "invalid-operand-type",
	OutOfRange:         "out-of-range",
	DivideByZero:       "divide-by-zero",
	Unclassified:       "unclassified",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unclassified]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
