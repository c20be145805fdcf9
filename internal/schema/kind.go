package schema

//go:generate go tool stringer -type=PayloadKind -linecomment -output=kind_string.go

// PayloadKind classifies the top-level form of a payload type expression.
type PayloadKind int

const (
	PayloadKindOther     PayloadKind = iota // other
	PayloadKindNamed                        // named
	PayloadKindQualified                    // qualified
	PayloadKindPointer                      // pointer
	PayloadKindSlice                        // slice
	PayloadKindArray                        // array
	PayloadKindMap                          // map
	PayloadKindChan                         // chan
)
