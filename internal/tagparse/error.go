package tagparse

import (
	"fmt"
	"strings"
)

// Error reports a malformed language tag. Msg is the full explanation;
// Subtag and Offset locate the piece that did not fit the grammar.
type Error struct {
	Subtag string
	Offset uint32
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func subtagError(subtag string, offset uint32, expected string) error {
	return &Error{
		Subtag: subtag,
		Offset: offset,
		Msg:    fmt.Sprintf("expected %s, got %q", expected, subtag),
	}
}

// orderError reports a well-shaped subtag appearing after its allowed
// position, listing everything still acceptable there.
func orderError(subtag string, offset uint32, got, expect position) error {
	options := positionNames[expect:]
	var expected string
	switch len(options) {
	case 1:
		expected = options[0]
	case 2:
		expected = options[0] + " or " + options[1]
	default:
		expected = strings.Join(options[:len(options)-1], ", ") + ", or " + options[len(options)-1]
	}
	return &Error{
		Subtag: subtag,
		Offset: offset,
		Msg: fmt.Sprintf("this %s subtag, %q, is out of place: expected %s",
			positionNames[got], subtag, expected),
	}
}
