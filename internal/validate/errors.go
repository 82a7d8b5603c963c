package validate

import "fmt"

type Field int

const (
	FieldName Field = iota
	FieldText
	FieldDate
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldText:
		return "text"
	case FieldDate:
		return "date"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

type Kind int

const (
	KindEmptyField Kind = iota
	KindUnparseableDate
	KindFutureDateRejected
)

func (k Kind) String() string {
	switch k {
	case KindEmptyField:
		return "EmptyField"
	case KindUnparseableDate:
		return "UnparseableDate"
	case KindFutureDateRejected:
		return "FutureDateRejected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Code string

const (
	CodeNameEmpty  Code = "name-empty"
	CodeTextEmpty  Code = "text-empty"
	CodeDateBad    Code = "date-bad"
	CodeDateFuture Code = "date-future"
)

const FallbackMessage = "Error!"

var messages = map[Code]string{
	CodeNameEmpty:  "Field 'Name' must not be empty",
	CodeTextEmpty:  "Field 'Text' must not be empty",
	CodeDateFuture: "Field 'Date' must not point to a future date",
	CodeDateBad:    "Field 'Date' is not a valid date",
}

// Message returns the user-facing text for code, or FallbackMessage.
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return FallbackMessage
}

// Error is a user-input validation failure anchored to a form field.
type Error struct {
	Code  Code
	Field Field
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message())
}

func (e *Error) Message() string { return Message(e.Code) }

func (e *Error) Kind() Kind {
	switch e.Code {
	case CodeDateBad:
		return KindUnparseableDate
	case CodeDateFuture:
		return KindFutureDateRejected
	default:
		return KindEmptyField
	}
}
