package form

import "commentbox/internal/validate"

// Notification is a one-shot error balloon anchored below a form field.
type Notification struct {
	Field   validate.Field
	Code    validate.Code
	Message string
}

func (f *Form) Notification(fd validate.Field) (Notification, bool) {
	n, ok := f.notes[fd]
	return n, ok
}

func (f *Form) show(err *validate.Error) Notification {
	n := Notification{Field: err.Field, Code: err.Code, Message: err.Message()}
	f.notes[err.Field] = n
	if x, ok := f.fields[err.Field]; ok {
		x.dirty = false
	}
	return n
}
