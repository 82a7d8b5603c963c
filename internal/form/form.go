package form

import (
	"commentbox/internal/validate"
)

// InputKind decides when a field's notification is dismissed.
type InputKind int

const (
	// InputTyping fields drop their notification on the next value change.
	InputTyping InputKind = iota
	// InputPicker fields drop it on the next completed change (Commit).
	InputPicker
)

type field struct {
	kind  InputKind
	value string
	// dirty is set by input events since the last change event or
	// notification on this field.
	dirty bool
}

// Form holds the raw field values, the lock flag, and the per-field
// notifications.
type Form struct {
	fields map[validate.Field]*field
	notes  map[validate.Field]Notification
	locked bool
}

func New(dateKind InputKind) *Form {
	return &Form{
		fields: map[validate.Field]*field{
			validate.FieldName: {kind: InputTyping},
			validate.FieldText: {kind: InputTyping},
			validate.FieldDate: {kind: dateKind},
		},
		notes: map[validate.Field]Notification{},
	}
}

func (f *Form) Locked() bool { return f.locked }

func (f *Form) Kind(fd validate.Field) InputKind {
	if x, ok := f.fields[fd]; ok {
		return x.kind
	}
	return InputTyping
}

func (f *Form) Value(fd validate.Field) string {
	if x, ok := f.fields[fd]; ok {
		return x.value
	}
	return ""
}

// SetValue records an input event. It is ignored while the form is locked
// and reports whether the value was applied.
func (f *Form) SetValue(fd validate.Field, v string) bool {
	if f.locked {
		return false
	}
	x, ok := f.fields[fd]
	if !ok {
		return false
	}
	if x.value == v {
		return true
	}
	x.value = v
	x.dirty = true
	if x.kind == InputTyping {
		delete(f.notes, fd)
	}
	return true
}

// Commit records a completed change event (picker step, leaving the field).
// It only counts when input events changed the value since the last change
// event or notification.
func (f *Form) Commit(fd validate.Field) {
	x, ok := f.fields[fd]
	if !ok || f.locked || !x.dirty {
		return
	}
	x.dirty = false
	delete(f.notes, fd)
}

// Prefill sets an initial value; it is not an input event.
func (f *Form) Prefill(fd validate.Field, v string) {
	if x, ok := f.fields[fd]; ok {
		x.value = v
		x.dirty = false
	}
}

func (f *Form) lock()   { f.locked = true }
func (f *Form) unlock() { f.locked = false }
