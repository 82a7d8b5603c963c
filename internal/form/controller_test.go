package form

import (
	"fmt"
	"testing"
	"time"

	"commentbox/internal/model"
	"commentbox/internal/thread"
	"commentbox/internal/validate"
)

var testNow = time.Date(2024, time.May, 10, 14, 37, 12, 0, time.UTC)

func newTestController(t *testing.T, settings model.Settings, opts ...Option) *Controller {
	t.Helper()
	n := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDs(func() string { n++; return fmt.Sprintf("c%d", n) }),
	}
	return NewController(settings, New(InputPicker), thread.New(settings.OrderOfComments), append(base, opts...)...)
}

func fill(c *Controller, name, text, date string) {
	f := c.Form()
	f.SetValue(validate.FieldName, name)
	f.SetValue(validate.FieldText, text)
	f.SetValue(validate.FieldDate, date)
}

func TestSubmit_RejectsInPipelineOrder(t *testing.T) {
	t.Parallel()

	noFuture := model.DefaultSettings()
	noFuture.AllowFutureDate = false

	tests := []struct {
		name      string
		settings  model.Settings
		fields    [3]string
		wantCode  validate.Code
		wantField validate.Field
	}{
		{"empty name wins over everything", noFuture, [3]string{"  ", "", "bogus"}, validate.CodeNameEmpty, validate.FieldName},
		{"blank text", noFuture, [3]string{"Ann", "\n\t", "bogus"}, validate.CodeTextEmpty, validate.FieldText},
		{"bad date", noFuture, [3]string{"Ann", "hi", "2024-02-30"}, validate.CodeDateBad, validate.FieldDate},
		{"future date rejected", noFuture, [3]string{"Ann", "hi", "2024-05-11"}, validate.CodeDateFuture, validate.FieldDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newTestController(t, tt.settings)
			fill(c, tt.fields[0], tt.fields[1], tt.fields[2])

			out := c.Submit()
			if out.Accepted() {
				t.Fatalf("expected rejection")
			}
			if out.Err.Code != tt.wantCode || out.Err.Field != tt.wantField {
				t.Fatalf("got %s on %s, want %s on %s", out.Err.Code, out.Err.Field, tt.wantCode, tt.wantField)
			}
			if out.Focus == nil || out.Focus.Field != tt.wantField || !out.Focus.Deferred {
				t.Fatalf("unexpected focus request: %+v", out.Focus)
			}
			n, ok := c.Form().Notification(tt.wantField)
			if !ok || n.Message != validate.Message(tt.wantCode) {
				t.Fatalf("expected notification %q on %s, got %+v (ok=%v)", validate.Message(tt.wantCode), tt.wantField, n, ok)
			}
			if c.Form().Locked() {
				t.Fatalf("form must be unlocked after rejection")
			}
			if c.Thread().Len() != 0 {
				t.Fatalf("thread must stay empty, got %d", c.Thread().Len())
			}
		})
	}
}

func TestSubmit_EmptyNameLeavesOtherFieldsAndList(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	fill(c, "Ann", "first", "2024-05-01")
	if out := c.Submit(); !out.Accepted() {
		t.Fatalf("seed submit rejected: %v", out.Err)
	}

	fill(c, "", "second", "2024.05.02")
	out := c.Submit()
	if out.Err == nil || out.Err.Code != validate.CodeNameEmpty {
		t.Fatalf("expected name-empty, got %+v", out)
	}
	if got := c.Form().Value(validate.FieldText); got != "second" {
		t.Fatalf("text changed: %q", got)
	}
	if got := c.Form().Value(validate.FieldDate); got != "2024.05.02" {
		t.Fatalf("date changed: %q", got)
	}
	if c.Thread().Len() != 1 {
		t.Fatalf("list count changed: %d", c.Thread().Len())
	}
}

func TestSubmit_FutureDateAllowedByDefault(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	fill(c, "Ann", "from the future", "2030-01-01")
	if out := c.Submit(); !out.Accepted() {
		t.Fatalf("expected acceptance, got %v", out.Err)
	}
}

func TestSubmit_TodayIsNotFuture(t *testing.T) {
	t.Parallel()

	s := model.DefaultSettings()
	s.AllowFutureDate = false
	c := newTestController(t, s)
	fill(c, "Ann", "today", "2024-05-10")
	if out := c.Submit(); !out.Accepted() {
		t.Fatalf("expected today to be accepted, got %v", out.Err)
	}
}

func TestSubmit_StampsCurrentHourAndMinute(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	fill(c, "Ann", "hello", "2024.03.07")

	out := c.Submit()
	if !out.Accepted() {
		t.Fatalf("rejected: %v", out.Err)
	}
	want := time.Date(2024, time.March, 7, 14, 37, 0, 0, time.UTC)
	if out.Comment.Timestamp != want.UnixMilli() {
		t.Fatalf("timestamp = %v, want %v", out.Comment.At().UTC(), want)
	}
	if out.Comment.ID != "c1" || out.Comment.Name != "Ann" || out.Comment.Text != "hello" {
		t.Fatalf("unexpected comment: %+v", out.Comment)
	}
	if out.Focus != nil {
		t.Fatalf("accepted submit must not request focus")
	}
	if got, ok := c.Thread().Find("c1"); !ok || got.Timestamp != want.UnixMilli() {
		t.Fatalf("comment not inserted: %+v %v", got, ok)
	}
}

func TestSubmit_InsertsUsingOrdering(t *testing.T) {
	t.Parallel()

	s := model.DefaultSettings()
	s.OrderOfComments = model.OrderNewestFirst
	c := newTestController(t, s)

	for _, d := range []string{"2024-05-01", "2024-05-03", "2024-05-02"} {
		fill(c, "Ann", d, d)
		if out := c.Submit(); !out.Accepted() {
			t.Fatalf("%s rejected: %v", d, out.Err)
		}
	}
	var got []string
	for _, cm := range c.Thread().Comments() {
		got = append(got, cm.Text)
	}
	want := []string{"2024-05-03", "2024-05-02", "2024-05-01"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSubmit_IgnoredWhileLocked(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	fill(c, "Ann", "hi", "2024-05-01")
	c.Form().lock()
	if out := c.Submit(); !out.Ignored || out.Accepted() {
		t.Fatalf("expected ignored outcome, got %+v", out)
	}
	if c.Form().SetValue(validate.FieldName, "Bob") {
		t.Fatalf("edits must be rejected while locked")
	}
	c.Form().unlock()
	if got := c.Form().Value(validate.FieldName); got != "Ann" {
		t.Fatalf("name = %q, want Ann", got)
	}
}

func TestSubmit_ImmediateFocusOption(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings(), WithImmediateFocus())
	out := c.Submit()
	if out.Focus == nil || out.Focus.Deferred {
		t.Fatalf("expected immediate focus, got %+v", out.Focus)
	}
}

func TestNotification_TypingFieldDismissedOnNextInput(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	c.Submit()
	if _, ok := c.Form().Notification(validate.FieldName); !ok {
		t.Fatalf("expected name notification")
	}
	c.Form().SetValue(validate.FieldName, "A")
	if _, ok := c.Form().Notification(validate.FieldName); ok {
		t.Fatalf("expected name notification to be dismissed by typing")
	}
}

func TestNotification_PickerFieldDismissedOnCommit(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	f := c.Form()
	f.Prefill(validate.FieldDate, "2024-05-10")
	fill(c, "Ann", "hi", "nope")
	c.Submit()
	if _, ok := f.Notification(validate.FieldDate); !ok {
		t.Fatalf("expected date notification")
	}

	f.SetValue(validate.FieldDate, "2024-05-09")
	if _, ok := f.Notification(validate.FieldDate); !ok {
		t.Fatalf("picker notification must survive a plain input event")
	}
	f.Commit(validate.FieldDate)
	if _, ok := f.Notification(validate.FieldDate); ok {
		t.Fatalf("expected date notification to be dismissed on commit")
	}
}

func TestNotification_CommitWithoutChangeKeepsNotification(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	f := c.Form()
	fill(c, "Ann", "hi", "nope")
	f.Commit(validate.FieldDate)
	c.Submit()

	f.Commit(validate.FieldDate)
	if _, ok := f.Notification(validate.FieldDate); !ok {
		t.Fatalf("commit without a value change must not dismiss")
	}
}

func TestNotification_EditsBeforeRejectionDoNotCount(t *testing.T) {
	t.Parallel()

	c := newTestController(t, model.DefaultSettings())
	fill(c, "Ann", "hi", "2024-99-01")
	c.Submit()

	// Leaving the field right after the rejection is not a new change.
	c.Form().Commit(validate.FieldDate)
	if _, ok := c.Form().Notification(validate.FieldDate); !ok {
		t.Fatalf("notification dismissed by a change made before it was shown")
	}
}
