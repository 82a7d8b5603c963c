package form

import (
	"time"

	"commentbox/internal/comment"
	"commentbox/internal/model"
	"commentbox/internal/thread"
	"commentbox/internal/validate"

	"go.uber.org/zap"
)

// Focus asks the view to move input focus to Field. Deferred focus must run
// after the triggering event has been fully handled.
type Focus struct {
	Field    validate.Field
	Deferred bool
}

type Outcome struct {
	// Ignored is set when a submission arrived while another was in flight.
	Ignored bool

	Comment model.Comment
	Index   int

	Err   *validate.Error
	Focus *Focus
}

func (o Outcome) Accepted() bool { return !o.Ignored && o.Err == nil }

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithIDs(next func() string) Option {
	return func(c *Controller) { c.newID = next }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithImmediateFocus focuses failing fields synchronously instead of via a
// deferred callback.
func WithImmediateFocus() Option {
	return func(c *Controller) { c.deferFocus = false }
}

type Controller struct {
	settings model.Settings
	form     *Form
	thread   *thread.Thread

	now        func() time.Time
	newID      func() string
	log        *zap.Logger
	deferFocus bool
}

func NewController(settings model.Settings, f *Form, th *thread.Thread, opts ...Option) *Controller {
	c := &Controller{
		settings:   settings,
		form:       f,
		thread:     th,
		now:        time.Now,
		newID:      func() string { return "" },
		log:        zap.NewNop(),
		deferFocus: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Form() *Form { return c.form }

func (c *Controller) Thread() *thread.Thread { return c.thread }

func (c *Controller) Settings() model.Settings { return c.settings }

type submission struct {
	name string
	text string
	date time.Time
	now  time.Time
}

type step struct {
	field validate.Field
	run   func(c *Controller, s *submission) validate.Code
}

// pipeline runs in order; the first non-empty code rejects the submission.
var pipeline = []step{
	{validate.FieldName, func(_ *Controller, s *submission) validate.Code {
		if validate.IsBlank(s.name) {
			return validate.CodeNameEmpty
		}
		return ""
	}},
	{validate.FieldText, func(_ *Controller, s *submission) validate.Code {
		if validate.IsBlank(s.text) {
			return validate.CodeTextEmpty
		}
		return ""
	}},
	{validate.FieldDate, func(c *Controller, s *submission) validate.Code {
		d, ok := validate.ParseDateIn(c.form.Value(validate.FieldDate), s.now.Location())
		if !ok {
			return validate.CodeDateBad
		}
		s.date = d
		return ""
	}},
	{validate.FieldDate, func(c *Controller, s *submission) validate.Code {
		if !c.settings.AllowFutureDate && validate.IsFutureDate(s.date, s.now) {
			return validate.CodeDateFuture
		}
		return ""
	}},
}

// Submit validates the form and, on success, inserts the new comment into
// the thread. Field values are left untouched on failure.
func (c *Controller) Submit() Outcome {
	if c.form.Locked() {
		return Outcome{Ignored: true}
	}
	c.form.lock()
	defer c.form.unlock()

	s := &submission{
		name: c.form.Value(validate.FieldName),
		text: c.form.Value(validate.FieldText),
		now:  c.now(),
	}

	for _, st := range pipeline {
		code := st.run(c, s)
		if code == "" {
			continue
		}
		verr := &validate.Error{Code: code, Field: st.field}
		c.form.show(verr)
		c.log.Debug("submit rejected",
			zap.String("code", string(code)),
			zap.Stringer("field", st.field),
			zap.Stringer("kind", verr.Kind()),
		)
		return Outcome{
			Err:   verr,
			Focus: &Focus{Field: st.field, Deferred: c.deferFocus},
		}
	}

	at := time.Date(s.date.Year(), s.date.Month(), s.date.Day(), s.now.Hour(), s.now.Minute(), 0, 0, s.now.Location())
	cm := comment.New(c.newID(), s.name, s.text, at)
	idx := c.thread.Insert(cm)

	c.log.Debug("submit accepted",
		zap.String("id", cm.ID),
		zap.Int64("timestamp", cm.Timestamp),
		zap.Int("index", idx),
		zap.Stringer("order", c.thread.Order()),
	)
	return Outcome{Comment: cm, Index: idx}
}
