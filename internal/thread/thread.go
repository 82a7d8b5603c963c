package thread

import (
	"slices"
	"sort"

	"commentbox/internal/model"
)

const (
	MarkerEmpty = "comments__empty"
	MarkerList  = "comments__list"

	EmptyPlaceholder = "The comment list is empty..."
)

// State is the visual state of the comment container.
type State struct {
	Empty       bool
	Placeholder string
	Markers     []string
}

func (s State) HasMarker(name string) bool {
	return slices.Contains(s.Markers, name)
}

// Thread owns the ordered comment registry and the container's
// empty/populated toggle. Rendering is a projection of Comments().
type Thread struct {
	order    model.Order
	comments []model.Comment

	placeholder string
	markers     map[string]bool
}

func New(order model.Order) *Thread {
	t := &Thread{
		order:   order,
		markers: map[string]bool{},
	}
	t.toggle(true)
	return t
}

func (t *Thread) Order() model.Order { return t.order }

func (t *Thread) Len() int { return len(t.comments) }

func (t *Thread) IsEmpty() bool { return len(t.comments) == 0 }

// Comments returns a copy of the registry in display order.
func (t *Thread) Comments() []model.Comment {
	return slices.Clone(t.comments)
}

func (t *Thread) Index(id string) int {
	return slices.IndexFunc(t.comments, func(c model.Comment) bool { return c.ID == id })
}

func (t *Thread) Find(id string) (model.Comment, bool) {
	i := t.Index(id)
	if i < 0 {
		return model.Comment{}, false
	}
	return t.comments[i], true
}

// Insert places c according to the ordering mode and returns its index.
func (t *Thread) Insert(c model.Comment) int {
	if t.IsEmpty() {
		t.toggle(false)
	}
	i := InsertPosition(t.order, t.comments, c.Timestamp)
	t.comments = slices.Insert(t.comments, i, c)
	return i
}

// Remove deletes the comment with the given id. It reports whether one was
// found.
func (t *Thread) Remove(id string) bool {
	i := t.Index(id)
	if i < 0 {
		return false
	}
	t.comments = slices.Delete(t.comments, i, i+1)
	if t.IsEmpty() {
		t.toggle(true)
	}
	return true
}

// ToggleLike flips the display-only like flag and returns the new value.
func (t *Thread) ToggleLike(id string) (liked bool, ok bool) {
	i := t.Index(id)
	if i < 0 {
		return false, false
	}
	t.comments[i].LikeToggled = !t.comments[i].LikeToggled
	return t.comments[i].LikeToggled, true
}

func (t *Thread) State() State {
	markers := make([]string, 0, len(t.markers))
	for m := range t.markers {
		markers = append(markers, m)
	}
	sort.Strings(markers)
	return State{
		Empty:       t.markers[MarkerEmpty],
		Placeholder: t.placeholder,
		Markers:     markers,
	}
}

func (t *Thread) toggle(toEmpty bool) {
	removed, added := MarkerEmpty, MarkerList
	if toEmpty {
		removed, added = added, removed
		t.placeholder = EmptyPlaceholder
	} else {
		t.placeholder = ""
	}
	delete(t.markers, removed)
	t.markers[added] = true
}
