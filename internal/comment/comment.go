package comment

import (
	"time"

	"commentbox/internal/datefmt"
	"commentbox/internal/model"

	"github.com/google/uuid"
)

const LikeText = "+ LIKE"

type Affordance string

const (
	AffordanceLike  Affordance = "like"
	AffordanceTrash Affordance = "trash"
	AffordanceClose Affordance = "close"
)

// Card is the renderable structure of a single comment.
type Card struct {
	ID          string
	Heading     string
	Body        string
	DateLabel   string
	LikeText    string
	Liked       bool
	Affordances []Affordance
}

func (c Card) Has(a Affordance) bool {
	for _, x := range c.Affordances {
		if x == a {
			return true
		}
	}
	return false
}

type RenderOptions struct {
	ShowCloseButton bool
}

// New builds a comment stamped at `at`. An empty id gets a random UUID.
func New(id, name, text string, at time.Time) model.Comment {
	if id == "" {
		id = uuid.NewString()
	}
	return model.Comment{
		ID:        id,
		Name:      name,
		Text:      text,
		Timestamp: at.UnixMilli(),
	}
}

// Render projects c into its display structure relative to now.
func Render(c model.Comment, now time.Time, opts RenderOptions) Card {
	card := Card{
		ID:          c.ID,
		Heading:     c.Name,
		Body:        c.Text,
		DateLabel:   datefmt.FormatLabel(c.At(), now),
		Liked:       c.LikeToggled,
		Affordances: []Affordance{AffordanceLike, AffordanceTrash},
	}
	if c.LikeToggled {
		card.LikeText = LikeText
	}
	if opts.ShowCloseButton {
		card.Affordances = append(card.Affordances, AffordanceClose)
	}
	return card
}
