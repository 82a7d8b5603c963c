package comment

import (
	"testing"
	"time"

	"commentbox/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestNew_StampsAndGeneratesID(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, time.June, 3, 14, 7, 0, 0, time.UTC)
	c := New("", "Ann", "*hi*", at)

	if _, err := uuid.Parse(c.ID); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", c.ID, err)
	}
	if c.Timestamp != at.UnixMilli() {
		t.Fatalf("timestamp = %d, want %d", c.Timestamp, at.UnixMilli())
	}
	if c.Name != "Ann" || c.Text != "*hi*" {
		t.Fatalf("unexpected fields: %+v", c)
	}
	if c.LikeToggled {
		t.Fatalf("new comment must start un-liked")
	}

	if got := New("fixed", "a", "b", at).ID; got != "fixed" {
		t.Fatalf("explicit id not kept: %q", got)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 3, 18, 0, 0, 0, time.UTC)
	base := model.Comment{
		ID:        "c1",
		Name:      "Ann",
		Text:      "hello",
		Timestamp: time.Date(2024, time.June, 2, 8, 5, 0, 0, time.UTC).UnixMilli(),
	}

	tests := []struct {
		name string
		c    model.Comment
		opts RenderOptions
		want Card
	}{
		{
			name: "with close button",
			c:    base,
			opts: RenderOptions{ShowCloseButton: true},
			want: Card{
				ID:          "c1",
				Heading:     "Ann",
				Body:        "hello",
				DateLabel:   "yesterday, 08:05",
				Affordances: []Affordance{AffordanceLike, AffordanceTrash, AffordanceClose},
			},
		},
		{
			name: "liked without close button",
			c: func() model.Comment {
				c := base
				c.LikeToggled = true
				return c
			}(),
			want: Card{
				ID:          "c1",
				Heading:     "Ann",
				Body:        "hello",
				DateLabel:   "yesterday, 08:05",
				LikeText:    LikeText,
				Liked:       true,
				Affordances: []Affordance{AffordanceLike, AffordanceTrash},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Render(tt.c, now, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
