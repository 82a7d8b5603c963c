package tui

import (
	"strings"

	"commentbox/internal/comment"

	"github.com/charmbracelet/lipgloss"
)

// renderCard draws one comment. width is the outer width including the
// border.
func renderCard(card comment.Card, width int, selected bool) string {
	if width < 24 {
		width = 24
	}
	inner := width - 4

	heading := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(card.Heading)
	body := renderCommentBody(card.Body, inner)

	heart := styleMuted().Render("♡")
	if card.Liked {
		heart = lipgloss.NewStyle().Foreground(colorLikeFg).Render("♥ " + card.LikeText)
	}
	meta := []string{styleMuted().Render(card.DateLabel), heart}
	if selected {
		meta = append(meta, styleMuted().Render(affordanceHints(card)))
	}

	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join([]string{heading, body, strings.Join(meta, "  ")}, "\n"))
}

func affordanceHints(card comment.Card) string {
	hints := make([]string, 0, len(card.Affordances))
	for _, a := range card.Affordances {
		switch a {
		case comment.AffordanceLike:
			hints = append(hints, "[l] like")
		case comment.AffordanceTrash:
			hints = append(hints, "[d] trash")
		case comment.AffordanceClose:
			hints = append(hints, "[x] close")
		}
	}
	return strings.Join(hints, " ")
}
