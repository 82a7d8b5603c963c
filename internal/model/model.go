package model

import "time"

type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds

	// LikeToggled is display-only; it is never persisted.
	LikeToggled bool `json:"likeToggled"`
}

func (c Comment) At() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// Order selects where a new comment lands among the existing ones.
//
// Values above OrderNewestFirst all mean "oldest first by timestamp".
type Order int

const (
	OrderAppend Order = iota
	OrderPrepend
	OrderNewestFirst
	OrderOldestFirst
)

func (o Order) String() string {
	switch o {
	case OrderAppend:
		return "append"
	case OrderPrepend:
		return "prepend"
	case OrderNewestFirst:
		return "newest-first"
	default:
		return "oldest-first"
	}
}

type Settings struct {
	AllowFutureDate      bool  `json:"allowFutureDate"`
	OrderOfComments      Order `json:"orderOfComments"`
	ShowAddonCloseButton bool  `json:"showAddonCloseButton"`
}

func DefaultSettings() Settings {
	return Settings{
		AllowFutureDate:      true,
		OrderOfComments:      OrderAppend,
		ShowAddonCloseButton: true,
	}
}
