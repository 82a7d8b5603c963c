package thread

import "commentbox/internal/model"

// InsertPosition returns the index a comment with timestamp ts takes in
// existing (current display order) under the given ordering mode.
//
// Timestamp modes scan linearly and insert before the first comment that
// compares strictly; ties keep arrival order.
func InsertPosition(order model.Order, existing []model.Comment, ts int64) int {
	switch order {
	case model.OrderAppend:
		return len(existing)
	case model.OrderPrepend:
		return 0
	case model.OrderNewestFirst:
		for i, c := range existing {
			if c.Timestamp < ts {
				return i
			}
		}
		return len(existing)
	default:
		for i, c := range existing {
			if c.Timestamp > ts {
				return i
			}
		}
		return len(existing)
	}
}
