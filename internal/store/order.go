package store

import (
	"strings"
)

// Order selects how a comment level is sorted. The same criterion is
// applied to top-level comments and their immediate replies; deeper
// replies always use recency.
type Order string

const (
	OrderRecency    Order = "recency"
	OrderRatingHigh Order = "rating_high"
	OrderRatingLow  Order = "rating_low"
)

// ParseOrder maps a query parameter onto an Order, falling back to
// recency for anything unrecognized.
func ParseOrder(s string) Order {
	switch strings.ReplaceAll(strings.ToLower(s), "_", "") {
	case "ratinghigh":
		return OrderRatingHigh
	case "ratinglow":
		return OrderRatingLow
	default:
		return OrderRecency
	}
}

// Clause returns the SQL ordering for this criterion. Ties always break
// by recency, newest first.
func (o Order) Clause() string {
	switch o {
	case OrderRatingHigh:
		return "rating_score DESC, created_at DESC"
	case OrderRatingLow:
		return "rating_score ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}
