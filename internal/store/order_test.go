package store

import (
	"testing"
)

func TestParseOrder(t *testing.T) {
	cases := map[string]Order{
		"":            OrderRecency,
		"recency":     OrderRecency,
		"nonsense":    OrderRecency,
		"rating_high": OrderRatingHigh,
		"ratingHigh":  OrderRatingHigh,
		"ratinghigh":  OrderRatingHigh,
		"rating_low":  OrderRatingLow,
		"ratingLow":   OrderRatingLow,
	}
	for in, want := range cases {
		if got := ParseOrder(in); got != want {
			t.Errorf("ParseOrder(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestOrderClause(t *testing.T) {
	if got := OrderRecency.Clause(); got != "created_at DESC" {
		t.Errorf("recency clause: %q", got)
	}
	if got := OrderRatingHigh.Clause(); got != "rating_score DESC, created_at DESC" {
		t.Errorf("rating_high clause: %q", got)
	}
	if got := OrderRatingLow.Clause(); got != "rating_score ASC, created_at DESC" {
		t.Errorf("rating_low clause: %q", got)
	}
}
