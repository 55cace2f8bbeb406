package journal

import "fmt"

// Rating is an ordinal value in 1..4, from "none" to "intense".
type Rating int

const (
	RatingNone    Rating = 1
	RatingSlight  Rating = 2
	RatingSome    Rating = 3
	RatingIntense Rating = 4
)

// Ratings lists every valid Rating in ascending order.
var Ratings = []Rating{RatingNone, RatingSlight, RatingSome, RatingIntense}

// Valid reports whether r is within 1..4.
func (r Rating) Valid() bool {
	return r >= RatingNone && r <= RatingIntense
}

// Label returns the word shown for r.
func (r Rating) Label() string {
	switch r {
	case RatingNone:
		return "None"
	case RatingSlight:
		return "Slight"
	case RatingSome:
		return "Some"
	case RatingIntense:
		return "Intense"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// ParseRating converts n to a Rating, rejecting values outside 1..4.
func ParseRating(n int) (Rating, error) {
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d out of range 1..4", n)
	}
	return r, nil
}
