// Package filters narrows and orders lists fetched by the client.
//
// Every Apply function returns a new slice and never touches its input.
// Steps run in a fixed order: numeric ranges, categorical equality,
// location substring, then one stable sort. Zero-valued filter fields are
// no-ops, so the zero filter returns the list unchanged.
package filters

import (
	"slices"
	"strings"
	"time"

	"github.com/sbilibin2017/roommate-finder/internal/models"
)

// SortKey names a recognised ordering. Unknown keys keep input order.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// Any is the categorical value that matches everything.
const Any = "any"

// RoomFilter narrows a list of aggregated rooms.
type RoomFilter struct {
	PriceMin *float64
	PriceMax *float64
	RoomType string
	Location string
	SortBy   SortKey
}

// IsZero reports whether the filter would leave a list unchanged.
func (f RoomFilter) IsZero() bool {
	return f == RoomFilter{}
}

// RoommateFilter narrows a list of users.
type RoommateFilter struct {
	AgeMin *int
	AgeMax *int
	Gender string
	SortBy SortKey
}

// IsZero reports whether the filter would leave a list unchanged.
func (f RoommateFilter) IsZero() bool {
	return f == RoommateFilter{}
}

// ApplyRooms returns the rooms matching f, ordered by f.SortBy.
func ApplyRooms(rooms []models.RoomView, f RoomFilter) []models.RoomView {
	out := make([]models.RoomView, 0, len(rooms))
	for _, room := range rooms {
		if !inRange(room.RentAmount, f.PriceMin, f.PriceMax) {
			continue
		}
		if !matchCategory(room.RoomType, f.RoomType) {
			continue
		}
		if !matchSubstring(strings.Join(room.Location.Fields(), ", "), f.Location) {
			continue
		}
		out = append(out, room)
	}

	switch f.SortBy {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.RoomView) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	case SortOldest:
		slices.SortStableFunc(out, func(a, b models.RoomView) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.RoomView) int { return compareFloat(a.RentAmount, b.RentAmount) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.RoomView) int { return compareFloat(b.RentAmount, a.RentAmount) })
	}
	return out
}

// ApplyRoommates returns the users matching f, ordered by f.SortBy.
// Price keys do not apply to users and keep input order.
func ApplyRoommates(users []models.User, f RoommateFilter) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if !inRange(u.Age, f.AgeMin, f.AgeMax) {
			continue
		}
		if !matchCategory(u.Gender, f.Gender) {
			continue
		}
		out = append(out, u)
	}

	switch f.SortBy {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.User) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	case SortOldest:
		slices.SortStableFunc(out, func(a, b models.User) int { return a.CreatedAt.Compare(b.CreatedAt) })
	}
	return out
}

// inRange checks inclusive bounds; a nil bound is open.
func inRange[N int | float64](v N, lo, hi *N) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

func matchCategory(value, want string) bool {
	if want == "" || strings.EqualFold(want, Any) {
		return true
	}
	return strings.EqualFold(value, want)
}

func matchSubstring(value, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(want))
}

func newestFirst(a, b time.Time) int {
	return b.Compare(a)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
