package filters

import (
	"slices"
	"sync"

	"github.com/sbilibin2017/roommate-finder/internal/models"
)

// View keeps the unfiltered list next to the active filter so that any
// filter, including the zero one, is always applied to the full list.
// It is safe for concurrent use.
type View[T any, F comparable] struct {
	mu     sync.RWMutex
	all    []T
	filter F
	apply  func([]T, F) []T
}

// NewView creates an empty view that filters with apply.
func NewView[T any, F comparable](apply func([]T, F) []T) *View[T, F] {
	return &View[T, F]{apply: apply}
}

// NewRoomView creates a view over aggregated rooms.
func NewRoomView() *View[models.RoomView, RoomFilter] {
	return NewView(ApplyRooms)
}

// NewRoommateView creates a view over users.
func NewRoommateView() *View[models.User, RoommateFilter] {
	return NewView(ApplyRoommates)
}

// SetItems replaces the unfiltered list, keeping the active filter.
func (v *View[T, F]) SetItems(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = slices.Clone(items)
}

// Apply makes f the active filter and returns the filtered list.
func (v *View[T, F]) Apply(f F) []T {
	v.mu.Lock()
	v.filter = f
	v.mu.Unlock()
	return v.Items()
}

// Reset clears the active filter and returns the unfiltered list.
func (v *View[T, F]) Reset() []T {
	var zero F
	return v.Apply(zero)
}

// Items returns the list with the active filter applied.
func (v *View[T, F]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.apply(v.all, v.filter)
}

// All returns a copy of the unfiltered list.
func (v *View[T, F]) All() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.all)
}

// Filter returns the active filter.
func (v *View[T, F]) Filter() F {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filter
}
