package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationDB represents a postal address row.
// swagger:model Location
type LocationDB struct {
	LocationID    uuid.UUID `json:"id" db:"id"`
	StreetAddress string    `json:"street_address" db:"street_address"`
	City          string    `json:"city" db:"city"`
	State         *string   `json:"state" db:"state"`
	PostalCode    *string   `json:"postal_code" db:"postal_code"`
	Country       string    `json:"country" db:"country"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RoomLocation is the location block of an aggregated room view.
// Every field is nil when the room has no location.
type RoomLocation struct {
	LocationID    *uuid.UUID `json:"id"`
	StreetAddress *string    `json:"street_address"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
	PostalCode    *string    `json:"postal_code"`
	Country       *string    `json:"country"`
}

// Fields returns the non-empty address parts in street-to-country order.
func (l RoomLocation) Fields() []string {
	var out []string
	for _, f := range []*string{l.StreetAddress, l.City, l.State, l.PostalCode, l.Country} {
		if f != nil && *f != "" {
			out = append(out, *f)
		}
	}
	return out
}
