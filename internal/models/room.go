package models

import (
	"time"

	"github.com/google/uuid"
)

// Room types understood by the listing filters.
const (
	RoomTypePrivate = "private"
	RoomTypeShared  = "shared"
	RoomTypeStudio  = "studio"
	RoomTypeEntire  = "entire"
)

// RoomDB represents a room listing row.
type RoomDB struct {
	RoomID            uuid.UUID  `json:"id" db:"id"`
	OwnerID           *uuid.UUID `json:"owner_id" db:"owner_id"`
	LocationID        *uuid.UUID `json:"location_id" db:"location_id"`
	Title             string     `json:"title" db:"title"`
	Description       *string    `json:"description" db:"description"`
	RoomType          string     `json:"room_type" db:"room_type"`
	RentAmount        float64    `json:"rent_amount" db:"rent_amount"`
	DepositAmount     *float64   `json:"deposit_amount" db:"deposit_amount"`
	Currency          string     `json:"currency" db:"currency"`
	AvailableFrom     *time.Time `json:"available_from" db:"available_from"`
	AvailableUntil    *time.Time `json:"available_until" db:"available_until"`
	TotalBedrooms     *int       `json:"total_bedrooms" db:"total_bedrooms"`
	TotalBathrooms    *int       `json:"total_bathrooms" db:"total_bathrooms"`
	RoomSizeSqft      *int       `json:"room_size_sqft" db:"room_size_sqft"`
	IsFurnished       bool       `json:"is_furnished" db:"is_furnished"`
	IsPrivateRoom     bool       `json:"is_private_room" db:"is_private_room"`
	IsPrivateBathroom bool       `json:"is_private_bathroom" db:"is_private_bathroom"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// RoomLocationRow is a room row left-joined with its location.
type RoomLocationRow struct {
	RoomDB
	LocRefID      *uuid.UUID `db:"loc_id"`
	StreetAddress *string    `db:"street_address"`
	City          *string    `db:"city"`
	State         *string    `db:"state"`
	PostalCode    *string    `db:"postal_code"`
	Country       *string    `db:"country"`
}

// Location splits the joined address columns off the row.
func (r *RoomLocationRow) Location() RoomLocation {
	return RoomLocation{
		LocationID:    r.LocRefID,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
	}
}

// RoomPhoto is one entry of a room's ordered photo list.
type RoomPhoto struct {
	PhotoURL     string  `json:"photo_url" db:"photo_url"`
	Caption      *string `json:"caption" db:"caption"`
	DisplayOrder int     `json:"display_order" db:"display_order"`
}

// Roommate is a user currently living in a room.
type Roommate struct {
	UserID uuid.UUID `json:"id" db:"id"`
	Name   string    `json:"name" db:"name"`
	Email  string    `json:"email" db:"email"`
}

// RoomView is the aggregated room: the room row plus location, amenities,
// photos and current residents. It is built per request and never stored.
// swagger:model RoomView
type RoomView struct {
	RoomDB
	Location  RoomLocation `json:"location"`
	Amenities []string     `json:"amenities"`
	Photos    []RoomPhoto  `json:"photos"`
	Roommates []Roommate   `json:"roommates"`
}
