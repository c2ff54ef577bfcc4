package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

const locationColumns = `id, street_address, city, state, postal_code, country, created_at`

// LocationRepository reads and writes postal addresses.
type LocationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *models.LocationDB) (*models.LocationDB, error) {
	const query = `
		INSERT INTO locations (street_address, city, state, postal_code, country, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + locationColumns

	args := []any{loc.StreetAddress, loc.City, loc.State, loc.PostalCode, loc.Country}

	var created models.LocationDB
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.LocationID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil when the location does not exist.
func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LocationDB, error) {
	const query = `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	var loc models.LocationDB
	err := r.db.GetContext(ctx, &loc, query, id)

	logQuery(query, []any{id}, loc.LocationID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
