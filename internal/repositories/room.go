package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

const roomColumns = `id, owner_id, location_id, title, description, room_type, rent_amount, deposit_amount, currency,
	available_from, available_until, total_bedrooms, total_bathrooms, room_size_sqft,
	is_furnished, is_private_room, is_private_bathroom, is_active, created_at, updated_at`

const roomWithLocation = `
	SELECT r.*, l.id AS loc_id, l.street_address, l.city, l.state, l.postal_code, l.country
	FROM rooms r
	LEFT JOIN locations l ON r.location_id = l.id
`

// RoomReadRepository handles room read operations, including the
// dependent reads used to assemble a room view.
type RoomReadRepository struct {
	db *sqlx.DB
}

func NewRoomReadRepository(db *sqlx.DB) *RoomReadRepository {
	return &RoomReadRepository{db: db}
}

// GetByID returns the room joined with its location, or nil when absent.
func (r *RoomReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomLocationRow, error) {
	const query = roomWithLocation + `WHERE r.id = $1`

	var row models.RoomLocationRow
	err := r.db.GetContext(ctx, &row, query, id)

	logQuery(query, []any{id}, row.RoomID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns up to limit rooms joined with their locations, newest first.
func (r *RoomReadRepository) List(ctx context.Context, limit int) ([]models.RoomLocationRow, error) {
	const query = roomWithLocation + `ORDER BY r.created_at DESC LIMIT $1`

	rows := []models.RoomLocationRow{}
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logQuery(query, []any{limit}, len(rows), err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAmenities returns the amenity labels of a room.
func (r *RoomReadRepository) GetAmenities(ctx context.Context, roomID uuid.UUID) ([]string, error) {
	const query = `SELECT amenity FROM room_amenities WHERE room_id = $1 ORDER BY id`

	amenities := []string{}
	err := r.db.SelectContext(ctx, &amenities, query, roomID)

	logQuery(query, []any{roomID}, amenities, err)

	if err != nil {
		return nil, err
	}
	return amenities, nil
}

// GetPhotos returns the photos of a room ordered by display order.
func (r *RoomReadRepository) GetPhotos(ctx context.Context, roomID uuid.UUID) ([]models.RoomPhoto, error) {
	const query = `
		SELECT photo_url, caption, display_order
		FROM room_photos
		WHERE room_id = $1
		ORDER BY display_order ASC, id ASC
	`

	photos := []models.RoomPhoto{}
	err := r.db.SelectContext(ctx, &photos, query, roomID)

	logQuery(query, []any{roomID}, len(photos), err)

	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetRoommates returns the users currently living in a room.
func (r *RoomReadRepository) GetRoommates(ctx context.Context, roomID uuid.UUID) ([]models.Roommate, error) {
	const query = `
		SELECT u.id, u.full_name AS name, u.email
		FROM room_members rm
		JOIN users u ON rm.user_id = u.id
		WHERE rm.room_id = $1 AND rm.is_current_resident = TRUE
		ORDER BY rm.joined_at ASC
	`

	roommates := []models.Roommate{}
	err := r.db.SelectContext(ctx, &roommates, query, roomID)

	logQuery(query, []any{roomID}, len(roommates), err)

	if err != nil {
		return nil, err
	}
	return roommates, nil
}

// ListRoomIDsByMember returns the rooms a user is a member of, resident or not.
func (r *RoomReadRepository) ListRoomIDsByMember(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT room_id
		FROM room_members
		WHERE user_id = $1
		ORDER BY joined_at ASC
	`

	roomIDs := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &roomIDs, query, userID)

	logQuery(query, []any{userID}, len(roomIDs), err)

	if err != nil {
		return nil, err
	}
	return roomIDs, nil
}

// RoomWriteRepository handles room write operations
type RoomWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoomWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoomWriteRepository {
	return &RoomWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a room. Unknown owner or location ids yield ErrForeignKey.
func (r *RoomWriteRepository) Create(ctx context.Context, room *models.RoomDB) (*models.RoomDB, error) {
	const query = `
		INSERT INTO rooms (
			owner_id, location_id, title, description, room_type, rent_amount, deposit_amount, currency,
			available_from, available_until, total_bedrooms, total_bathrooms, room_size_sqft,
			is_furnished, is_private_room, is_private_bathroom, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17, NOW(), NOW()
		)
		RETURNING ` + roomColumns

	args := []any{
		room.OwnerID, room.LocationID, room.Title, room.Description, room.RoomType,
		room.RentAmount, room.DepositAmount, room.Currency,
		room.AvailableFrom, room.AvailableUntil, room.TotalBedrooms, room.TotalBathrooms, room.RoomSizeSqft,
		room.IsFurnished, room.IsPrivateRoom, room.IsPrivateBathroom, room.IsActive,
	}

	var created models.RoomDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.RoomID, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &created, nil
}

// Update replaces the listing fields of a room. Owner and location are
// left untouched. It returns nil when the room does not exist.
func (r *RoomWriteRepository) Update(ctx context.Context, id uuid.UUID, room *models.RoomDB) (*models.RoomDB, error) {
	const query = `
		UPDATE rooms SET
			title = $1,
			description = $2,
			room_type = $3,
			rent_amount = $4,
			deposit_amount = $5,
			currency = $6,
			available_from = $7,
			available_until = $8,
			total_bedrooms = $9,
			total_bathrooms = $10,
			room_size_sqft = $11,
			is_furnished = $12,
			is_private_room = $13,
			is_private_bathroom = $14,
			is_active = $15,
			updated_at = NOW()
		WHERE id = $16
		RETURNING ` + roomColumns

	args := []any{
		room.Title, room.Description, room.RoomType, room.RentAmount, room.DepositAmount, room.Currency,
		room.AvailableFrom, room.AvailableUntil, room.TotalBedrooms, room.TotalBathrooms, room.RoomSizeSqft,
		room.IsFurnished, room.IsPrivateRoom, room.IsPrivateBathroom, room.IsActive,
		id,
	}

	var updated models.RoomDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated.RoomID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	return &updated, nil
}

// Delete removes a room. Amenities, photos and memberships go with it
// through ON DELETE CASCADE. Deleting a missing room is not an error.
func (r *RoomWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM rooms WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	return err
}

// ReplaceAmenities locks the room row and swaps its amenity multiset.
// It reports false when the room does not exist. Callers are expected to
// run it inside a transaction.
func (r *RoomWriteRepository) ReplaceAmenities(ctx context.Context, roomID uuid.UUID, amenities []string) (bool, error) {
	const lockQuery = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`
	const deleteQuery = `DELETE FROM room_amenities WHERE room_id = $1`
	const insertQuery = `INSERT INTO room_amenities (room_id, amenity) VALUES ($1, $2)`

	exec := executor(ctx, r.db, r.txGetter)

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, exec, &locked, lockQuery, roomID)
	logQuery(lockQuery, []any{roomID}, locked, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res, err := exec.ExecContext(ctx, deleteQuery, roomID)
	var removed int64
	if res != nil {
		removed, _ = res.RowsAffected()
	}
	logQuery(deleteQuery, []any{roomID}, removed, err)
	if err != nil {
		return false, err
	}

	for _, amenity := range amenities {
		_, err := exec.ExecContext(ctx, insertQuery, roomID, amenity)
		logQuery(insertQuery, []any{roomID, amenity}, nil, err)
		if err != nil {
			return false, mapPgError(err)
		}
	}

	return true, nil
}

// AddPhoto appends a photo to a room. An unknown room yields ErrForeignKey.
func (r *RoomWriteRepository) AddPhoto(ctx context.Context, roomID uuid.UUID, photo models.RoomPhoto) (*models.RoomPhoto, error) {
	const query = `
		INSERT INTO room_photos (room_id, photo_url, caption, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING photo_url, caption, display_order
	`

	args := []any{roomID, photo.PhotoURL, photo.Caption, photo.DisplayOrder}

	var created models.RoomPhoto
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &created, nil
}

// SetMember creates or updates the membership of a user in a room.
// An unknown room or user yields ErrForeignKey.
func (r *RoomWriteRepository) SetMember(ctx context.Context, roomID, userID uuid.UUID, currentResident bool) error {
	const query = `
		INSERT INTO room_members (room_id, user_id, is_current_resident, joined_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (room_id, user_id)
		DO UPDATE SET is_current_resident = EXCLUDED.is_current_resident
	`

	args := []any{roomID, userID, currentResident}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return mapPgError(err)
}
