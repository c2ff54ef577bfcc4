package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

const userColumns = `id, email, password_hash, full_name, age, gender, profile_url, phone_number, bio, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns nil when no user has the id.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns nil when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns up to limit users, newest first.
func (r *UserReadRepository) List(ctx context.Context, limit int) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, limit)

	logQuery(query, []any{limit}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a user. A taken email yields ErrDuplicate from the
// unique constraint, so check and insert are one atomic step.
func (r *UserWriteRepository) Create(ctx context.Context, passwordHash string, p models.UserProfile) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, full_name, age, gender, profile_url, phone_number, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query,
		p.Email, passwordHash, p.FullName, p.Age, p.Gender, p.ProfileURL, p.PhoneNumber, p.Bio)

	logQuery(query, []any{p.Email, p.FullName, p.Age, p.Gender}, user.UserID, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &user, nil
}

// Update replaces every profile field of the user. It returns nil when
// the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, p models.UserProfile) (*models.UserDB, error) {
	const query = `
		UPDATE users SET
			email = $1,
			full_name = $2,
			age = $3,
			gender = $4,
			profile_url = $5,
			phone_number = $6,
			bio = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query,
		p.Email, p.FullName, p.Age, p.Gender, p.ProfileURL, p.PhoneNumber, p.Bio, id)

	logQuery(query, []any{p.Email, p.FullName, p.Age, p.Gender, id}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	return &user, nil
}

// Delete removes the user and reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
