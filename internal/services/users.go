package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password too long")
)

// PasswordCost is the bcrypt work factor for stored passwords.
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, limit int) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, passwordHash string, profile models.UserProfile) (*models.UserDB, error)
	Update(ctx context.Context, id uuid.UUID, profile models.UserProfile) (*models.UserDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemberRoomsReader lists the rooms a user is a member of.
type MemberRoomsReader interface {
	ListRoomIDsByMember(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// RoomViewEvicter drops cached room views.
type RoomViewEvicter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// Publisher publishes domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, entityID uuid.UUID, payload any)
}

// UserService handles registration, login and profile management.
type UserService struct {
	reader UserReader
	writer UserWriter
	rooms  MemberRoomsReader
	cache  RoomViewEvicter
	events Publisher
}

// NewUserService creates a new UserService instance. Cached views of the
// rooms a user belongs to are evicted on profile writes; cache may be nil.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	rooms MemberRoomsReader,
	cache RoomViewEvicter,
	events Publisher,
) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		rooms:  rooms,
		cache:  cache,
		events: events,
	}
}

// Register hashes the password and stores a new user. Email uniqueness is
// enforced by the insert itself.
func (svc *UserService) Register(ctx context.Context, password string, profile models.UserProfile) (*models.User, error) {
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, string(hashedPassword), profile)
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Infow("email already registered", "email", profile.Email)
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	public := user.Public()
	svc.events.Publish(ctx, models.EventUserRegistered, public.UserID, public)
	return public, nil
}

// Login checks the password against the stored hash.
func (svc *UserService) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return &models.UserSummary{
		UserID:   user.UserID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

// Get returns the public projection of a user.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

// List returns up to limit users, newest first.
func (svc *UserService) List(ctx context.Context, limit int) ([]models.User, error) {
	users, err := svc.reader.List(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "limit", limit, "err", err)
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].Public())
	}
	return out, nil
}

// Update replaces the profile of an existing user.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, profile models.UserProfile) (*models.User, error) {
	user, err := svc.writer.Update(ctx, id, profile)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	svc.evictRooms(ctx, id, svc.memberRooms(ctx, id))

	public := user.Public()
	svc.events.Publish(ctx, models.EventUserUpdated, id, public)
	return public, nil
}

// Delete removes a user. Memberships go with it.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	// memberships are gone after the delete
	roomIDs := svc.memberRooms(ctx, id)

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	svc.evictRooms(ctx, id, roomIDs)
	svc.events.Publish(ctx, models.EventUserDeleted, id, nil)
	return nil
}

func (svc *UserService) memberRooms(ctx context.Context, userID uuid.UUID) []uuid.UUID {
	if svc.cache == nil {
		return nil
	}
	roomIDs, err := svc.rooms.ListRoomIDsByMember(ctx, userID)
	if err != nil {
		logger.Log.Warnw("failed to list member rooms", "user_id", userID, "error", err)
		return nil
	}
	return roomIDs
}

func (svc *UserService) evictRooms(ctx context.Context, userID uuid.UUID, roomIDs []uuid.UUID) {
	for _, roomID := range roomIDs {
		if err := svc.cache.Delete(ctx, roomID); err != nil {
			logger.Log.Warnw("room view cache eviction failed", "room_id", roomID, "user_id", userID, "error", err)
		}
	}
}
