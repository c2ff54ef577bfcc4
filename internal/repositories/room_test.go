package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	locations := NewLocationRepository(db)
	readRepo := NewRoomReadRepository(db)
	writeRepo := NewRoomWriteRepository(db, nil)

	owner, err := users.Create(ctx, "h", models.UserProfile{Email: "owner@example.com", FullName: "Owner", Age: 40, Gender: "male"})
	require.NoError(t, err)
	resident, err := users.Create(ctx, "h", models.UserProfile{Email: "res@example.com", FullName: "Resident", Age: 24, Gender: "female"})
	require.NoError(t, err)
	former, err := users.Create(ctx, "h", models.UserProfile{Email: "former@example.com", FullName: "Former", Age: 31, Gender: "male"})
	require.NoError(t, err)

	loc, err := locations.Create(ctx, &models.LocationDB{
		StreetAddress: "1 Market St", City: "San Francisco", State: strPtr("CA"), Country: "USA",
	})
	require.NoError(t, err)

	withLocation, err := writeRepo.Create(ctx, &models.RoomDB{
		OwnerID: &owner.UserID, LocationID: &loc.LocationID, Title: "Sunny room",
		RoomType: models.RoomTypePrivate, RentAmount: 1200, Currency: "USD", IsActive: true,
	})
	require.NoError(t, err)

	withoutLocation, err := writeRepo.Create(ctx, &models.RoomDB{
		OwnerID: &owner.UserID, Title: "Shared loft", RoomType: models.RoomTypeShared,
		RentAmount: 800, Currency: "USD", IsActive: true,
	})
	require.NoError(t, err)

	t.Run("CreateUnknownOwner", func(t *testing.T) {
		missing := uuid.New()
		_, err := writeRepo.Create(ctx, &models.RoomDB{OwnerID: &missing, Title: "x", RoomType: "private", Currency: "USD"})
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("GetByIDWithLocation", func(t *testing.T) {
		row, err := readRepo.GetByID(ctx, withLocation.RoomID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "Sunny room", row.Title)
		assert.Equal(t, 1200.0, row.RentAmount)
		l := row.Location()
		require.NotNil(t, l.LocationID)
		assert.Equal(t, loc.LocationID, *l.LocationID)
		assert.Equal(t, "San Francisco", *l.City)
	})

	t.Run("GetByIDWithoutLocation", func(t *testing.T) {
		row, err := readRepo.GetByID(ctx, withoutLocation.RoomID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, models.RoomLocation{}, row.Location())
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		rows, err := readRepo.List(ctx, 100)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, withoutLocation.RoomID, rows[0].RoomID)
		assert.Equal(t, withLocation.RoomID, rows[1].RoomID)

		rows, err = readRepo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("Amenities", func(t *testing.T) {
		found, err := writeRepo.ReplaceAmenities(ctx, withLocation.RoomID, []string{"WiFi", "Laundry", "WiFi"})
		require.NoError(t, err)
		assert.True(t, found)

		found, err = writeRepo.ReplaceAmenities(ctx, withLocation.RoomID, []string{"Parking", "WiFi"})
		require.NoError(t, err)
		assert.True(t, found)

		amenities, err := readRepo.GetAmenities(ctx, withLocation.RoomID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Parking", "WiFi"}, amenities)

		found, err = writeRepo.ReplaceAmenities(ctx, uuid.New(), []string{"Gym"})
		require.NoError(t, err)
		assert.False(t, found)

		empty, err := readRepo.GetAmenities(ctx, withoutLocation.RoomID)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("PhotosOrdered", func(t *testing.T) {
		for _, order := range []int{3, 1, 2} {
			_, err := writeRepo.AddPhoto(ctx, withLocation.RoomID, models.RoomPhoto{
				PhotoURL: "https://img.example.com/" + string(rune('a'+order)), DisplayOrder: order,
			})
			require.NoError(t, err)
		}

		photos, err := readRepo.GetPhotos(ctx, withLocation.RoomID)
		require.NoError(t, err)
		require.Len(t, photos, 3)
		for i, p := range photos {
			assert.Equal(t, i+1, p.DisplayOrder)
		}

		_, err = writeRepo.AddPhoto(ctx, uuid.New(), models.RoomPhoto{PhotoURL: "x"})
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("CurrentResidentsOnly", func(t *testing.T) {
		require.NoError(t, writeRepo.SetMember(ctx, withLocation.RoomID, resident.UserID, true))
		require.NoError(t, writeRepo.SetMember(ctx, withLocation.RoomID, former.UserID, true))
		require.NoError(t, writeRepo.SetMember(ctx, withLocation.RoomID, former.UserID, false))

		roommates, err := readRepo.GetRoommates(ctx, withLocation.RoomID)
		require.NoError(t, err)
		require.Len(t, roommates, 1)
		assert.Equal(t, resident.UserID, roommates[0].UserID)
		assert.Equal(t, "Resident", roommates[0].Name)
		assert.Equal(t, "res@example.com", roommates[0].Email)

		err = writeRepo.SetMember(ctx, withLocation.RoomID, uuid.New(), true)
		assert.ErrorIs(t, err, ErrForeignKey)

		roomIDs, err := readRepo.ListRoomIDsByMember(ctx, former.UserID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{withLocation.RoomID}, roomIDs)

		roomIDs, err = readRepo.ListRoomIDsByMember(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, roomIDs)
	})

	t.Run("UpdateFullReplace", func(t *testing.T) {
		desc := "Bright"
		_, err := writeRepo.Update(ctx, withoutLocation.RoomID, &models.RoomDB{
			Title: "Shared loft", Description: &desc, RoomType: models.RoomTypeShared, RentAmount: 850, Currency: "USD",
		})
		require.NoError(t, err)

		updated, err := writeRepo.Update(ctx, withoutLocation.RoomID, &models.RoomDB{
			Title: "Shared loft v2", RoomType: models.RoomTypeShared, RentAmount: 900, Currency: "EUR",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Shared loft v2", updated.Title)
		assert.Equal(t, 900.0, updated.RentAmount)
		assert.Nil(t, updated.Description)
		assert.False(t, updated.IsActive)
		require.NotNil(t, updated.OwnerID)
		assert.Equal(t, owner.UserID, *updated.OwnerID)

		missing, err := writeRepo.Update(ctx, uuid.New(), &models.RoomDB{Title: "x", RoomType: "private", Currency: "USD"})
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		require.NoError(t, writeRepo.Delete(ctx, withLocation.RoomID))

		row, err := readRepo.GetByID(ctx, withLocation.RoomID)
		assert.NoError(t, err)
		assert.Nil(t, row)

		var dependents int
		require.NoError(t, db.Get(&dependents, `
			SELECT (SELECT COUNT(*) FROM room_amenities WHERE room_id = $1)
			     + (SELECT COUNT(*) FROM room_photos WHERE room_id = $1)
			     + (SELECT COUNT(*) FROM room_members WHERE room_id = $1)`, withLocation.RoomID))
		assert.Zero(t, dependents)

		kept, err := locations.GetByID(ctx, loc.LocationID)
		assert.NoError(t, err)
		assert.NotNil(t, kept)

		assert.NoError(t, writeRepo.Delete(ctx, withLocation.RoomID), "delete is idempotent")
	})
}

func TestLocationRepository_GetByIDMissing(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	loc, err := NewLocationRepository(db).GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, loc)
}
