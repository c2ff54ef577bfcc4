package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockLocationStore(ctrl)
	svc := services.NewLocationService(store)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Create", func(t *testing.T) {
		in := &models.LocationDB{StreetAddress: "1 Main St", City: "Austin", Country: "US"}
		store.EXPECT().Create(ctx, in).Return(&models.LocationDB{LocationID: id, City: "Austin"}, nil)

		loc, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, id, loc.LocationID)
	})

	t.Run("CreateError", func(t *testing.T) {
		store.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))
		_, err := svc.Create(ctx, &models.LocationDB{})
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("Get", func(t *testing.T) {
		store.EXPECT().GetByID(ctx, id).Return(&models.LocationDB{LocationID: id}, nil)
		loc, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, loc.LocationID)
	})

	t.Run("GetMissing", func(t *testing.T) {
		store.EXPECT().GetByID(ctx, id).Return(nil, nil)
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrLocationNotFound)
	})
}
