package schema

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDDL_DeclaresAllTables(t *testing.T) {
	for _, table := range []string{"users", "locations", "rooms", "room_amenities", "room_photos", "room_members"} {
		assert.Contains(t, DDL, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	assert.Contains(t, DDL, "email VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, DDL, "REFERENCES rooms(id) ON DELETE CASCADE")
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(DDL).WillReturnResult(sqlmock.NewResult(0, 0))

	err = Apply(context.Background(), sqlx.NewDb(db, "sqlmock"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
