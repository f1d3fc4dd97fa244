package usecases

import (
	"testing"

	"fitness-app/db"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) db.Database {
	t.Helper()
	database, err := db.Connect(":memory:")
	require.NoError(t, err)
	return database
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
