package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"migrations/000001_create_kol_tables.up.sql",
		"migrations/000001_create_kol_tables.down.sql",
	}, files)

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_create_kol_tables.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS kol_master")
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS kol_activities")
}

func TestMigrateDown_InvalidSteps(t *testing.T) {
	err := MigrateDown(nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid steps")
}
