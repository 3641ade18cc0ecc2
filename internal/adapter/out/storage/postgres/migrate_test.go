package postgres

import (
	"testing"

	"yatube/migrations"

	"github.com/stretchr/testify/require"
)

func Test_migrateURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@db:5432/yatube?sslmode=disable", want: "pgx5://u:p@db:5432/yatube?sslmode=disable"},
		{in: "postgresql://u:p@db/yatube", want: "pgx5://u:p@db/yatube"},
		{in: "pgx5://already", want: "pgx5://already"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, migrateURL(tt.in))
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	up, err := migrations.FS.ReadFile("000001_init.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(up), "ON DELETE SET NULL")
	require.Contains(t, string(up), "UNIQUE (user_id, following_id)")
	require.Contains(t, string(up), "CHECK (user_id <> following_id)")

	_, err = migrations.FS.ReadFile("000001_init.down.sql")
	require.NoError(t, err)
}
