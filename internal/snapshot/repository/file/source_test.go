package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dashboard-srv/internal/snapshot/repository"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Log.csv"), []byte("Date,User\n"), 0o644))

	repo := New(dir, log.NewNop())

	t.Run("relative to base dir", func(t *testing.T) {
		data, err := repo.Read(context.Background(), "Log.csv")
		require.NoError(t, err)
		assert.Equal(t, "Date,User\n", string(data))
	})

	t.Run("absolute path", func(t *testing.T) {
		data, err := repo.Read(context.Background(), filepath.Join(dir, "Log.csv"))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.Read(context.Background(), "Config.csv")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := repo.Read(context.Background(), dir)
		assert.ErrorIs(t, err, repository.ErrUnreadable)
	})
}
