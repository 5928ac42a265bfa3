package sysdirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathJoinChains(t *testing.T) {
	got := Path("/base").Join("level1").Join("level2")
	assert.Equal(t, Path(filepath.Join("/base", "level1", "level2")), got)

	// variadic form is equivalent
	assert.Equal(t, got, Path("/base").Join("level1", "level2"))
}

func TestPathJoinOnAbsent(t *testing.T) {
	var p Path
	got := p.Join("something").Join("else")

	assert.False(t, got.Present())
	assert.Empty(t, got.String())
}

func TestPathEnsureCreates(t *testing.T) {
	target := Path(t.TempDir()).Join("nested", "deep")

	got, err := target.Ensure()
	require.NoError(t, err)
	assert.Equal(t, target.String(), got)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPathEnsureIsIdempotent(t *testing.T) {
	target := Path(t.TempDir()).Join("twice")

	first, err := target.Ensure()
	require.NoError(t, err)
	second, err := target.Ensure()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPathEnsureOnAbsent(t *testing.T) {
	var p Path
	_, err := p.Ensure()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAvailable))
}

func TestPathEnsureSurfacesCreationFailure(t *testing.T) {
	// a regular file in the way is a creation failure, not absence
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Path(file).Join("child").Ensure()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotAvailable))
}

func TestPathPresent(t *testing.T) {
	assert.True(t, Path("/x").Present())
	assert.False(t, Path("").Present())
}
