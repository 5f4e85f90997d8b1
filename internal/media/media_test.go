package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAddImageCopiesIntoDir(t *testing.T) {
	dir := t.TempDir()
	in, err := NewIntake(dir)
	require.NoError(t, err)

	src := writeTemp(t, "My Pot Photo.JPG", "fake image bytes")
	stored, err := in.AddImage(src)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(stored))
	assert.True(t, strings.HasPrefix(filepath.Base(stored), "my-pot-photo-"))
	assert.True(t, strings.HasSuffix(stored, ".jpg"))

	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestAddImageRejectsUnsupportedType(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	_, err = in.AddImage(writeTemp(t, "notes.txt", "text"))
	assert.Error(t, err)
}

func TestAddVoiceNote(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	stored, err := in.AddVoiceNote(writeTemp(t, "story.m4a", "fake audio"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, ".m4a"))

	_, err = in.AddVoiceNote(writeTemp(t, "story.jpg", "not audio"))
	assert.Error(t, err)
}

func TestImportsDoNotCollide(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	src := writeTemp(t, "pot.png", "img")
	first, err := in.AddImage(src)
	require.NoError(t, err)
	second, err := in.AddImage(src)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRemoveOnlyInsideDir(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	stored, err := in.AddImage(writeTemp(t, "pot.jpg", "img"))
	require.NoError(t, err)
	require.NoError(t, in.Remove(stored))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	outside := writeTemp(t, "keep.jpg", "img")
	require.NoError(t, in.Remove(outside))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
