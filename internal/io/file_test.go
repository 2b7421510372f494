package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoveFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "Album", "01 Song.mp3")
	dst := filepath.Join(dir, "Artist - Song.mp3")
	writeTestFile(t, src, "audio")

	require.NoError(t, MoveFile(ctx, src, dst))

	assert.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))
}

func TestMoveFile_DoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp3")
	dst := filepath.Join(dir, "b.mp3")
	writeTestFile(t, src, "new")
	writeTestFile(t, dst, "old")

	err := MoveFile(ctx, src, dst)

	require.ErrorIs(t, err, os.ErrExist)
	assert.FileExists(t, src)
	data, _ := os.ReadFile(dst)
	assert.Equal(t, "old", string(data))
}

func TestCopyFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp3")
	dst := filepath.Join(dir, "b.mp3")
	writeTestFile(t, src, "data")

	require.NoError(t, CopyFile(ctx, src, dst))

	assert.FileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestRemoveFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mp3")
	writeTestFile(t, file, "x")

	require.NoError(t, RemoveFile(ctx, file))
	assert.NoFileExists(t, file)

	assert.ErrorIs(t, RemoveFile(ctx, file), os.ErrNotExist)
	assert.Error(t, RemoveFile(ctx, dir), "directories must be rejected")
	assert.DirExists(t, dir)
}

func TestRemoveDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	album := filepath.Join(dir, "Album")
	writeTestFile(t, filepath.Join(album, "cover.jpg"), "img")

	assert.Error(t, RemoveDir(ctx, album), "non-empty directories must not be removed")
	assert.DirExists(t, album)

	require.NoError(t, os.Remove(filepath.Join(album, "cover.jpg")))
	require.NoError(t, RemoveDir(ctx, album))
	assert.False(t, DirExists(album))
}

func TestWriteFile_CreatesParents(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "Playlists", "Best.m3u")

	require.NoError(t, WriteFile(ctx, path, []byte("#EXTM3U\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n", string(data))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	file := filepath.Join(t.TempDir(), "a.mp3")
	writeTestFile(t, file, "x")

	assert.ErrorIs(t, RemoveFile(ctx, file), context.Canceled)
	assert.FileExists(t, file)
}
