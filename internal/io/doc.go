// Package ioutils provides the file system primitives behind the cleanup
// and export commands.
//
// This package contains functions for:
//   - Removing files and empty directories
//   - Moving files, with a copy fallback across file systems
//   - Writing files such as playlists and tag exports
//   - Filename sanitization for cross-platform compatibility
//
// # File Operations
//
//	// Move a good track out of an album folder
//	err := ioutils.MoveFile(ctx, "/music/A/B/01 x.mp3", "/music/A/A - x.mp3")
//
//	// Delete a crappy track, then the emptied folder
//	err = ioutils.RemoveFile(ctx, "/music/A/B/02 y.mp3")
//	err = ioutils.RemoveDir(ctx, "/music/A/B")
//
//	// Write data to file
//	err = ioutils.WriteFile(ctx, "/path/to/file.m3u", []byte("content"))
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
package ioutils
