// Package moody exports and compares Moody mood tags.
//
// Moody stores a track's mood in the composer field as "Moody" followed by
// a row A-D and a column 1-4, e.g. "MoodyB2". Tags are exchanged as a JSON
// object keyed by "artist----name":
//
//	{"Air----Sexy Boy":"B2"}
//
// Export reads the tags from the library, Diff compares an exported
// document against it and Unmatched suggests library keys for tags that
// match no track.
package moody
