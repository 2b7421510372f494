// Package library loads the iTunes library export into model tracks and
// playlists.
//
// The export is a property list. Decoding is left to howett.net/plist;
// this package maps the decoded records onto the model types, unescapes
// track locations and filters podcasts.
//
// # Basic Usage
//
//	loader := library.NewLoader(logger)
//	lib, err := loader.Load(library.Options{})
//	if errors.Is(err, library.ErrLibraryNotFound) {
//	    // no export in ~/Music/iTunes
//	}
//
// An empty Options.Path tries "iTunes Music Library.xml" and then
// "iTunes Library.xml" in ~/Music/iTunes.
package library
