// Package report prints library statistics: incompletely rated albums,
// best and worst albums, crappy singles and albums, and duplicates.
package report
