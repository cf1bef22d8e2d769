// Package recovery repairs text artefacts introduced by PDF-to-text
// extraction so that exact-match logic downstream can rely on them.
//
// Three recoveries are implemented: normalising fragmented occurrences
// of a contact's name, locating the line where a contact's record
// starts in a loosely structured contacts table, and stitching profile
// URLs that print formatting has wrapped across several lines.
//
// All functions are pure text transformations. They never fail for
// data-quality reasons; when nothing can be recovered they return the
// input unchanged or an empty result.
package recovery
