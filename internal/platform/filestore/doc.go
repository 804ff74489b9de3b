// Package filestore implements the store interfaces on the local
// filesystem: one JSON file per session record under a date-partitioned
// directory tree, and a plain line-oriented log for flagged words.
//
// Record volume is low and listing is not on any hot path, so reads walk
// the tree on every call instead of maintaining an index.
package filestore
