// Package storage persists core graphs as opaque blobs.
//
// A blob is a YAML document carrying a format header and the full core
// snapshot (nodes with info, weighted edges, counters). Decoding validates
// the content, so a blob that loads always yields a well-formed graph that
// is Equal to the one saved and carries the same counters.
//
// FileStore writes blobs to a vfs.FileSystem: the operating system by
// default, an in-memory filesystem in tests.
package storage
