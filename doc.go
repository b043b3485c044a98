// Package cfb encodes a hierarchy of named storages and streams into a
// single Compound File Binary Format (CFBF/OLE2) container image, the
// legacy format underlying composite document files.
//
// # File Format Overview
//
// A produced container consists of:
//   - A 512-byte header with the CFBF signature, version fields, and
//     109 inline DIFAT slots
//   - One FAT sector chaining the 512-byte sectors of the file
//   - A directory region of 128-byte records, one per entry, linked as
//     a sibling/child tree
//   - Stream payloads, either in 512-byte sectors or, for streams
//     shorter than 4096 bytes, in 64-byte mini sectors inside the mini
//     data area addressed by a MiniFAT
//
// Only version 3 containers with a single FAT sector are written, so a
// container tops out near 64 KiB; larger entry sets fail with
// ErrCapacity. This package writes containers only; reading them back
// is left to external consumers.
//
// # Basic Usage
//
// To build and write a container:
//
//	b := cfb.NewBuilder("Root Entry")
//	dir, _ := b.AddStorage(b.Root(), "Contents")
//	_, _ = b.AddStream(dir, "Summary", []byte("hello"))
//	f, _ := os.Create("output.cfb")
//	defer f.Close()
//	err := cfb.Encode(f, b.Entries())
//
// Entry lists may also be assembled by hand; entry 0 must be the root
// storage and child links are indices into the list. Stream payloads
// are pulled through each entry's Content function exactly once, at the
// moment that stream's region is serialized.
//
// # Limits
//
// Encode validates the entry list before allocating anything and
// enforces configurable [Limits] on entry count, stream size, and name
// length. The format's own capacity bound is checked after sector
// allocation and reported as ErrCapacity before any output exists.
package cfb
