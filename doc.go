// Package photoframe provides a pure-Go photo finishing pipeline: tone adjustment,
// film-style filter presets and frame/watermark compositing over 8-bit RGBA buffers.
//
// Each stage is a synchronous function that reads one buffer and returns a new one.
// Stages hold no state between calls, so different images can be processed in parallel.
// Decoding, EXIF reading and persistence are left to the caller; see DecodeFile and
// EncodeFile for convenience helpers.
package photoframe
