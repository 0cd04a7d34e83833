// Package bigend provides big-endian 16/32-bit load/store and byte-pattern
// search primitives over a borrowed buffer.
//
// None of the functions here allocate or retain the input slice. The
// search functions are bounds-checked and never read past the end of buf;
// the load/store functions are not, and the caller must keep the word
// inside buf. This is the layer every other package in
// this module builds on to interpret a ROM image as 32-bit words.
package bigend
