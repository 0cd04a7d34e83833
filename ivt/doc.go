// Package ivt validates and locates interrupt vector tables inside a ROM
// image.
//
// A vector table's first four 32-bit words are the power-on reset and
// manual reset entry points, each a (PC, SP) pair. Check validates the
// shape of those four words; Find scans a buffer for the first aligned
// window that passes Check.
package ivt
