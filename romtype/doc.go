// Package romtype describes the static catalog of known MCU variants the
// structural recovery pipeline selects from.
//
// A FidType is looked up by its 8-byte CPU tag (read out of the FID
// struct's CPU field) and declares everything variant-specific about a
// ROM: its expected size, the struct field offsets inside its RAMF
// record, the expected secondary vector table address, the RAMF header
// sentinel, and a Feature bitmask selecting which checksum/IVT2/ECUREC
// variants of the recovery pipeline apply.
//
// The catalog itself is a read-only collaborator: this package supplies
// the data shape and a lookup helper, plus a small reference catalog
// useful for tests and the demo command. A production deployment is
// expected to load its own catalog (e.g. from the external romdb CSV
// loader) and pass it to the recover/analyzer packages directly.
package romtype
