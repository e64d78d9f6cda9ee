// Package archive2 decodes NEXRAD Archive II Level II volume files: the tape
// header, the LDM record framing (modern size-prefixed bzip2 and legacy CTM),
// the message envelope (including multi-segment reassembly), and the
// individual message-body formats (digital radar data, RDA status, volume
// coverage pattern, clutter maps, adaptation data, and friends).
//
// The documents used and referenced in this package:
//  - RDA/RPG: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620002T.pdf (high level details)
//  - User: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620010H.pdf (bulk of the format)
package archive2

import (
	"encoding/binary"
	"math"
)

// U8 is a single big-endian byte. Provided for symmetry with the other
// fixed-size wrappers; byte order is not observable for a single byte.
type U8 uint8

// Get returns the native value.
func (v U8) Get() uint8 { return uint8(v) }

// U16 is a big-endian 2-byte unsigned integer as it appears on the wire.
type U16 [2]byte

// Get decodes the wrapped bytes as a big-endian uint16.
func (v U16) Get() uint16 { return binary.BigEndian.Uint16(v[:]) }

// I16 is a big-endian 2-byte signed integer.
type I16 [2]byte

// Get decodes the wrapped bytes as a big-endian int16.
func (v I16) Get() int16 { return int16(binary.BigEndian.Uint16(v[:])) }

// U32 is a big-endian 4-byte unsigned integer.
type U32 [4]byte

// Get decodes the wrapped bytes as a big-endian uint32.
func (v U32) Get() uint32 { return binary.BigEndian.Uint32(v[:]) }

// I32 is a big-endian 4-byte signed integer.
type I32 [4]byte

// Get decodes the wrapped bytes as a big-endian int32.
func (v I32) Get() int32 { return int32(binary.BigEndian.Uint32(v[:])) }

// F32 is a big-endian IEEE 754 single-precision float.
type F32 [4]byte

// Get decodes the wrapped bytes as a big-endian float32.
func (v F32) Get() float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(v[:]))
}
