package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash produces a hash consistent with Equal: two values that Equal reports
// equal always hash equal, including numerically-coercible cross-tag
// numeric pairs (Int32(3) and Float64(3.0) hash the same). Used by hash and
// hash-multi indices to bucket handle keys.
func Hash(v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	if v.IsNull() {
		h.WriteByte(0)
		return h.Sum64()
	}

	if v.Tag().IsNumeric() {
		// Normalize to a canonical float64 bit pattern so numerically-equal
		// values across Int32/Int64/Float32/Float64 hash identically,
		// mirroring Compare's numeric widening.
		h.WriteByte(1)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], floatBits(v))
		h.Write(buf[:])
		return h.Sum64()
	}

	h.WriteByte(byte(v.tag) + 2)
	switch v.tag {
	case Str:
		h.WriteString(v.AsStr())
	case Bool:
		if v.AsBool() {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case Char:
		h.WriteByte(v.AsChar())
	case TagTimestamp:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v.AsTimestamp().UnixNano))
		h.Write(buf[:])
	default:
		// Vector tags are not used as index keys; hash their address-free
		// identity so a Value carrying one never collides with a scalar.
		h.WriteByte(0xFF)
	}
	return h.Sum64()
}

// floatBits returns a canonical float64 bit pattern for any numeric value,
// so integers and floats that Compare treats as equal hash identically.
func floatBits(v Value) uint64 {
	return math.Float64bits(v.AsFloat64Numeric())
}
