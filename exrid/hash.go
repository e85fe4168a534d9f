package exrid

import (
	"math"

	"github.com/twmb/murmur3"
)

// CryptomatteHash returns the 32-bit MurmurHash3 of name with the
// Cryptomatte adjustment: when the exponent bits are all zero or all one,
// bit 23 is flipped so the ID never reads back as a denormal, NaN or
// infinity once stored in a float channel.
func CryptomatteHash(name string) uint32 {
	h := Murmur3Sum32([]byte(name), 0)
	if exp := (h >> 23) & 0xff; exp == 0 || exp == 0xff {
		h ^= 1 << 23
	}
	return h
}

// CryptomatteHashFloat reinterprets CryptomatteHash(name) as a float32.
func CryptomatteHashFloat(name string) float32 {
	return math.Float32frombits(CryptomatteHash(name))
}

// Murmur3Sum32 computes the x86 32-bit MurmurHash3 of data.
func Murmur3Sum32(data []byte, seed uint32) uint32 {
	return murmur3.SeedSum32(seed, data)
}

// Murmur3Sum128 computes the x64 128-bit MurmurHash3 of data and returns
// the low and high halves. Both halves start from seed.
func Murmur3Sum128(data []byte, seed uint64) (uint64, uint64) {
	return murmur3.SeedSum128(seed, seed, data)
}
