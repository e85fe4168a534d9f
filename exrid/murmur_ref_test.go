package exrid

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmur3MatchesReference(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i*31 + 7)
	}
	for n := 0; n <= len(data); n++ {
		for _, seed := range []uint32{0, 1, 0x9747b28c} {
			assert.Equal(t, refSum32(data[:n], seed), Murmur3Sum32(data[:n], seed), "length %d seed %#x", n, seed)

			a1, a2 := refSum128(data[:n], uint64(seed))
			b1, b2 := Murmur3Sum128(data[:n], uint64(seed))
			assert.Equal(t, [2]uint64{a1, a2}, [2]uint64{b1, b2}, "length %d seed %#x", n, seed)
		}
	}
}

// refSum32 is a direct transcription of MurmurHash3_x86_32.
func refSum32(data []byte, seed uint32) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
	)

	h := seed
	nblocks := len(data) / 4
	for i := 0; i < nblocks; i++ {
		k := binary.LittleEndian.Uint32(data[i*4:])
		k *= c1
		k = rotl32(k, 15)
		k *= c2

		h ^= k
		h = rotl32(h, 13)
		h = h*5 + 0xe6546b64
	}

	tail := data[nblocks*4:]
	var k uint32
	switch len(tail) {
	case 3:
		k ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(tail[0])
		k *= c1
		k = rotl32(k, 15)
		k *= c2
		h ^= k
	}

	h ^= uint32(len(data))
	return fmix32(h)
}

// refSum128 is a direct transcription of MurmurHash3_x64_128.
func refSum128(data []byte, seed uint64) (uint64, uint64) {
	const (
		c1 uint64 = 0x87c37b91114253d5
		c2 uint64 = 0x4cf5ad432745937f
	)

	h1, h2 := seed, seed
	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		k1 := binary.LittleEndian.Uint64(data[i*16:])
		k2 := binary.LittleEndian.Uint64(data[i*16+8:])

		k1 *= c1
		k1 = rotl64(k1, 31)
		k1 *= c2
		h1 ^= k1
		h1 = rotl64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2
		k2 = rotl64(k2, 33)
		k2 *= c1
		h2 ^= k2
		h2 = rotl64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	// The tail is at most 15 bytes; bytes 8 and up feed k2, the rest k1.
	tail := data[nblocks*16:]
	var k1, k2 uint64
	for i := len(tail) - 1; i >= 8; i-- {
		k2 ^= uint64(tail[i]) << (8 * (i - 8))
	}
	if len(tail) > 8 {
		k2 *= c2
		k2 = rotl64(k2, 33)
		k2 *= c1
		h2 ^= k2
	}
	for i := min(len(tail), 8) - 1; i >= 0; i-- {
		k1 ^= uint64(tail[i]) << (8 * i)
	}
	if len(tail) > 0 {
		k1 *= c1
		k1 = rotl64(k1, 31)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint64(len(data))
	h2 ^= uint64(len(data))
	h1 += h2
	h2 += h1
	h1 = fmix64(h1)
	h2 = fmix64(h2)
	h1 += h2
	h2 += h1
	return h1, h2
}

func rotl32(x uint32, r int) uint32 { return x<<r | x>>(32-r) }
func rotl64(x uint64, r int) uint64 { return x<<r | x>>(64-r) }

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
