package exrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzUnmarshalManifest(f *testing.F) {
	valid, err := sampleManifest().MarshalBinary()
	require.NoError(f, err)
	f.Add(valid)
	f.Add([]byte{})
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		m := NewManifest()
		if err := m.UnmarshalBinary(data); err != nil {
			require.ErrorIs(t, err, ErrInvalidManifest)
			return
		}
		out, err := m.MarshalBinary()
		require.NoError(t, err)
		// Input entries may be unsorted or repeat an ID, so compare values.
		again := NewManifest()
		require.NoError(t, again.UnmarshalBinary(out))
		require.Equal(t, m, again)
	})
}

func FuzzCryptomatteHash(f *testing.F) {
	for _, s := range []string{"", "object", "Object.001", "\x00\x01\x02", "日本語"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, name string) {
		exp := (CryptomatteHash(name) >> 23) & 0xff
		if exp == 0 || exp == 0xff {
			t.Fatalf("CryptomatteHash(%q) has exponent %d", name, exp)
		}
		Murmur3Sum128([]byte(name), 0)
	})
}
