// Package exrid maps the numeric object IDs stored in image channels to
// the names they stand for.
//
// A Manifest is carried in a header's idManifest attribute; the attr
// package handles its zlib compression and this package handles the
// structure of the inflated bytes. Cryptomatte layers, which keep their
// manifests as JSON strings under cryptomatte/<layer>/ attributes, are
// read and written too.
//
//	m := exrid.NewManifest()
//	g := m.AddGroup([]string{"objectId"}, []string{"object"})
//	g.InsertHashed("Hero")
//	err := exrid.WriteManifest(h, m)
package exrid

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

// Lifetime says how long an ID-to-name mapping stays valid.
type Lifetime uint8

const (
	LifetimeFrame  Lifetime = 0 // may change every frame
	LifetimeShot   Lifetime = 1 // consistent within a shot
	LifetimeStable Lifetime = 2 // consistent forever
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeFrame:
		return "frame"
	case LifetimeShot:
		return "shot"
	case LifetimeStable:
		return "stable"
	default:
		return fmt.Sprintf("Lifetime(%d)", uint8(l))
	}
}

// HashScheme identifies how IDs are derived from names.
type HashScheme string

const (
	HashUnknown    HashScheme = "unknown"
	HashNone       HashScheme = "none"
	HashCustom     HashScheme = "custom"
	HashMurmur3_32 HashScheme = "MurmurHash3_32"
	HashMurmur3_64 HashScheme = "MurmurHash3_64"
)

// EncodingScheme identifies how IDs are stored in channels.
type EncodingScheme string

const (
	EncodeID  EncodingScheme = "id"  // 32-bit ID in one uint channel
	EncodeID2 EncodingScheme = "id2" // 64-bit ID split over two channels
)

// ErrInvalidManifest is returned when manifest bytes cannot be decoded.
var ErrInvalidManifest = errors.New("exrid: invalid manifest")

// Group holds the ID mappings shared by a set of channels.
type Group struct {
	Channels   []string
	Components []string // e.g. "object", "material"
	Lifetime   Lifetime
	Hash       HashScheme
	Encoding   EncodingScheme
	Entries    map[uint64][]string
}

// Insert maps id to values, replacing any previous mapping.
func (g *Group) Insert(id uint64, values ...string) {
	if g.Entries == nil {
		g.Entries = make(map[uint64][]string)
	}
	g.Entries[id] = values
}

// InsertHashed derives an ID from values with the group's hash scheme,
// inserts the mapping and returns the ID. Schemes other than
// MurmurHash3_64 use the Cryptomatte 32-bit hash.
func (g *Group) InsertHashed(values ...string) uint64 {
	key := strings.Join(values, "\x00")
	var id uint64
	if g.Hash == HashMurmur3_64 {
		id, _ = Murmur3Sum128([]byte(key), 0)
	} else {
		id = uint64(CryptomatteHash(key))
	}
	g.Insert(id, values...)
	return id
}

// Lookup returns the values mapped to id.
func (g *Group) Lookup(id uint64) ([]string, bool) {
	v, ok := g.Entries[id]
	return v, ok
}

// IDs returns the mapped IDs in ascending order.
func (g *Group) IDs() []uint64 {
	ids := make([]uint64, 0, len(g.Entries))
	for id := range g.Entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Manifest is the full set of ID mappings for one part.
type Manifest struct {
	Groups []*Group
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// AddGroup appends a group using stable MurmurHash3_32 IDs.
func (m *Manifest) AddGroup(channels, components []string) *Group {
	g := &Group{
		Channels:   channels,
		Components: components,
		Lifetime:   LifetimeStable,
		Hash:       HashMurmur3_32,
		Encoding:   EncodeID,
		Entries:    make(map[uint64][]string),
	}
	m.Groups = append(m.Groups, g)
	return g
}

// Group returns the group covering channel, or nil.
func (m *Manifest) Group(channel string) *Group {
	for _, g := range m.Groups {
		if slices.Contains(g.Channels, channel) {
			return g
		}
	}
	return nil
}

const manifestVersion uint32 = 1

// MarshalBinary encodes the manifest in its uncompressed form. Entries are
// written in ascending ID order so the output is deterministic.
func (m *Manifest) MarshalBinary() ([]byte, error) {
	w := xdr.NewBufferWriter(256)
	w.WriteUint32(manifestVersion)
	w.WriteUint32(uint32(len(m.Groups)))
	for _, g := range m.Groups {
		if g.Lifetime > LifetimeStable {
			return nil, fmt.Errorf("%w: lifetime %d", ErrInvalidManifest, g.Lifetime)
		}
		writeStrings(w, g.Channels)
		writeStrings(w, g.Components)
		w.WriteUint8(uint8(g.Lifetime))
		writeString(w, string(g.Hash))
		writeString(w, string(g.Encoding))
		w.WriteUint64(uint64(len(g.Entries)))
		for _, id := range g.IDs() {
			w.WriteUint64(id)
			writeStrings(w, g.Entries[id])
		}
	}
	return w.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, replacing the
// manifest's groups. Trailing bytes are an error.
func (m *Manifest) UnmarshalBinary(data []byte) error {
	r := xdr.NewReader(data)
	groups, err := readGroups(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidManifest, r.Len())
	}
	m.Groups = groups
	return nil
}

// Smallest possible encodings, used to reject counts the input cannot hold.
const (
	minGroupSize = 4 + 4 + 1 + 4 + 4 + 8
	minEntrySize = 8 + 4
)

func readGroups(r *xdr.Reader) ([]*Group, error) {
	version, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if version != manifestVersion {
		return nil, fmt.Errorf("unsupported version %d", version)
	}
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if uint64(n)*minGroupSize > uint64(r.Len()) {
		return nil, fmt.Errorf("%d groups in %d bytes", n, r.Len())
	}

	groups := make([]*Group, n)
	for i := range groups {
		g := &Group{}
		if g.Channels, err = readStrings(r); err != nil {
			return nil, err
		}
		if g.Components, err = readStrings(r); err != nil {
			return nil, err
		}
		lifetime, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		if g.Lifetime = Lifetime(lifetime); g.Lifetime > LifetimeStable {
			return nil, fmt.Errorf("lifetime %d", lifetime)
		}
		hash, err := readString(r)
		if err != nil {
			return nil, err
		}
		enc, err := readString(r)
		if err != nil {
			return nil, err
		}
		g.Hash, g.Encoding = HashScheme(hash), EncodingScheme(enc)

		count, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		if count > uint64(r.Len())/minEntrySize {
			return nil, fmt.Errorf("%d entries in %d bytes", count, r.Len())
		}
		g.Entries = make(map[uint64][]string, count)
		for j := uint64(0); j < count; j++ {
			id, err := r.ReadUint64()
			if err != nil {
				return nil, err
			}
			if g.Entries[id], err = readStrings(r); err != nil {
				return nil, err
			}
		}
		groups[i] = g
	}
	return groups, nil
}

// Strings are a uint32 length followed by the bytes; lists are a uint32
// count followed by the strings.

func writeString(w *xdr.BufferWriter, s string) {
	w.WriteUint32(uint32(len(s)))
	w.WriteBytes([]byte(s))
}

func writeStrings(w *xdr.BufferWriter, list []string) {
	w.WriteUint32(uint32(len(list)))
	for _, s := range list {
		writeString(w, s)
	}
}

func readString(r *xdr.Reader) (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(r.Len()) {
		return "", fmt.Errorf("string of %d bytes with %d left", n, r.Len())
	}
	b, err := r.ReadBytes(int(n))
	return string(b), err
}

func readStrings(r *xdr.Reader) ([]string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if uint64(n)*4 > uint64(r.Len()) {
		return nil, fmt.Errorf("%d strings in %d bytes", n, r.Len())
	}
	list := make([]string, n)
	for i := range list {
		if list[i], err = readString(r); err != nil {
			return nil, err
		}
	}
	return list, nil
}
