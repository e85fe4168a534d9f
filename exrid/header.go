package exrid

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mrjoshuak/go-exrattr/attr"
	"github.com/mrjoshuak/go-exrattr/exrmeta"
)

// ErrNoManifest is returned by ReadManifest when a header carries neither
// an idManifest attribute nor a Cryptomatte manifest.
var ErrNoManifest = fmt.Errorf("exrid: no ID manifest: %w", attr.ErrAttributeNotFound)

// cryptomattePrefix starts the names of Cryptomatte layer attributes,
// which have the form cryptomatte/<layer>/<key>.
const cryptomattePrefix = "cryptomatte/"

// HasManifest reports whether h carries an ID manifest of either form.
func HasManifest(h *attr.Header) bool {
	if h.Has(exrmeta.AttrIDManifest) {
		return true
	}
	for _, a := range h.Attributes() {
		if _, key, ok := cryptomatteKey(a.Name); ok && key == "manifest" {
			return true
		}
	}
	return false
}

// WriteManifest encodes m and stores it in h's idManifest attribute.
func WriteManifest(h *attr.Header, m *Manifest) error {
	raw, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return exrmeta.SetIDManifest(h, raw)
}

// ReadManifest returns h's ID manifest. The idManifest attribute wins when
// present; otherwise each Cryptomatte layer becomes a group, in layer
// order.
func ReadManifest(h *attr.Header) (*Manifest, error) {
	if h.Has(exrmeta.AttrIDManifest) {
		raw, err := exrmeta.IDManifest(h)
		if err != nil {
			return nil, err
		}
		m := NewManifest()
		if err := m.UnmarshalBinary(raw); err != nil {
			return nil, err
		}
		return m, nil
	}

	m := readCryptomatte(h)
	if len(m.Groups) == 0 {
		return nil, ErrNoManifest
	}
	return m, nil
}

// SetCryptomatte stores a Cryptomatte manifest for the layer named name
// under cryptomatte/<index>/. The JSON lists names alphabetically so the
// output is deterministic.
func SetCryptomatte(h *attr.Header, name string, index int, names []string) error {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, n := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return err
		}
		sb.Write(key)
		fmt.Fprintf(&sb, `:"%08x"`, CryptomatteHash(n))
	}
	sb.WriteByte('}')

	prefix := fmt.Sprintf("%s%02d/", cryptomattePrefix, index)
	attr.Put(h, prefix+"name", attr.String(name))
	attr.Put(h, prefix+"hash", attr.String(HashMurmur3_32))
	attr.Put(h, prefix+"conversion", attr.String("uint32_to_float32"))
	attr.Put(h, prefix+"manifest", attr.String(sb.String()))
	return nil
}

func cryptomatteKey(name string) (layer, key string, ok bool) {
	rest, found := strings.CutPrefix(name, cryptomattePrefix)
	if !found {
		return "", "", false
	}
	layer, key, ok = strings.Cut(rest, "/")
	if !ok || layer == "" || strings.Contains(key, "/") {
		return "", "", false
	}
	return layer, key, true
}

type cryptomatteLayer struct {
	id    string
	group *Group
}

// readCryptomatte collects cryptomatte/<layer>/name and .../manifest.
// Attributes of the wrong kind, manifests that are not JSON objects and
// entries whose value is not a hex ID are skipped.
func readCryptomatte(h *attr.Header) *Manifest {
	var layers []*cryptomatteLayer
	layerFor := func(id string) *Group {
		for _, l := range layers {
			if l.id == id {
				return l.group
			}
		}
		g := &Group{
			Components: []string{"name"},
			Lifetime:   LifetimeStable,
			Hash:       HashMurmur3_32,
			Encoding:   EncodeID,
			Entries:    make(map[uint64][]string),
		}
		layers = append(layers, &cryptomatteLayer{id: id, group: g})
		return g
	}

	for _, a := range h.Attributes() {
		id, key, ok := cryptomatteKey(a.Name)
		if !ok {
			continue
		}
		s, ok := a.Value.(*attr.String)
		if !ok {
			continue
		}
		switch key {
		case "name":
			g := layerFor(id)
			g.Channels = append(g.Channels, string(*s))
		case "manifest":
			g := layerFor(id)
			var entries map[string]string
			if err := json.Unmarshal([]byte(*s), &entries); err != nil {
				continue
			}
			for n, hex := range entries {
				if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
					g.Insert(v, n)
				}
			}
		}
	}

	slices.SortFunc(layers, func(a, b *cryptomatteLayer) int { return cmp.Compare(a.id, b.id) })
	m := NewManifest()
	for _, l := range layers {
		m.Groups = append(m.Groups, l.group)
	}
	return m
}
