package exrmeta

import (
	"fmt"
	"slices"

	"github.com/mrjoshuak/go-exrattr/attr"
)

// structural attributes describe a part's layout rather than its content
// and are never copied by CopyMetadata.
var structural = map[string]bool{
	attr.AttrNameChannels:           true,
	attr.AttrNameCompression:        true,
	attr.AttrNameDataWindow:         true,
	attr.AttrNameDisplayWindow:      true,
	attr.AttrNameLineOrder:          true,
	attr.AttrNamePixelAspectRatio:   true,
	attr.AttrNameScreenWindowCenter: true,
	attr.AttrNameScreenWindowWidth:  true,
	attr.AttrNameTiles:              true,
	attr.AttrNameType:               true,
	attr.AttrNameName:               true,
	attr.AttrNameVersion:            true,
	attr.AttrNameChunkCount:         true,
}

// SplitLayers groups channel names by layer, the prefix before the last
// dot. Channels without a prefix are keyed by "". Within a layer, names
// keep the channel list's sorted order.
func SplitLayers(h *attr.Header) map[string][]string {
	layers := make(map[string][]string)
	cl := h.Channels()
	if cl == nil {
		return layers
	}
	for _, c := range cl.Channels() {
		layers[c.Layer()] = append(layers[c.Layer()], c.BaseName())
	}
	return layers
}

// Layers returns the sorted names of the non-root layers.
func Layers(h *attr.Header) []string {
	var names []string
	for layer := range SplitLayers(h) {
		if layer != "" {
			names = append(names, layer)
		}
	}
	slices.Sort(names)
	return names
}

// CopyMetadata copies every non-structural attribute of src into dst,
// replacing attributes of the same name. Each value is cloned, so later
// changes to either header do not show in the other. On error dst may hold
// some of the copied attributes.
func CopyMetadata(dst, src *attr.Header) error {
	for _, a := range src.Attributes() {
		if structural[a.Name] {
			continue
		}
		v, err := attr.Clone(a.Value)
		if err != nil {
			return fmt.Errorf("copy %s: %w", a.Name, err)
		}
		dst.Set(attr.New(a.Name, v))
	}
	return nil
}
