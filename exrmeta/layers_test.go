package exrmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-exrattr/attr"
)

func TestSplitLayers(t *testing.T) {
	h := attr.NewHeader()
	assert.Empty(t, SplitLayers(h))
	assert.Empty(t, Layers(h))

	cl := attr.NewChannelList()
	for _, name := range []string{"R", "G", "B", "A", "diffuse.R", "diffuse.G", "left.specular.R", "Z"} {
		cl.Add(attr.NewChannel(name, attr.PixelTypeHalf))
	}
	h.SetChannels(cl)

	layers := SplitLayers(h)
	assert.ElementsMatch(t, []string{"A", "B", "G", "R", "Z"}, layers[""])
	assert.Equal(t, []string{"G", "R"}, layers["diffuse"])
	assert.Equal(t, []string{"R"}, layers["left.specular"])
	assert.Equal(t, []string{"diffuse", "left.specular"}, Layers(h))
}

func TestCopyMetadata(t *testing.T) {
	src := attr.NewScanlineHeader(64, 64)
	src.SetName("beauty")
	SetOwner(src, "Studio XYZ")
	SetFramesPerSecond(src, FPS24)

	dst := attr.NewScanlineHeader(32, 32)
	SetOwner(dst, "someone else")
	require.NoError(t, CopyMetadata(dst, src))

	assert.Equal(t, "Studio XYZ", Owner(dst))
	assert.Equal(t, FPS24, *FramesPerSecond(dst))
	assert.Equal(t, 32, dst.Width())
	assert.Empty(t, dst.Name())
	assert.NoError(t, dst.Validate())
}

func TestCopyMetadataClonesValues(t *testing.T) {
	src := attr.NewScanlineHeader(8, 8)
	SetOwner(src, "Studio XYZ")
	attr.Put(src, "worldToCamera", attr.Identity44())
	src.Set(attr.New("future", &attr.Opaque{Type: "futureKind", Data: []byte{1, 2, 3}}))

	dst := attr.NewScanlineHeader(8, 8)
	require.NoError(t, CopyMetadata(dst, src))

	*dst.Get(AttrOwner).Value.(*attr.String) = "someone else"
	dst.Get("worldToCamera").Value.(*attr.M44f)[0] = 2
	dst.Get("future").Value.(*attr.Opaque).Data[0] = 9

	assert.Equal(t, "Studio XYZ", Owner(src))
	m, ok := attr.Lookup[attr.M44f](src, "worldToCamera")
	require.True(t, ok)
	assert.Equal(t, attr.Identity44(), m)
	assert.Equal(t, &attr.Opaque{Type: "futureKind", Data: []byte{1, 2, 3}}, src.Get("future").Value)
	assert.Equal(t, "futureKind", dst.Get("future").Type())
}
