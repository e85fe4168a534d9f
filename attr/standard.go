package attr

import (
	"errors"
	"fmt"
)

// Standard attribute names
const (
	AttrNameChannels           = "channels"
	AttrNameCompression        = "compression"
	AttrNameDataWindow         = "dataWindow"
	AttrNameDisplayWindow      = "displayWindow"
	AttrNameLineOrder          = "lineOrder"
	AttrNamePixelAspectRatio   = "pixelAspectRatio"
	AttrNameScreenWindowCenter = "screenWindowCenter"
	AttrNameScreenWindowWidth  = "screenWindowWidth"
	AttrNameTiles              = "tiles"
	AttrNameName               = "name"
	AttrNameType               = "type"
	AttrNameChunkCount         = "chunkCount"
	AttrNameVersion            = "version"
)

// Part types stored in the "type" attribute.
const (
	PartTypeScanline     = "scanlineimage"
	PartTypeTiled        = "tiledimage"
	PartTypeDeepScanline = "deepscanline"
	PartTypeDeepTiled    = "deeptile"
)

// requiredAttributes must be present in every image header.
// The type tag alone is not enough: a header read with KeepUnknown and a
// sparse registry holds *Opaque values under standard tags.
var requiredAttributes = []struct {
	name, typeName string
	is             func(Value) bool
}{
	{AttrNameChannels, AttrTypeChlist, isValue[ChannelList]},
	{AttrNameCompression, AttrTypeCompression, isValue[Compression]},
	{AttrNameDataWindow, AttrTypeBox2i, isValue[Box2i]},
	{AttrNameDisplayWindow, AttrTypeBox2i, isValue[Box2i]},
	{AttrNameLineOrder, AttrTypeLineOrder, isValue[LineOrder]},
	{AttrNamePixelAspectRatio, AttrTypeFloat, isValue[Float]},
	{AttrNameScreenWindowCenter, AttrTypeV2f, isValue[V2f]},
	{AttrNameScreenWindowWidth, AttrTypeFloat, isValue[Float]},
}

func isValue[T any, P valuePtr[T]](v Value) bool {
	p, ok := v.(P)
	return ok && p != nil
}

// NewScanlineHeader creates a header for a width x height scanline image
// with half-float R, G and B channels and ZIP compression.
func NewScanlineHeader(width, height int) *Header {
	h := NewHeader()
	cl := NewChannelList()
	cl.Add(NewChannel("R", PixelTypeHalf))
	cl.Add(NewChannel("G", PixelTypeHalf))
	cl.Add(NewChannel("B", PixelTypeHalf))
	h.SetChannels(cl)

	window := Box2i{Max: V2i{int32(width - 1), int32(height - 1)}}
	h.SetCompression(CompressionZIP)
	h.SetDataWindow(window)
	h.SetDisplayWindow(window)
	h.SetLineOrder(LineOrderIncreasing)
	h.SetPixelAspectRatio(1)
	h.SetScreenWindowCenter(V2f{})
	h.SetScreenWindowWidth(1)
	return h
}

// Channels returns the channel list, or nil if unset.
func (h *Header) Channels() *ChannelList {
	if a := h.Get(AttrNameChannels); a != nil {
		if cl, ok := a.Value.(*ChannelList); ok {
			return cl
		}
	}
	return nil
}

// SetChannels sets the channel list.
func (h *Header) SetChannels(cl *ChannelList) {
	h.Set(New(AttrNameChannels, cl))
}

// Compression returns the compression method, CompressionNone if unset.
func (h *Header) Compression() Compression {
	c, _ := Lookup[Compression](h, AttrNameCompression)
	return c
}

// SetCompression sets the compression method.
func (h *Header) SetCompression(c Compression) {
	Put(h, AttrNameCompression, c)
}

// DataWindow returns the data window.
func (h *Header) DataWindow() Box2i {
	b, _ := Lookup[Box2i](h, AttrNameDataWindow)
	return b
}

// SetDataWindow sets the data window.
func (h *Header) SetDataWindow(b Box2i) {
	Put(h, AttrNameDataWindow, b)
}

// DisplayWindow returns the display window.
func (h *Header) DisplayWindow() Box2i {
	b, _ := Lookup[Box2i](h, AttrNameDisplayWindow)
	return b
}

// SetDisplayWindow sets the display window.
func (h *Header) SetDisplayWindow(b Box2i) {
	Put(h, AttrNameDisplayWindow, b)
}

// LineOrder returns the line order, LineOrderIncreasing if unset.
func (h *Header) LineOrder() LineOrder {
	lo, _ := Lookup[LineOrder](h, AttrNameLineOrder)
	return lo
}

// SetLineOrder sets the line order.
func (h *Header) SetLineOrder(lo LineOrder) {
	Put(h, AttrNameLineOrder, lo)
}

// PixelAspectRatio returns the pixel aspect ratio, 1 if unset.
func (h *Header) PixelAspectRatio() float32 {
	if v, ok := Lookup[Float](h, AttrNamePixelAspectRatio); ok {
		return float32(v)
	}
	return 1
}

// SetPixelAspectRatio sets the pixel aspect ratio.
func (h *Header) SetPixelAspectRatio(ratio float32) {
	Put(h, AttrNamePixelAspectRatio, Float(ratio))
}

// ScreenWindowCenter returns the screen window center.
func (h *Header) ScreenWindowCenter() V2f {
	v, _ := Lookup[V2f](h, AttrNameScreenWindowCenter)
	return v
}

// SetScreenWindowCenter sets the screen window center.
func (h *Header) SetScreenWindowCenter(v V2f) {
	Put(h, AttrNameScreenWindowCenter, v)
}

// ScreenWindowWidth returns the screen window width, 1 if unset.
func (h *Header) ScreenWindowWidth() float32 {
	if v, ok := Lookup[Float](h, AttrNameScreenWindowWidth); ok {
		return float32(v)
	}
	return 1
}

// SetScreenWindowWidth sets the screen window width.
func (h *Header) SetScreenWindowWidth(w float32) {
	Put(h, AttrNameScreenWindowWidth, Float(w))
}

// TileDescription returns the tile description, or nil for scanline
// headers.
func (h *Header) TileDescription() *TileDescription {
	if a := h.Get(AttrNameTiles); a != nil {
		if td, ok := a.Value.(*TileDescription); ok {
			return td
		}
	}
	return nil
}

// SetTileDescription sets the tile description.
func (h *Header) SetTileDescription(td TileDescription) {
	Put(h, AttrNameTiles, td)
}

// IsTiled reports whether the header has a tile description.
func (h *Header) IsTiled() bool {
	return h.TileDescription() != nil
}

// Name returns the part name, or "" if unset.
func (h *Header) Name() string {
	s, _ := Lookup[String](h, AttrNameName)
	return string(s)
}

// SetName sets the part name.
func (h *Header) SetName(name string) {
	Put(h, AttrNameName, String(name))
}

// PartType returns the "type" attribute, or "" if unset.
func (h *Header) PartType() string {
	s, _ := Lookup[String](h, AttrNameType)
	return string(s)
}

// SetPartType sets the "type" attribute.
func (h *Header) SetPartType(t string) {
	Put(h, AttrNameType, String(t))
}

// Width returns the data window width.
func (h *Header) Width() int {
	return int(h.DataWindow().Width())
}

// Height returns the data window height.
func (h *Header) Height() int {
	return int(h.DataWindow().Height())
}

// Validate checks that every required attribute is present with the right
// type and that the windows and channels are usable. All problems are
// reported together.
func (h *Header) Validate() error {
	var errs []error
	for _, req := range requiredAttributes {
		a := h.Get(req.name)
		switch {
		case a == nil:
			errs = append(errs, fmt.Errorf("%w: %s", ErrAttributeNotFound, req.name))
		case a.Type() != req.typeName:
			errs = append(errs, fmt.Errorf("%w: %s has type %s, want %s",
				ErrInvalidAttribute, req.name, a.Type(), req.typeName))
		case !req.is(a.Value):
			errs = append(errs, fmt.Errorf("%w: %s holds %T, not a decoded %s",
				ErrInvalidAttribute, req.name, a.Value, req.typeName))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if cl := h.Channels(); cl == nil || cl.Len() == 0 {
		errs = append(errs, fmt.Errorf("%w: empty channel list", ErrInvalidAttribute))
	} else {
		for _, c := range cl.channels {
			if c.Type.Size() == 0 {
				errs = append(errs, fmt.Errorf("%w: channel %s has pixel type %d",
					ErrInvalidAttribute, c.Name, int32(c.Type)))
			}
			if c.XSampling < 1 || c.YSampling < 1 {
				errs = append(errs, fmt.Errorf("%w: channel %s has sampling %dx%d",
					ErrInvalidAttribute, c.Name, c.XSampling, c.YSampling))
			}
		}
	}
	if h.DataWindow().IsEmpty() {
		errs = append(errs, fmt.Errorf("%w: empty data window", ErrInvalidAttribute))
	}
	if h.DisplayWindow().IsEmpty() {
		errs = append(errs, fmt.Errorf("%w: empty display window", ErrInvalidAttribute))
	}
	if h.Compression() > CompressionHTJ2K32 {
		errs = append(errs, fmt.Errorf("%w: compression %d", ErrInvalidAttribute, h.Compression()))
	}
	if h.LineOrder() > LineOrderRandom {
		errs = append(errs, fmt.Errorf("%w: line order %d", ErrInvalidAttribute, h.LineOrder()))
	}
	if h.PixelAspectRatio() <= 0 {
		errs = append(errs, fmt.Errorf("%w: pixel aspect ratio %g", ErrInvalidAttribute, h.PixelAspectRatio()))
	}
	if td := h.TileDescription(); td != nil {
		if td.XSize == 0 || td.YSize == 0 {
			errs = append(errs, fmt.Errorf("%w: tile size %dx%d", ErrInvalidAttribute, td.XSize, td.YSize))
		}
		if td.Mode > LevelModeRipmap {
			errs = append(errs, fmt.Errorf("%w: level mode %d", ErrInvalidAttribute, td.Mode))
		}
	}
	return errors.Join(errs...)
}
