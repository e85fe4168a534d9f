package attr

import (
	"sort"
	"strings"
)

// PixelType is the data type of a channel's samples.
type PixelType int32

const (
	PixelTypeUint  PixelType = 0
	PixelTypeHalf  PixelType = 1
	PixelTypeFloat PixelType = 2
)

// String returns a string representation of the pixel type.
func (pt PixelType) String() string {
	switch pt {
	case PixelTypeUint:
		return "uint"
	case PixelTypeHalf:
		return "half"
	case PixelTypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Size returns the number of bytes per sample, or 0 for unknown types.
func (pt PixelType) Size() int {
	switch pt {
	case PixelTypeHalf:
		return 2
	case PixelTypeUint, PixelTypeFloat:
		return 4
	default:
		return 0
	}
}

// Channel describes one image channel.
type Channel struct {
	Name      string
	Type      PixelType
	PLinear   bool
	XSampling int32
	YSampling int32
}

// NewChannel returns a channel with 1x1 sampling.
func NewChannel(name string, pt PixelType) Channel {
	return Channel{Name: name, Type: pt, XSampling: 1, YSampling: 1}
}

// Layer returns the part of the name before the last '.', or "".
func (c Channel) Layer() string {
	if i := strings.LastIndexByte(c.Name, '.'); i >= 0 {
		return c.Name[:i]
	}
	return ""
}

// BaseName returns the part of the name after the last '.'.
func (c Channel) BaseName() string {
	return c.Name[strings.LastIndexByte(c.Name, '.')+1:]
}

// ChannelList is the "chlist" kind: channels kept sorted by name.
type ChannelList struct {
	channels []Channel
}

// NewChannelList returns an empty channel list.
func NewChannelList() *ChannelList {
	return &ChannelList{}
}

// Len returns the number of channels.
func (cl *ChannelList) Len() int {
	return len(cl.channels)
}

// At returns the i'th channel in name order.
func (cl *ChannelList) At(i int) Channel {
	return cl.channels[i]
}

// Channels returns a copy of the channels in name order.
func (cl *ChannelList) Channels() []Channel {
	return append([]Channel(nil), cl.channels...)
}

func (cl *ChannelList) find(name string) (int, bool) {
	i := sort.Search(len(cl.channels), func(i int) bool { return cl.channels[i].Name >= name })
	return i, i < len(cl.channels) && cl.channels[i].Name == name
}

// Add inserts c in name order. It returns false if a channel with the
// same name already exists.
func (cl *ChannelList) Add(c Channel) bool {
	i, found := cl.find(c.Name)
	if found {
		return false
	}
	cl.channels = append(cl.channels, Channel{})
	copy(cl.channels[i+1:], cl.channels[i:])
	cl.channels[i] = c
	return true
}

// Get returns the named channel.
func (cl *ChannelList) Get(name string) (Channel, bool) {
	if i, found := cl.find(name); found {
		return cl.channels[i], true
	}
	return Channel{}, false
}

func (*ChannelList) TypeName() string { return AttrTypeChlist }

// WriteValueTo writes each channel as name\0, int32 pixel type, one pLinear
// byte, three reserved zero bytes, int32 x and y sampling, then a closing
// null byte.
func (cl *ChannelList) WriteValueTo(w Encoder, _ Version) error {
	for _, c := range cl.channels {
		if err := w.WriteString(c.Name); err != nil {
			return err
		}
		var plinear byte
		if c.PLinear {
			plinear = 1
		}
		if err := w.WriteInt32(int32(c.Type)); err != nil {
			return err
		}
		if err := w.WriteBytes([]byte{plinear, 0, 0, 0}); err != nil {
			return err
		}
		if err := writeInt32s(w, c.XSampling, c.YSampling); err != nil {
			return err
		}
	}
	return w.WriteByte(0)
}

func (cl *ChannelList) ReadValueFrom(r Decoder, size int, v Version) error {
	var out ChannelList
	for {
		name, err := r.ReadString(v.MaxNameLength())
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		c := Channel{Name: name}
		var pt int32
		if err := readInt32s(r, &pt); err != nil {
			return err
		}
		c.Type = PixelType(pt)
		var flags [4]byte
		if err := r.ReadBytesInto(flags[:]); err != nil {
			return err
		}
		c.PLinear = flags[0] != 0
		if err := readInt32s(r, &c.XSampling, &c.YSampling); err != nil {
			return err
		}
		if !out.Add(c) {
			return malformed(AttrTypeChlist, size, "duplicate channel %q", name)
		}
	}
	*cl = out
	return nil
}
