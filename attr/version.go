package attr

// MagicNumber is the four-byte signature at the start of every OpenEXR file.
var MagicNumber = []byte{0x76, 0x2f, 0x31, 0x01}

// FormatVersion is the only file format version this package reads.
const FormatVersion = 2

// Version is the 32-bit version field that follows the magic number.
// The low byte holds the format version, the remaining bits are flags.
// It is passed to every attribute codec as the format version.
type Version uint32

// Version flags
const (
	FlagTiled     Version = 0x200
	FlagLongNames Version = 0x400
	FlagNonImage  Version = 0x800
	FlagMultiPart Version = 0x1000
)

const (
	// ShortNameLength is the maximum attribute name and type length
	// without FlagLongNames.
	ShortNameLength = 31
	// LongNameLength is the maximum with FlagLongNames.
	LongNameLength = 255
)

// DefaultVersion is a plain single-part scanline version field.
const DefaultVersion = Version(FormatVersion)

// Number returns the format version number.
func (v Version) Number() int {
	return int(v & 0xff)
}

// IsTiled reports whether the single-part tiled flag is set.
func (v Version) IsTiled() bool { return v&FlagTiled != 0 }

// HasLongNames reports whether names and type tags may exceed 31 bytes.
func (v Version) HasLongNames() bool { return v&FlagLongNames != 0 }

// IsNonImage reports whether the file holds deep data.
func (v Version) IsNonImage() bool { return v&FlagNonImage != 0 }

// IsMultiPart reports whether the file holds a sequence of headers.
func (v Version) IsMultiPart() bool { return v&FlagMultiPart != 0 }

// MaxNameLength returns the longest attribute name or type tag this
// version allows.
func (v Version) MaxNameLength() int {
	if v.HasLongNames() {
		return LongNameLength
	}
	return ShortNameLength
}
