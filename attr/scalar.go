package attr

// Int is a 32-bit signed integer attribute.
type Int int32

// Float is a 32-bit float attribute.
type Float float32

// Double is a 64-bit float attribute.
type Double float64

func (*Int) TypeName() string { return AttrTypeInt }

func (v *Int) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteInt32(int32(*v))
}

func (v *Int) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeInt, size, 4); err != nil {
		return err
	}
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	*v = Int(n)
	return nil
}

func (*Float) TypeName() string { return AttrTypeFloat }

func (v *Float) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteFloat32(float32(*v))
}

func (v *Float) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeFloat, size, 4); err != nil {
		return err
	}
	f, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	*v = Float(f)
	return nil
}

func (*Double) TypeName() string { return AttrTypeDouble }

func (v *Double) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteFloat64(float64(*v))
}

func (v *Double) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeDouble, size, 8); err != nil {
		return err
	}
	f, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	*v = Double(f)
	return nil
}

// Rational represents a rational number as numerator/denominator.
type Rational struct {
	Num   int32
	Denom uint32
}

// Float64 returns the rational as a float64, or 0 for a zero denominator.
func (r Rational) Float64() float64 {
	if r.Denom == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Denom)
}

func (*Rational) TypeName() string { return AttrTypeRational }

func (v *Rational) WriteValueTo(w Encoder, _ Version) error {
	if err := w.WriteInt32(v.Num); err != nil {
		return err
	}
	return w.WriteUint32(v.Denom)
}

func (v *Rational) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeRational, size, 8); err != nil {
		return err
	}
	num, err := r.ReadInt32()
	if err != nil {
		return err
	}
	denom, err := r.ReadUint32()
	if err != nil {
		return err
	}
	*v = Rational{Num: num, Denom: denom}
	return nil
}

// Chromaticities defines color primaries and white point
// using CIE xy chromaticity coordinates.
type Chromaticities struct {
	RedX, RedY     float32
	GreenX, GreenY float32
	BlueX, BlueY   float32
	WhiteX, WhiteY float32
}

// DefaultChromaticities returns the Rec. 709 primaries with a D65 white
// point, which readers assume when the attribute is absent.
func DefaultChromaticities() Chromaticities {
	return Chromaticities{
		RedX: 0.6400, RedY: 0.3300,
		GreenX: 0.3000, GreenY: 0.6000,
		BlueX: 0.1500, BlueY: 0.0600,
		WhiteX: 0.3127, WhiteY: 0.3290,
	}
}

func (*Chromaticities) TypeName() string { return AttrTypeChromaticities }

func (c *Chromaticities) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w,
		c.RedX, c.RedY, c.GreenX, c.GreenY,
		c.BlueX, c.BlueY, c.WhiteX, c.WhiteY)
}

func (c *Chromaticities) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeChromaticities, size, 32); err != nil {
		return err
	}
	var n Chromaticities
	err := readFloat32s(r,
		&n.RedX, &n.RedY, &n.GreenX, &n.GreenY,
		&n.BlueX, &n.BlueY, &n.WhiteX, &n.WhiteY)
	if err != nil {
		return err
	}
	*c = n
	return nil
}

// Compression identifies the pixel compression method named in a header.
// This package only carries the value; it does not compress pixels.
type Compression uint8

const (
	CompressionNone     Compression = 0
	CompressionRLE      Compression = 1
	CompressionZIPS     Compression = 2
	CompressionZIP      Compression = 3
	CompressionPIZ      Compression = 4
	CompressionPXR24    Compression = 5
	CompressionB44      Compression = 6
	CompressionB44A     Compression = 7
	CompressionDWAA     Compression = 8
	CompressionDWAB     Compression = 9
	CompressionHTJ2K256 Compression = 10
	CompressionHTJ2K32  Compression = 11
)

var compressionNames = [...]string{
	"none", "rle", "zips", "zip", "piz", "pxr24",
	"b44", "b44a", "dwaa", "dwab", "htj2k256", "htj2k32",
}

// String returns a string representation of the compression type.
func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return "unknown"
}

// LineOrder defines the order of scanlines in the file.
type LineOrder uint8

const (
	LineOrderIncreasing LineOrder = 0
	LineOrderDecreasing LineOrder = 1
	LineOrderRandom     LineOrder = 2
)

// String returns a string representation of the line order.
func (lo LineOrder) String() string {
	switch lo {
	case LineOrderIncreasing:
		return "increasing_y"
	case LineOrderDecreasing:
		return "decreasing_y"
	case LineOrderRandom:
		return "random_y"
	default:
		return "unknown"
	}
}

// EnvMap defines environment map types.
type EnvMap uint8

const (
	EnvMapLatLong EnvMap = 0
	EnvMapCube    EnvMap = 1
)

// String returns a string representation of the environment map type.
func (e EnvMap) String() string {
	switch e {
	case EnvMapLatLong:
		return "latlong"
	case EnvMapCube:
		return "cube"
	default:
		return "unknown"
	}
}

// DeepImageState describes how samples in a deep image are arranged.
type DeepImageState uint8

const (
	DeepImageStateMessy          DeepImageState = 0
	DeepImageStateSorted         DeepImageState = 1
	DeepImageStateNonOverlapping DeepImageState = 2
	DeepImageStateTidy           DeepImageState = 3
)

// String returns a string representation of the deep image state.
func (s DeepImageState) String() string {
	switch s {
	case DeepImageStateMessy:
		return "messy"
	case DeepImageStateSorted:
		return "sorted"
	case DeepImageStateNonOverlapping:
		return "non_overlapping"
	case DeepImageStateTidy:
		return "tidy"
	default:
		return "unknown"
	}
}

// readEnum reads the single byte body shared by all enum kinds.
func readEnum(r Decoder, typeName string, size int) (byte, error) {
	if err := checkSize(typeName, size, 1); err != nil {
		return 0, err
	}
	return r.ReadByte()
}

func (*Compression) TypeName() string { return AttrTypeCompression }

func (c *Compression) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteByte(byte(*c))
}

func (c *Compression) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := readEnum(r, AttrTypeCompression, size)
	if err != nil {
		return err
	}
	*c = Compression(b)
	return nil
}

func (*LineOrder) TypeName() string { return AttrTypeLineOrder }

func (lo *LineOrder) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteByte(byte(*lo))
}

func (lo *LineOrder) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := readEnum(r, AttrTypeLineOrder, size)
	if err != nil {
		return err
	}
	*lo = LineOrder(b)
	return nil
}

func (*EnvMap) TypeName() string { return AttrTypeEnvmap }

func (e *EnvMap) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteByte(byte(*e))
}

func (e *EnvMap) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := readEnum(r, AttrTypeEnvmap, size)
	if err != nil {
		return err
	}
	*e = EnvMap(b)
	return nil
}

func (*DeepImageState) TypeName() string { return AttrTypeDeepImageState }

func (s *DeepImageState) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteByte(byte(*s))
}

func (s *DeepImageState) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := readEnum(r, AttrTypeDeepImageState, size)
	if err != nil {
		return err
	}
	*s = DeepImageState(b)
	return nil
}

// LevelMode defines how multi-resolution levels are stored.
type LevelMode uint8

const (
	LevelModeOne    LevelMode = 0
	LevelModeMipmap LevelMode = 1
	LevelModeRipmap LevelMode = 2
)

// LevelRoundingMode defines how level sizes are rounded.
type LevelRoundingMode uint8

const (
	LevelRoundDown LevelRoundingMode = 0
	LevelRoundUp   LevelRoundingMode = 1
)

// TileDescription describes tile dimensions and level modes.
type TileDescription struct {
	XSize        uint32
	YSize        uint32
	Mode         LevelMode
	RoundingMode LevelRoundingMode
}

func (*TileDescription) TypeName() string { return AttrTypeTileDesc }

// WriteValueTo writes xSize, ySize and one byte holding the level mode in
// the low nibble and the rounding mode in the high nibble.
func (td *TileDescription) WriteValueTo(w Encoder, _ Version) error {
	if err := w.WriteUint32(td.XSize); err != nil {
		return err
	}
	if err := w.WriteUint32(td.YSize); err != nil {
		return err
	}
	return w.WriteByte(byte(td.Mode)&0x0F | byte(td.RoundingMode)<<4)
}

func (td *TileDescription) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeTileDesc, size, 9); err != nil {
		return err
	}
	x, err := r.ReadUint32()
	if err != nil {
		return err
	}
	y, err := r.ReadUint32()
	if err != nil {
		return err
	}
	mode, err := r.ReadByte()
	if err != nil {
		return err
	}
	*td = TileDescription{
		XSize:        x,
		YSize:        y,
		Mode:         LevelMode(mode & 0x0F),
		RoundingMode: LevelRoundingMode((mode >> 4) & 0x0F),
	}
	return nil
}
