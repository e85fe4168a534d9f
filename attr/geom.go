package attr

// V2i represents a 2D integer vector.
type V2i struct {
	X, Y int32
}

// V2f represents a 2D float vector.
type V2f struct {
	X, Y float32
}

// V2d represents a 2D double-precision vector.
type V2d struct {
	X, Y float64
}

// V3i represents a 3D integer vector.
type V3i struct {
	X, Y, Z int32
}

// V3f represents a 3D float vector.
type V3f struct {
	X, Y, Z float32
}

// V3d represents a 3D double-precision vector.
type V3d struct {
	X, Y, Z float64
}

// Box2i represents an axis-aligned 2D integer bounding box.
// Both corners are inclusive. Min greater than Max is representable
// and denotes an empty box.
type Box2i struct {
	Min, Max V2i
}

// Box2f represents an axis-aligned 2D float bounding box.
type Box2f struct {
	Min, Max V2f
}

// Width returns the width of the box.
func (b Box2i) Width() int32 {
	return b.Max.X - b.Min.X + 1
}

// Height returns the height of the box.
func (b Box2i) Height() int32 {
	return b.Max.Y - b.Min.Y + 1
}

// IsEmpty returns true if the box has no area.
func (b Box2i) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Contains returns true if the point (x, y) is inside the box.
func (b Box2i) Contains(x, y int32) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// Width returns the width of the box.
func (b Box2f) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the box.
func (b Box2f) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// M33f represents a 3x3 float matrix stored in row-major order.
type M33f [9]float32

// M44f represents a 4x4 float matrix stored in row-major order.
type M44f [16]float32

// M33d represents a 3x3 double-precision matrix stored in row-major order.
type M33d [9]float64

// M44d represents a 4x4 double-precision matrix stored in row-major order.
type M44d [16]float64

// Identity33 returns the 3x3 identity matrix.
func Identity33() M33f {
	return M33f{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity44 returns the 4x4 identity matrix.
func Identity44() M44f {
	return M44f{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Field helpers shared by the fixed-width kinds. Fields are written in
// argument order with no padding.

func writeInt32s(w Encoder, vs ...int32) error {
	for _, v := range vs {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	return nil
}

func readInt32s(r Decoder, dst ...*int32) error {
	for _, p := range dst {
		v, err := r.ReadInt32()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func writeFloat32s(w Encoder, vs ...float32) error {
	for _, v := range vs {
		if err := w.WriteFloat32(v); err != nil {
			return err
		}
	}
	return nil
}

func readFloat32s(r Decoder, dst ...*float32) error {
	for _, p := range dst {
		v, err := r.ReadFloat32()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func writeFloat64s(w Encoder, vs ...float64) error {
	for _, v := range vs {
		if err := w.WriteFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

func readFloat64s(r Decoder, dst ...*float64) error {
	for _, p := range dst {
		v, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// TypeName returns "box2i".
func (*Box2i) TypeName() string { return AttrTypeBox2i }

// WriteValueTo writes min.x, min.y, max.x, max.y as int32.
func (b *Box2i) WriteValueTo(w Encoder, _ Version) error {
	return writeInt32s(w, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// ReadValueFrom reads a 16-byte box body.
func (b *Box2i) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeBox2i, size, 16); err != nil {
		return err
	}
	var v Box2i
	if err := readInt32s(r, &v.Min.X, &v.Min.Y, &v.Max.X, &v.Max.Y); err != nil {
		return err
	}
	*b = v
	return nil
}

// TypeName returns "box2f".
func (*Box2f) TypeName() string { return AttrTypeBox2f }

// WriteValueTo writes min.x, min.y, max.x, max.y as float32. NaN payloads
// are preserved bit for bit.
func (b *Box2f) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// ReadValueFrom reads a 16-byte box body.
func (b *Box2f) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeBox2f, size, 16); err != nil {
		return err
	}
	var v Box2f
	if err := readFloat32s(r, &v.Min.X, &v.Min.Y, &v.Max.X, &v.Max.Y); err != nil {
		return err
	}
	*b = v
	return nil
}

func (*V2i) TypeName() string { return AttrTypeV2i }

func (v *V2i) WriteValueTo(w Encoder, _ Version) error {
	return writeInt32s(w, v.X, v.Y)
}

func (v *V2i) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV2i, size, 8); err != nil {
		return err
	}
	var n V2i
	if err := readInt32s(r, &n.X, &n.Y); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*V2f) TypeName() string { return AttrTypeV2f }

func (v *V2f) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, v.X, v.Y)
}

func (v *V2f) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV2f, size, 8); err != nil {
		return err
	}
	var n V2f
	if err := readFloat32s(r, &n.X, &n.Y); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*V2d) TypeName() string { return AttrTypeV2d }

func (v *V2d) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat64s(w, v.X, v.Y)
}

func (v *V2d) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV2d, size, 16); err != nil {
		return err
	}
	var n V2d
	if err := readFloat64s(r, &n.X, &n.Y); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*V3i) TypeName() string { return AttrTypeV3i }

func (v *V3i) WriteValueTo(w Encoder, _ Version) error {
	return writeInt32s(w, v.X, v.Y, v.Z)
}

func (v *V3i) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV3i, size, 12); err != nil {
		return err
	}
	var n V3i
	if err := readInt32s(r, &n.X, &n.Y, &n.Z); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*V3f) TypeName() string { return AttrTypeV3f }

func (v *V3f) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, v.X, v.Y, v.Z)
}

func (v *V3f) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV3f, size, 12); err != nil {
		return err
	}
	var n V3f
	if err := readFloat32s(r, &n.X, &n.Y, &n.Z); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*V3d) TypeName() string { return AttrTypeV3d }

func (v *V3d) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat64s(w, v.X, v.Y, v.Z)
}

func (v *V3d) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeV3d, size, 24); err != nil {
		return err
	}
	var n V3d
	if err := readFloat64s(r, &n.X, &n.Y, &n.Z); err != nil {
		return err
	}
	*v = n
	return nil
}

func (*M33f) TypeName() string { return AttrTypeM33f }

func (m *M33f) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, m[:]...)
}

func (m *M33f) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeM33f, size, 9*4); err != nil {
		return err
	}
	var n M33f
	for i := range n {
		if err := readFloat32s(r, &n[i]); err != nil {
			return err
		}
	}
	*m = n
	return nil
}

func (*M44f) TypeName() string { return AttrTypeM44f }

func (m *M44f) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, m[:]...)
}

func (m *M44f) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeM44f, size, 16*4); err != nil {
		return err
	}
	var n M44f
	for i := range n {
		if err := readFloat32s(r, &n[i]); err != nil {
			return err
		}
	}
	*m = n
	return nil
}

func (*M33d) TypeName() string { return AttrTypeM33d }

func (m *M33d) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat64s(w, m[:]...)
}

func (m *M33d) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeM33d, size, 9*8); err != nil {
		return err
	}
	var n M33d
	for i := range n {
		if err := readFloat64s(r, &n[i]); err != nil {
			return err
		}
	}
	*m = n
	return nil
}

func (*M44d) TypeName() string { return AttrTypeM44d }

func (m *M44d) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat64s(w, m[:]...)
}

func (m *M44d) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeM44d, size, 16*8); err != nil {
		return err
	}
	var n M44d
	for i := range n {
		if err := readFloat64s(r, &n[i]); err != nil {
			return err
		}
	}
	*m = n
	return nil
}
