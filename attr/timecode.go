package attr

import (
	"errors"
	"fmt"
)

// TimeCode validation errors
var (
	ErrTimeCodeHoursOutOfRange   = errors.New("timecode: hours out of range (0-23)")
	ErrTimeCodeMinutesOutOfRange = errors.New("timecode: minutes out of range (0-59)")
	ErrTimeCodeSecondsOutOfRange = errors.New("timecode: seconds out of range (0-59)")
	ErrTimeCodeFramesOutOfRange  = errors.New("timecode: frames out of range (0-29)")
)

// TimeCode is an SMPTE 12M time code as stored in the "timecode" kind:
// a packed BCD time-and-flags word in TV60 layout and a word of binary
// user groups.
//
//	bits 0-5:   frame (BCD)
//	bit 6:      drop frame
//	bit 7:      color frame
//	bits 8-14:  seconds (BCD)
//	bit 15:     field/phase
//	bits 16-22: minutes (BCD)
//	bits 24-29: hours (BCD)
type TimeCode struct {
	TimeAndFlags uint32
	UserData     uint32
}

const dropFrameBit = 1 << 6

// NewTimeCode creates a TimeCode from hours, minutes, seconds and frames.
func NewTimeCode(hours, minutes, seconds, frames int, dropFrame bool) (TimeCode, error) {
	switch {
	case hours < 0 || hours > 23:
		return TimeCode{}, ErrTimeCodeHoursOutOfRange
	case minutes < 0 || minutes > 59:
		return TimeCode{}, ErrTimeCodeMinutesOutOfRange
	case seconds < 0 || seconds > 59:
		return TimeCode{}, ErrTimeCodeSecondsOutOfRange
	case frames < 0 || frames > 29:
		return TimeCode{}, ErrTimeCodeFramesOutOfRange
	}
	t := toBCD(frames) | toBCD(seconds)<<8 | toBCD(minutes)<<16 | toBCD(hours)<<24
	if dropFrame {
		t |= dropFrameBit
	}
	return TimeCode{TimeAndFlags: t}, nil
}

// MustNewTimeCode is like NewTimeCode but panics on out-of-range values.
func MustNewTimeCode(hours, minutes, seconds, frames int, dropFrame bool) TimeCode {
	tc, err := NewTimeCode(hours, minutes, seconds, frames, dropFrame)
	if err != nil {
		panic(err)
	}
	return tc
}

func toBCD(v int) uint32 {
	return uint32(v%10 | (v/10%10)<<4)
}

func fromBCD(b uint32) int {
	return int(b&0x0f) + 10*int((b>>4)&0x0f)
}

// Hours returns the hours component (0-23).
func (tc TimeCode) Hours() int { return fromBCD((tc.TimeAndFlags >> 24) & 0x3f) }

// Minutes returns the minutes component (0-59).
func (tc TimeCode) Minutes() int { return fromBCD((tc.TimeAndFlags >> 16) & 0x7f) }

// Seconds returns the seconds component (0-59).
func (tc TimeCode) Seconds() int { return fromBCD((tc.TimeAndFlags >> 8) & 0x7f) }

// Frame returns the frames component (0-29).
func (tc TimeCode) Frame() int { return fromBCD(tc.TimeAndFlags & 0x3f) }

// DropFrame returns true if this is a drop-frame time code.
func (tc TimeCode) DropFrame() bool { return tc.TimeAndFlags&dropFrameBit != 0 }

// String formats the time code as HH:MM:SS:FF, with ';' before the frame
// for drop-frame codes.
func (tc TimeCode) String() string {
	sep := ':'
	if tc.DropFrame() {
		sep = ';'
	}
	return fmt.Sprintf("%02d:%02d:%02d%c%02d", tc.Hours(), tc.Minutes(), tc.Seconds(), sep, tc.Frame())
}

func (*TimeCode) TypeName() string { return AttrTypeTimecode }

func (tc *TimeCode) WriteValueTo(w Encoder, _ Version) error {
	if err := w.WriteUint32(tc.TimeAndFlags); err != nil {
		return err
	}
	return w.WriteUint32(tc.UserData)
}

func (tc *TimeCode) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeTimecode, size, 8); err != nil {
		return err
	}
	t, err := r.ReadUint32()
	if err != nil {
		return err
	}
	u, err := r.ReadUint32()
	if err != nil {
		return err
	}
	*tc = TimeCode{TimeAndFlags: t, UserData: u}
	return nil
}

// KeyCode represents a film key code (edge code).
type KeyCode struct {
	FilmMfcCode   int32
	FilmType      int32
	Prefix        int32
	Count         int32
	PerfOffset    int32
	PerfsPerFrame int32
	PerfsPerCount int32
}

func (*KeyCode) TypeName() string { return AttrTypeKeycode }

func (kc *KeyCode) WriteValueTo(w Encoder, _ Version) error {
	return writeInt32s(w,
		kc.FilmMfcCode, kc.FilmType, kc.Prefix, kc.Count,
		kc.PerfOffset, kc.PerfsPerFrame, kc.PerfsPerCount)
}

func (kc *KeyCode) ReadValueFrom(r Decoder, size int, _ Version) error {
	if err := checkSize(AttrTypeKeycode, size, 7*4); err != nil {
		return err
	}
	var n KeyCode
	err := readInt32s(r,
		&n.FilmMfcCode, &n.FilmType, &n.Prefix, &n.Count,
		&n.PerfOffset, &n.PerfsPerFrame, &n.PerfsPerCount)
	if err != nil {
		return err
	}
	*kc = n
	return nil
}
