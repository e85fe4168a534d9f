package exrmeta

import (
	"math"

	"github.com/mrjoshuak/go-exrattr/attr"
)

// Standard frame rates as Rational values.
var (
	// Film frame rates
	FPS24    = attr.Rational{Num: 24, Denom: 1}       // 24 fps - Standard cinema
	FPS23976 = attr.Rational{Num: 24000, Denom: 1001} // 23.976 fps - NTSC film pulldown
	FPS48    = attr.Rational{Num: 48, Denom: 1}       // 48 fps - High frame rate cinema

	// PAL frame rates
	FPS25 = attr.Rational{Num: 25, Denom: 1} // 25 fps - PAL standard
	FPS50 = attr.Rational{Num: 50, Denom: 1} // 50 fps - PAL high frame rate

	// NTSC frame rates
	FPS2997 = attr.Rational{Num: 30000, Denom: 1001} // 29.97 fps - NTSC standard
	FPS30   = attr.Rational{Num: 30, Denom: 1}       // 30 fps - Non-drop NTSC
	FPS5994 = attr.Rational{Num: 60000, Denom: 1001} // 59.94 fps - NTSC high frame rate

	// High frame rates
	FPS60  = attr.Rational{Num: 60, Denom: 1}
	FPS120 = attr.Rational{Num: 120, Denom: 1}
)

var frameRates = []struct {
	rate attr.Rational
	name string
}{
	{FPS24, "24 fps (Cinema)"},
	{FPS23976, "23.976 fps (NTSC Film)"},
	{FPS25, "25 fps (PAL)"},
	{FPS2997, "29.97 fps (NTSC)"},
	{FPS30, "30 fps"},
	{FPS48, "48 fps (HFR Cinema)"},
	{FPS50, "50 fps (PAL HFR)"},
	{FPS5994, "59.94 fps (NTSC HFR)"},
	{FPS60, "60 fps"},
	{FPS120, "120 fps"},
}

// SetFramesPerSecond sets the frame rate.
func SetFramesPerSecond(h *attr.Header, r attr.Rational) {
	attr.Put(h, AttrFramesPerSecond, r)
}

// FramesPerSecond returns the frame rate, or nil if not set.
func FramesPerSecond(h *attr.Header) *attr.Rational {
	return lookupPtr[attr.Rational](h, AttrFramesPerSecond)
}

// FloatToRational finds a rational approximation of f. Standard frame
// rates are matched exactly; anything else is approximated by continued
// fractions with a denominator of at most maxDenom (1001 when maxDenom is
// not positive).
func FloatToRational(f float64, maxDenom int32) attr.Rational {
	if maxDenom <= 0 {
		maxDenom = 1001
	}
	if f <= 0 || math.IsNaN(f) {
		return attr.Rational{Num: 0, Denom: 1}
	}
	for _, fr := range frameRates {
		if math.Abs(f-fr.rate.Float64()) < 0.0001 {
			return fr.rate
		}
	}
	return continuedFraction(f, maxDenom)
}

// IsDropFrame reports whether r is one of the NTSC 1000/1001 rates.
func IsDropFrame(r attr.Rational) bool {
	return r.Denom == 1001 && (r.Num == 24000 || r.Num == 30000 || r.Num == 60000)
}

// FrameRateName returns a human-readable name for a standard frame rate,
// or "" for any other rate.
func FrameRateName(r attr.Rational) string {
	for _, fr := range frameRates {
		if fr.rate == r {
			return fr.name
		}
	}
	return ""
}

func continuedFraction(f float64, maxDenom int32) attr.Rational {
	if f >= math.MaxInt32 {
		return attr.Rational{Num: math.MaxInt32, Denom: 1}
	}
	var (
		n0, n1 int64 = 0, 1
		d0, d1 int64 = 1, 0
	)
	x := f
	for i := 0; i < 20; i++ {
		a := int64(x)
		n := a*n1 + n0
		d := a*d1 + d0
		if d > int64(maxDenom) || n > math.MaxInt32 {
			break
		}
		n0, n1 = n1, n
		d0, d1 = d1, d

		frac := x - float64(a)
		if frac < 1e-10 {
			break
		}
		x = 1 / frac
	}
	if d1 == 0 {
		return attr.Rational{Num: 0, Denom: 1}
	}
	return attr.Rational{Num: int32(n1), Denom: uint32(d1)}
}
