package exrmeta

import "github.com/mrjoshuak/go-exrattr/attr"

// SetWhiteLuminance sets the luminance of white in cd/m².
func SetWhiteLuminance(h *attr.Header, nits float32) { setFloat(h, AttrWhiteLuminance, nits) }

// WhiteLuminance returns the luminance of white in cd/m².
func WhiteLuminance(h *attr.Header) float32 { return getFloat(h, AttrWhiteLuminance) }

// SetXDensity sets the horizontal pixel density in pixels per inch.
func SetXDensity(h *attr.Header, ppi float32) { setFloat(h, AttrXDensity, ppi) }

// XDensity returns the horizontal pixel density in pixels per inch.
func XDensity(h *attr.Header) float32 { return getFloat(h, AttrXDensity) }

// SetAdoptedNeutral sets the adopted neutral white point as CIE xy.
func SetAdoptedNeutral(h *attr.Header, xy attr.V2f) {
	attr.Put(h, AttrAdoptedNeutral, xy)
}

// AdoptedNeutral returns the adopted neutral white point, or nil.
func AdoptedNeutral(h *attr.Header) *attr.V2f {
	return lookupPtr[attr.V2f](h, AttrAdoptedNeutral)
}

// SetChromaticities sets the color primaries and white point.
func SetChromaticities(h *attr.Header, c attr.Chromaticities) {
	attr.Put(h, AttrChromaticities, c)
}

// GetChromaticities returns the color primaries and white point, or nil
// if not set. Callers that need a value should fall back to
// attr.DefaultChromaticities.
func GetChromaticities(h *attr.Header) *attr.Chromaticities {
	return lookupPtr[attr.Chromaticities](h, AttrChromaticities)
}

// SetWorldToCamera sets the world-to-camera transformation matrix.
func SetWorldToCamera(h *attr.Header, m attr.M44f) {
	attr.Put(h, AttrWorldToCamera, m)
}

// WorldToCamera returns the world-to-camera matrix, or nil if not set.
func WorldToCamera(h *attr.Header) *attr.M44f {
	return lookupPtr[attr.M44f](h, AttrWorldToCamera)
}

// SetWorldToNDC sets the world-to-NDC transformation matrix.
func SetWorldToNDC(h *attr.Header, m attr.M44f) {
	attr.Put(h, AttrWorldToNDC, m)
}

// WorldToNDC returns the world-to-NDC matrix, or nil if not set.
func WorldToNDC(h *attr.Header) *attr.M44f {
	return lookupPtr[attr.M44f](h, AttrWorldToNDC)
}
