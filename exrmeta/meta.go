// Package exrmeta provides typed accessors for the optional metadata
// attributes defined by the OpenEXR standard.
//
// Every accessor works on an *attr.Header. Getters that return a pointer
// or a bool report whether the attribute is present with the expected
// kind; the others return the zero value when it is not.
//
//	h := attr.NewScanlineHeader(1920, 1080)
//	exrmeta.SetOwner(h, "Studio XYZ")
//	exrmeta.SetFramesPerSecond(h, exrmeta.FPS24)
//	exrmeta.SetISOSpeed(h, 800)
package exrmeta

import (
	"strings"

	"github.com/mrjoshuak/go-exrattr/attr"
)

// Standard attribute names
const (
	// Production metadata
	AttrOwner           = "owner"
	AttrComments        = "comments"
	AttrCapDate         = "capDate"
	AttrUTCOffset       = "utcOffset"
	AttrFramesPerSecond = "framesPerSecond"
	AttrReelName        = "reelName"
	AttrImageCounter    = "imageCounter"
	AttrTimeCode        = "timeCode"
	AttrKeyCode         = "keyCode"
	AttrMultiView       = "multiView"
	AttrIDManifest      = "idManifest"
	AttrDeepImageState  = "deepImageState"

	// Environment/texture
	AttrEnvMap    = "envmap"
	AttrWrapModes = "wrapmodes"

	// Camera properties
	AttrAperture     = "aperture"
	AttrFocus        = "focus"
	AttrISOSpeed     = "isoSpeed"
	AttrExpTime      = "expTime"
	AttrShutterAngle = "shutterAngle"
	AttrTStop        = "tStop"

	// Lens properties
	AttrNominalFocalLength   = "nominalFocalLength"
	AttrEffectiveFocalLength = "effectiveFocalLength"
	AttrPinholeFocalLength   = "pinholeFocalLength"

	// Camera identification
	AttrCameraMake            = "cameraMake"
	AttrCameraModel           = "cameraModel"
	AttrCameraSerialNumber    = "cameraSerialNumber"
	AttrCameraFirmwareVersion = "cameraFirmwareVersion"
	AttrCameraUUID            = "cameraUuid"
	AttrCameraLabel           = "cameraLabel"
	AttrCameraCCTSetting      = "cameraCCTSetting"
	AttrCameraTintSetting     = "cameraTintSetting"
	AttrCameraColorBalance    = "cameraColorBalance"

	// Lens identification
	AttrLensMake            = "lensMake"
	AttrLensModel           = "lensModel"
	AttrLensSerialNumber    = "lensSerialNumber"
	AttrLensFirmwareVersion = "lensFirmwareVersion"

	// Geolocation
	AttrLongitude = "longitude"
	AttrLatitude  = "latitude"
	AttrAltitude  = "altitude"

	// Display/color
	AttrWhiteLuminance = "whiteLuminance"
	AttrXDensity       = "xDensity"
	AttrAdoptedNeutral = "adoptedNeutral"
	AttrChromaticities = "chromaticities"

	// 3D transforms
	AttrWorldToCamera = "worldToCamera"
	AttrWorldToNDC    = "worldToNDC"

	// Sensor metadata
	AttrSensorCenterOffset         = "sensorCenterOffset"
	AttrSensorOverallDimensions    = "sensorOverallDimensions"
	AttrSensorPhotositePitch       = "sensorPhotositePitch"
	AttrSensorAcquisitionRectangle = "sensorAcquisitionRectangle"
)

// SetOwner sets the file owner/creator.
func SetOwner(h *attr.Header, owner string) { setString(h, AttrOwner, owner) }

// Owner returns the file owner/creator.
func Owner(h *attr.Header) string { return getString(h, AttrOwner) }

// SetComments sets the file comments.
func SetComments(h *attr.Header, comments string) { setString(h, AttrComments, comments) }

// Comments returns the file comments.
func Comments(h *attr.Header) string { return getString(h, AttrComments) }

// SetCapDate sets the capture date. The standard format is
// "YYYY:MM:DD hh:mm:ss" in local time.
func SetCapDate(h *attr.Header, date string) { setString(h, AttrCapDate, date) }

// CapDate returns the capture date.
func CapDate(h *attr.Header) string { return getString(h, AttrCapDate) }

// SetUTCOffset sets the offset of local time from UTC, in seconds.
func SetUTCOffset(h *attr.Header, seconds float32) { setFloat(h, AttrUTCOffset, seconds) }

// UTCOffset returns the offset of local time from UTC, in seconds.
func UTCOffset(h *attr.Header) float32 { return getFloat(h, AttrUTCOffset) }

// SetReelName sets the film reel name.
func SetReelName(h *attr.Header, name string) { setString(h, AttrReelName, name) }

// ReelName returns the film reel name.
func ReelName(h *attr.Header) string { return getString(h, AttrReelName) }

// SetImageCounter sets the frame/image counter.
func SetImageCounter(h *attr.Header, counter string) { setString(h, AttrImageCounter, counter) }

// ImageCounter returns the frame/image counter.
func ImageCounter(h *attr.Header) string { return getString(h, AttrImageCounter) }

// SetTimeCode sets the SMPTE time code of the frame.
func SetTimeCode(h *attr.Header, tc attr.TimeCode) { attr.Put(h, AttrTimeCode, tc) }

// TimeCode returns the time code of the frame.
func TimeCode(h *attr.Header) (attr.TimeCode, bool) {
	return attr.Lookup[attr.TimeCode](h, AttrTimeCode)
}

// SetKeyCode sets the film key code of the frame.
func SetKeyCode(h *attr.Header, kc attr.KeyCode) { attr.Put(h, AttrKeyCode, kc) }

// KeyCode returns the film key code of the frame.
func KeyCode(h *attr.Header) (attr.KeyCode, bool) {
	return attr.Lookup[attr.KeyCode](h, AttrKeyCode)
}

// SetMultiView sets the view names of a multi-view image. The first view
// is the default view.
func SetMultiView(h *attr.Header, views []string) {
	attr.Put(h, AttrMultiView, attr.StringVector(views))
}

// MultiView returns the view names, or nil if not set.
func MultiView(h *attr.Header) []string {
	v, _ := attr.Lookup[attr.StringVector](h, AttrMultiView)
	return v
}

// SetIDManifest compresses raw and stores it as the object-ID manifest.
func SetIDManifest(h *attr.Header, raw []byte) error {
	m, err := attr.CompressIDManifest(raw)
	if err != nil {
		return err
	}
	h.Set(attr.New(AttrIDManifest, m))
	return nil
}

// IDManifest returns the decompressed object-ID manifest. It returns
// attr.ErrAttributeNotFound if the header has none.
func IDManifest(h *attr.Header) ([]byte, error) {
	m, ok := attr.Lookup[attr.IDManifest](h, AttrIDManifest)
	if !ok {
		return nil, attr.ErrAttributeNotFound
	}
	return m.Decompress()
}

// SetDeepImageState sets how the samples of a deep image are arranged.
func SetDeepImageState(h *attr.Header, s attr.DeepImageState) {
	attr.Put(h, AttrDeepImageState, s)
}

// DeepImageState returns the deep sample arrangement. Readers must assume
// DeepImageStateMessy when it is absent.
func DeepImageState(h *attr.Header) attr.DeepImageState {
	s, _ := attr.Lookup[attr.DeepImageState](h, AttrDeepImageState)
	return s
}

// SetEnvMap marks the image as an environment map of the given layout.
func SetEnvMap(h *attr.Header, e attr.EnvMap) { attr.Put(h, AttrEnvMap, e) }

// EnvMap returns the environment map layout.
func EnvMap(h *attr.Header) (attr.EnvMap, bool) {
	return attr.Lookup[attr.EnvMap](h, AttrEnvMap)
}

// WrapMode specifies texture wrapping behavior.
type WrapMode uint8

const (
	WrapClamp  WrapMode = 0 // Clamp to edge
	WrapRepeat WrapMode = 1 // Tile/repeat
	WrapBlack  WrapMode = 2 // Black outside bounds
	WrapMirror WrapMode = 3 // Mirror at edges
)

var wrapModeNames = [...]string{"clamp", "periodic", "black", "mirror"}

// String returns the name used in the wrapmodes attribute.
func (m WrapMode) String() string {
	if int(m) < len(wrapModeNames) {
		return wrapModeNames[m]
	}
	return "unknown"
}

// WrapModes specifies horizontal and vertical wrap modes.
type WrapModes struct {
	Horizontal WrapMode
	Vertical   WrapMode
}

// SetWrapModes stores the modes as the string "horizontal,vertical".
func SetWrapModes(h *attr.Header, w WrapModes) {
	setString(h, AttrWrapModes, w.Horizontal.String()+","+w.Vertical.String())
}

// GetWrapModes returns the texture wrap modes, or nil if unset or
// unparsable.
func GetWrapModes(h *attr.Header) *WrapModes {
	s, ok := attr.Lookup[attr.String](h, AttrWrapModes)
	if !ok {
		return nil
	}
	return parseWrapModes(string(s))
}

func parseWrapModes(s string) *WrapModes {
	hName, vName, ok := strings.Cut(s, ",")
	if !ok {
		return nil
	}
	hMode, hOK := wrapModeByName(hName)
	vMode, vOK := wrapModeByName(vName)
	if !hOK || !vOK {
		return nil
	}
	return &WrapModes{Horizontal: hMode, Vertical: vMode}
}

func wrapModeByName(name string) (WrapMode, bool) {
	for i, n := range wrapModeNames {
		if n == name {
			return WrapMode(i), true
		}
	}
	return 0, false
}

func setString(h *attr.Header, name, v string) {
	attr.Put(h, name, attr.String(v))
}

func getString(h *attr.Header, name string) string {
	s, _ := attr.Lookup[attr.String](h, name)
	return string(s)
}

func setFloat(h *attr.Header, name string, v float32) {
	attr.Put(h, name, attr.Float(v))
}

func getFloat(h *attr.Header, name string) float32 {
	f, _ := attr.Lookup[attr.Float](h, name)
	return float32(f)
}

// lookupPtr returns a pointer to a copy of the named value, or nil.
func lookupPtr[T any, P interface {
	*T
	attr.Value
}](h *attr.Header, name string) *T {
	v, ok := attr.Lookup[T, P](h, name)
	if !ok {
		return nil
	}
	return &v
}
