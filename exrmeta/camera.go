package exrmeta

import "github.com/mrjoshuak/go-exrattr/attr"

// SetAperture sets the lens aperture (f-number).
func SetAperture(h *attr.Header, fNumber float32) { setFloat(h, AttrAperture, fNumber) }

// Aperture returns the lens aperture (f-number).
func Aperture(h *attr.Header) float32 { return getFloat(h, AttrAperture) }

// SetFocus sets the focus distance in meters.
func SetFocus(h *attr.Header, meters float32) { setFloat(h, AttrFocus, meters) }

// Focus returns the focus distance in meters.
func Focus(h *attr.Header) float32 { return getFloat(h, AttrFocus) }

// SetISOSpeed sets the ISO sensitivity.
func SetISOSpeed(h *attr.Header, iso float32) { setFloat(h, AttrISOSpeed, iso) }

// ISOSpeed returns the ISO sensitivity.
func ISOSpeed(h *attr.Header) float32 { return getFloat(h, AttrISOSpeed) }

// SetExpTime sets the exposure time in seconds.
func SetExpTime(h *attr.Header, seconds float32) { setFloat(h, AttrExpTime, seconds) }

// ExpTime returns the exposure time in seconds.
func ExpTime(h *attr.Header) float32 { return getFloat(h, AttrExpTime) }

// SetShutterAngle sets the shutter angle in degrees.
func SetShutterAngle(h *attr.Header, degrees float32) { setFloat(h, AttrShutterAngle, degrees) }

// ShutterAngle returns the shutter angle in degrees.
func ShutterAngle(h *attr.Header) float32 { return getFloat(h, AttrShutterAngle) }

// SetTStop sets the T-stop value.
func SetTStop(h *attr.Header, tStop float32) { setFloat(h, AttrTStop, tStop) }

// TStop returns the T-stop value.
func TStop(h *attr.Header) float32 { return getFloat(h, AttrTStop) }

// SetNominalFocalLength sets the nominal focal length in mm.
func SetNominalFocalLength(h *attr.Header, mm float32) { setFloat(h, AttrNominalFocalLength, mm) }

// NominalFocalLength returns the nominal focal length in mm.
func NominalFocalLength(h *attr.Header) float32 { return getFloat(h, AttrNominalFocalLength) }

// SetEffectiveFocalLength sets the effective focal length in mm.
func SetEffectiveFocalLength(h *attr.Header, mm float32) { setFloat(h, AttrEffectiveFocalLength, mm) }

// EffectiveFocalLength returns the effective focal length in mm.
func EffectiveFocalLength(h *attr.Header) float32 { return getFloat(h, AttrEffectiveFocalLength) }

// SetPinholeFocalLength sets the pinhole focal length in mm.
func SetPinholeFocalLength(h *attr.Header, mm float32) { setFloat(h, AttrPinholeFocalLength, mm) }

// PinholeFocalLength returns the pinhole focal length in mm.
func PinholeFocalLength(h *attr.Header) float32 { return getFloat(h, AttrPinholeFocalLength) }

// CameraInfo contains camera identification metadata.
type CameraInfo struct {
	Make            string
	Model           string
	SerialNumber    string
	FirmwareVersion string
	UUID            string
	Label           string
	CCTSetting      float32
	TintSetting     float32
	ColorBalance    attr.V2f
}

// SetCameraInfo sets the camera identification attributes. Zero fields
// are left untouched.
func SetCameraInfo(h *attr.Header, info CameraInfo) {
	setNonEmpty(h, AttrCameraMake, info.Make)
	setNonEmpty(h, AttrCameraModel, info.Model)
	setNonEmpty(h, AttrCameraSerialNumber, info.SerialNumber)
	setNonEmpty(h, AttrCameraFirmwareVersion, info.FirmwareVersion)
	setNonEmpty(h, AttrCameraUUID, info.UUID)
	setNonEmpty(h, AttrCameraLabel, info.Label)
	if info.CCTSetting != 0 {
		setFloat(h, AttrCameraCCTSetting, info.CCTSetting)
	}
	if info.TintSetting != 0 {
		setFloat(h, AttrCameraTintSetting, info.TintSetting)
	}
	if info.ColorBalance != (attr.V2f{}) {
		attr.Put(h, AttrCameraColorBalance, info.ColorBalance)
	}
}

// GetCameraInfo retrieves the camera identification attributes.
func GetCameraInfo(h *attr.Header) CameraInfo {
	balance, _ := attr.Lookup[attr.V2f](h, AttrCameraColorBalance)
	return CameraInfo{
		Make:            getString(h, AttrCameraMake),
		Model:           getString(h, AttrCameraModel),
		SerialNumber:    getString(h, AttrCameraSerialNumber),
		FirmwareVersion: getString(h, AttrCameraFirmwareVersion),
		UUID:            getString(h, AttrCameraUUID),
		Label:           getString(h, AttrCameraLabel),
		CCTSetting:      getFloat(h, AttrCameraCCTSetting),
		TintSetting:     getFloat(h, AttrCameraTintSetting),
		ColorBalance:    balance,
	}
}

// LensInfo contains lens identification metadata.
type LensInfo struct {
	Make            string
	Model           string
	SerialNumber    string
	FirmwareVersion string
}

// SetLensInfo sets the lens identification attributes. Empty fields are
// left untouched.
func SetLensInfo(h *attr.Header, info LensInfo) {
	setNonEmpty(h, AttrLensMake, info.Make)
	setNonEmpty(h, AttrLensModel, info.Model)
	setNonEmpty(h, AttrLensSerialNumber, info.SerialNumber)
	setNonEmpty(h, AttrLensFirmwareVersion, info.FirmwareVersion)
}

// GetLensInfo retrieves the lens identification attributes.
func GetLensInfo(h *attr.Header) LensInfo {
	return LensInfo{
		Make:            getString(h, AttrLensMake),
		Model:           getString(h, AttrLensModel),
		SerialNumber:    getString(h, AttrLensSerialNumber),
		FirmwareVersion: getString(h, AttrLensFirmwareVersion),
	}
}

// GeoLocation contains geographic coordinates.
type GeoLocation struct {
	Longitude float32 // degrees
	Latitude  float32 // degrees
	Altitude  float32 // meters
}

// SetGeoLocation sets longitude, latitude and altitude.
func SetGeoLocation(h *attr.Header, loc GeoLocation) {
	setFloat(h, AttrLongitude, loc.Longitude)
	setFloat(h, AttrLatitude, loc.Latitude)
	setFloat(h, AttrAltitude, loc.Altitude)
}

// GetGeoLocation returns the geographic location, or nil if neither
// latitude nor longitude is set.
func GetGeoLocation(h *attr.Header) *GeoLocation {
	if !h.Has(AttrLatitude) && !h.Has(AttrLongitude) {
		return nil
	}
	return &GeoLocation{
		Longitude: getFloat(h, AttrLongitude),
		Latitude:  getFloat(h, AttrLatitude),
		Altitude:  getFloat(h, AttrAltitude),
	}
}

// SetSensorCenterOffset sets the sensor center offset in mm.
func SetSensorCenterOffset(h *attr.Header, offset attr.V2f) {
	attr.Put(h, AttrSensorCenterOffset, offset)
}

// SensorCenterOffset returns the sensor center offset, or nil if not set.
func SensorCenterOffset(h *attr.Header) *attr.V2f {
	return lookupPtr[attr.V2f](h, AttrSensorCenterOffset)
}

// SetSensorOverallDimensions sets the sensor overall dimensions in mm.
func SetSensorOverallDimensions(h *attr.Header, dims attr.V2f) {
	attr.Put(h, AttrSensorOverallDimensions, dims)
}

// SensorOverallDimensions returns the sensor dimensions, or nil if not set.
func SensorOverallDimensions(h *attr.Header) *attr.V2f {
	return lookupPtr[attr.V2f](h, AttrSensorOverallDimensions)
}

// SetSensorPhotositePitch sets the photosite pitch in mm.
func SetSensorPhotositePitch(h *attr.Header, pitch float32) {
	setFloat(h, AttrSensorPhotositePitch, pitch)
}

// SensorPhotositePitch returns the photosite pitch in mm.
func SensorPhotositePitch(h *attr.Header) float32 {
	return getFloat(h, AttrSensorPhotositePitch)
}

// SetSensorAcquisitionRectangle sets the area of the sensor that was read.
func SetSensorAcquisitionRectangle(h *attr.Header, rect attr.Box2i) {
	attr.Put(h, AttrSensorAcquisitionRectangle, rect)
}

// SensorAcquisitionRectangle returns the acquisition rectangle, or nil.
func SensorAcquisitionRectangle(h *attr.Header) *attr.Box2i {
	return lookupPtr[attr.Box2i](h, AttrSensorAcquisitionRectangle)
}

func setNonEmpty(h *attr.Header, name, v string) {
	if v != "" {
		setString(h, name, v)
	}
}
