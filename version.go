package medaq

// Version is the current version of the go-medaq library
const Version = "0.3.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// Library is the vendor access layer the medaqlib binding targets
	Library string
	// Sensors lists the sensor kinds that can be acquired
	Sensors []SensorKind
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version: Version,
		Library: "MEDAQLib",
		Sensors: []SensorKind{SensorILD1220},
	}
}
