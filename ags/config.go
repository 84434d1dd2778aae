package ags

// CrossfireMode mirrors AGSCrossfireMode. It is accepted and reported but does not change behavior.
type CrossfireMode int32

const (
	CrossfireModeDriverAFR CrossfireMode = iota
	CrossfireModeExplicitAFR
	CrossfireModeDisable
)

var crossfireModeMapping = make(map[CrossfireMode]string)

func (m CrossfireMode) String() string {
	return crossfireModeMapping[m]
}

func init() {
	crossfireModeMapping[CrossfireModeDriverAFR] = "AGS_CROSSFIRE_MODE_DRIVER_AFR"
	crossfireModeMapping[CrossfireModeExplicitAFR] = "AGS_CROSSFIRE_MODE_EXPLICIT_AFR"
	crossfireModeMapping[CrossfireModeDisable] = "AGS_CROSSFIRE_MODE_DISABLE"
}

const (
	// DefaultDriverVersion is reported in GPUInfo when Configuration.DriverVersion is empty
	DefaultDriverVersion = "bla"
	// DefaultRadeonSoftwareVersion is reported in GPUInfo when Configuration.RadeonSoftwareVersion is empty
	DefaultRadeonSoftwareVersion = "bla"

	defaultAdapterString = "Device"
)

// Configuration contains optional settings for Init: it is valid to pass nil or leave all the
// fields blank
type Configuration struct {
	CrossfireMode CrossfireMode

	// DriverVersion is the driver version string reported in GPUInfo. No driver is queried.
	DriverVersion string
	// RadeonSoftwareVersion is the software version string reported in GPUInfo. No driver is queried.
	RadeonSoftwareVersion string
}

func (c Configuration) withDefaults() Configuration {
	if c.DriverVersion == "" {
		c.DriverVersion = DefaultDriverVersion
	}
	if c.RadeonSoftwareVersion == "" {
		c.RadeonSoftwareVersion = DefaultRadeonSoftwareVersion
	}

	return c
}
