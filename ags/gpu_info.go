package ags

// ArchitectureVersion is the GPU architecture reported for a device
type ArchitectureVersion int32

const (
	ArchitectureVersionUnknown ArchitectureVersion = iota
	ArchitectureVersionPreGCN
	ArchitectureVersionGCN
)

var architectureVersionMapping = make(map[ArchitectureVersion]string)

func (v ArchitectureVersion) String() string {
	return architectureVersionMapping[v]
}

func init() {
	architectureVersionMapping[ArchitectureVersionUnknown] = "ArchitectureVersion_Unknown"
	architectureVersionMapping[ArchitectureVersionPreGCN] = "ArchitectureVersion_PreGCN"
	architectureVersionMapping[ArchitectureVersionGCN] = "ArchitectureVersion_GCN"
}

// DeviceInfo describes one adapter enumerated by Init
type DeviceInfo struct {
	// AdapterString is the adapter description reported by the runtime, or defaultAdapterString
	// when the runtime reports none
	AdapterString       string
	ArchitectureVersion ArchitectureVersion
	VendorID            uint32
	DeviceID            uint32
	RevisionID          uint32
	// IsPrimaryDevice is true for the first enumerated adapter only
	IsPrimaryDevice    bool
	LocalMemoryInBytes uint64
	// ADLAdapterIndex is the enumeration index of the adapter
	ADLAdapterIndex int
}

// GPUInfo is filled by Init
type GPUInfo struct {
	AGSVersionMajor       int
	AGSVersionMinor       int
	AGSVersionPatch       int
	IsWACKCompliant       bool
	DriverVersion         string
	RadeonSoftwareVersion string
	// Devices is a copy of the Context's device list. It stays readable after DeInit, but
	// describes adapters that may no longer be valid.
	Devices []DeviceInfo
}
