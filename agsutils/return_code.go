package agsutils

// ReturnCode is the outcome reported by every AGS entry point. The numeric values match
// the AGSReturnCode enumeration of the AGS 5.x headers.
type ReturnCode int32

const (
	Success ReturnCode = iota
	Failure
	InvalidArgs
	OutOfMemory
	MissingDLL
	LegacyDriver
	ExtensionNotSupported
	ADLFailure
	DXFailure
)

var returnCodeMapping = make(map[ReturnCode]string)

func (c ReturnCode) String() string {
	return returnCodeMapping[c]
}

func init() {
	returnCodeMapping[Success] = "AGS_SUCCESS"
	returnCodeMapping[Failure] = "AGS_FAILURE"
	returnCodeMapping[InvalidArgs] = "AGS_INVALID_ARGS"
	returnCodeMapping[OutOfMemory] = "AGS_OUT_OF_MEMORY"
	returnCodeMapping[MissingDLL] = "AGS_ERROR_MISSING_DLL"
	returnCodeMapping[LegacyDriver] = "AGS_ERROR_LEGACY_DRIVER"
	returnCodeMapping[ExtensionNotSupported] = "AGS_EXTENSION_NOT_SUPPORTED"
	returnCodeMapping[ADLFailure] = "AGS_ADL_FAILURE"
	returnCodeMapping[DXFailure] = "AGS_DX_FAILURE"
}

// DriverVersionResult is the outcome of CheckDriverVersion
type DriverVersionResult int32

const (
	SoftwareVersionCheckOK DriverVersionResult = iota
	SoftwareVersionCheckOlder
	SoftwareVersionCheckUndefined
)

var driverVersionResultMapping = make(map[DriverVersionResult]string)

func (r DriverVersionResult) String() string {
	return driverVersionResultMapping[r]
}

func init() {
	driverVersionResultMapping[SoftwareVersionCheckOK] = "AGS_SOFTWAREVERSIONCHECK_OK"
	driverVersionResultMapping[SoftwareVersionCheckOlder] = "AGS_SOFTWAREVERSIONCHECK_OLDER"
	driverVersionResultMapping[SoftwareVersionCheckUndefined] = "AGS_SOFTWAREVERSIONCHECK_UNDEFINED"
}
