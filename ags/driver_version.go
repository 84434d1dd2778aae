//go:build !ags_5_0 && !ags_5_1 && !ags_5_2

package ags

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
)

// CheckDriverVersion reports every driver as new enough. No driver version is parsed.
func CheckDriverVersion(radeonSoftwareVersionReported string, radeonSoftwareVersionRequired uint32) agsutils.DriverVersionResult {
	return agsutils.SoftwareVersionCheckOK
}
