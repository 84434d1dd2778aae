package caps

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/vkext"
)

// Pair associates a backend extension with one AGS extension flag. The same backend extension can
// appear in several pairs, and the same flag can be fed by several backend extensions.
type Pair struct {
	Extension vkext.Extension
	Flag      agsutils.ExtensionFlags
	// MinVersion is the first AGS version whose headers contain Flag
	MinVersion agsutils.Version
}

var pairs = []Pair{
	{Extension: vkext.ExtBarrierControl, Flag: agsutils.DX11ExtensionUAVOverlap},
	{Extension: vkext.ExtDepthBounds, Flag: agsutils.DX11ExtensionDepthBoundsTest},
	{Extension: vkext.ExtMultiDrawIndirect, Flag: agsutils.DX11ExtensionMultiDrawIndirect},
	{Extension: vkext.ExtMultiDrawIndirectCount, Flag: agsutils.DX11ExtensionMultiDrawIndirectCountIndirect},

	{Extension: vkext.ExtBarrierControl, Flag: agsutils.DX11ExtensionUAVOverlapDeferredContexts, MinVersion: agsutils.Version5_3},
	{Extension: vkext.ExtDepthBounds, Flag: agsutils.DX11ExtensionDepthBoundsDeferredContexts, MinVersion: agsutils.Version5_3},
	{Extension: vkext.ExtMultiDrawIndirect, Flag: agsutils.DX11ExtensionMDIDeferredContexts, MinVersion: agsutils.Version5_3},
	{Extension: vkext.ExtMultiDrawIndirectCount, Flag: agsutils.DX11ExtensionMDIDeferredContexts, MinVersion: agsutils.Version5_3},
}

// Pairs returns the capability pairs visible to callers built against version
func Pairs(version agsutils.Version) []Pair {
	var visible []Pair
	for _, pair := range pairs {
		if version.IsAtLeast(pair.MinVersion) {
			visible = append(visible, pair)
		}
	}

	return visible
}

// Query asks device about every backend extension in the pair list for version and writes the
// union of the matching AGS flags to extensionsSupported
func Query(device vkext.Device, version agsutils.Version, extensionsSupported *agsutils.ExtensionFlags) (agsutils.ReturnCode, error) {
	if device == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "no backend device is attached")
	}
	if extensionsSupported == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "extensionsSupported is nil")
	}

	var extensions agsutils.ExtensionFlags
	for _, pair := range Pairs(version) {
		if device.GetExtensionSupport(pair.Extension) {
			extensions |= pair.Flag
		}
	}

	*extensionsSupported = extensions
	return agsutils.Success, nil
}
