package agsutils

import "github.com/vkngwrapper/core/v2/common"

// ExtensionFlags is the AGS DX11 extension bitmask reported by device creation. Only the
// flags that a backend can ever provide are set by this library; the rest are listed so that
// callers can test against the full header set.
type ExtensionFlags int32

var extensionFlagsMapping = common.NewFlagStringMapping[ExtensionFlags]()

func (f ExtensionFlags) Register(str string) {
	extensionFlagsMapping.Register(f, str)
}
func (f ExtensionFlags) String() string {
	return extensionFlagsMapping.FlagsToString(f)
}

const (
	DX11ExtensionQuadList ExtensionFlags = 1 << iota
	DX11ExtensionScreenRectList
	// DX11ExtensionUAVOverlap indicates that BeginUAVOverlap and EndUAVOverlap can be used on the
	// immediate context
	DX11ExtensionUAVOverlap
	// DX11ExtensionDepthBoundsTest indicates that SetDepthBounds can be used on the immediate context
	DX11ExtensionDepthBoundsTest
	// DX11ExtensionMultiDrawIndirect indicates that the MultiDraw*InstancedIndirect calls can be used
	DX11ExtensionMultiDrawIndirect
	// DX11ExtensionMultiDrawIndirectCountIndirect indicates that the MultiDraw*InstancedIndirectCountIndirect
	// calls can be used
	DX11ExtensionMultiDrawIndirectCountIndirect
	DX11ExtensionCrossfireAPI
	DX11ExtensionIntrinsicReadFirstLane
	DX11ExtensionIntrinsicReadLane
	DX11ExtensionIntrinsicLaneID
	DX11ExtensionIntrinsicSwizzle
	DX11ExtensionIntrinsicBallot
	DX11ExtensionIntrinsicMBCount
	DX11ExtensionIntrinsicCompare3
	DX11ExtensionIntrinsicBarycentrics
	DX11ExtensionCreateShaderControls
	DX11ExtensionMultiView
	DX11ExtensionAppRegistration
	DX11ExtensionBreadcrumbMarkers
	// DX11ExtensionMDIDeferredContexts indicates that the multi-draw calls can be recorded into
	// deferred contexts. Reported from AGS 5.3.
	DX11ExtensionMDIDeferredContexts
	// DX11ExtensionUAVOverlapDeferredContexts indicates that UAV overlap can be controlled on
	// deferred contexts. Reported from AGS 5.3.
	DX11ExtensionUAVOverlapDeferredContexts
	// DX11ExtensionDepthBoundsDeferredContexts indicates that depth bounds can be set on deferred
	// contexts. Reported from AGS 5.3.
	DX11ExtensionDepthBoundsDeferredContexts
)

func init() {
	DX11ExtensionQuadList.Register("DX11ExtensionQuadList")
	DX11ExtensionScreenRectList.Register("DX11ExtensionScreenRectList")
	DX11ExtensionUAVOverlap.Register("DX11ExtensionUAVOverlap")
	DX11ExtensionDepthBoundsTest.Register("DX11ExtensionDepthBoundsTest")
	DX11ExtensionMultiDrawIndirect.Register("DX11ExtensionMultiDrawIndirect")
	DX11ExtensionMultiDrawIndirectCountIndirect.Register("DX11ExtensionMultiDrawIndirectCountIndirect")
	DX11ExtensionCrossfireAPI.Register("DX11ExtensionCrossfireAPI")
	DX11ExtensionIntrinsicReadFirstLane.Register("DX11ExtensionIntrinsicReadFirstLane")
	DX11ExtensionIntrinsicReadLane.Register("DX11ExtensionIntrinsicReadLane")
	DX11ExtensionIntrinsicLaneID.Register("DX11ExtensionIntrinsicLaneID")
	DX11ExtensionIntrinsicSwizzle.Register("DX11ExtensionIntrinsicSwizzle")
	DX11ExtensionIntrinsicBallot.Register("DX11ExtensionIntrinsicBallot")
	DX11ExtensionIntrinsicMBCount.Register("DX11ExtensionIntrinsicMBCount")
	DX11ExtensionIntrinsicCompare3.Register("DX11ExtensionIntrinsicCompare3")
	DX11ExtensionIntrinsicBarycentrics.Register("DX11ExtensionIntrinsicBarycentrics")
	DX11ExtensionCreateShaderControls.Register("DX11ExtensionCreateShaderControls")
	DX11ExtensionMultiView.Register("DX11ExtensionMultiView")
	DX11ExtensionAppRegistration.Register("DX11ExtensionAppRegistration")
	DX11ExtensionBreadcrumbMarkers.Register("DX11ExtensionBreadcrumbMarkers")
	DX11ExtensionMDIDeferredContexts.Register("DX11ExtensionMDIDeferredContexts")
	DX11ExtensionUAVOverlapDeferredContexts.Register("DX11ExtensionUAVOverlapDeferredContexts")
	DX11ExtensionDepthBoundsDeferredContexts.Register("DX11ExtensionDepthBoundsDeferredContexts")
}
