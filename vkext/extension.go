package vkext

import "github.com/vkngwrapper/core/v2/common"

// Extension identifies an optional capability of the backend, mirroring D3D11_VK_EXTENSION
type Extension uint32

const (
	ExtMultiDrawIndirect Extension = iota
	ExtMultiDrawIndirectCount
	ExtDepthBounds
	ExtBarrierControl
)

var extensionMapping = make(map[Extension]string)

func (e Extension) String() string {
	return extensionMapping[e]
}

func init() {
	extensionMapping[ExtMultiDrawIndirect] = "D3D11_VK_EXT_MULTI_DRAW_INDIRECT"
	extensionMapping[ExtMultiDrawIndirectCount] = "D3D11_VK_EXT_MULTI_DRAW_INDIRECT_COUNT"
	extensionMapping[ExtDepthBounds] = "D3D11_VK_EXT_DEPTH_BOUNDS"
	extensionMapping[ExtBarrierControl] = "D3D11_VK_EXT_BARRIER_CONTROL"
}

// BarrierControl mirrors D3D11_VK_BARRIER_CONTROL
type BarrierControl int32

var barrierControlMapping = common.NewFlagStringMapping[BarrierControl]()

func (f BarrierControl) Register(str string) {
	barrierControlMapping.Register(f, str)
}
func (f BarrierControl) String() string {
	return barrierControlMapping.FlagsToString(f)
}

const (
	// BarrierControlIgnoreWriteAfterWrite suppresses the barriers the backend would otherwise
	// insert between overlapping UAV writes
	BarrierControlIgnoreWriteAfterWrite BarrierControl = 1 << iota
	// BarrierControlIgnoreGraphicsUAV suppresses barriers for UAVs bound to graphics stages
	BarrierControlIgnoreGraphicsUAV
)

func init() {
	BarrierControlIgnoreWriteAfterWrite.Register("BarrierControlIgnoreWriteAfterWrite")
	BarrierControlIgnoreGraphicsUAV.Register("BarrierControlIgnoreGraphicsUAV")
}
