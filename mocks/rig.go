package mocks

import (
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/vkext"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slices"
)

// Rig is a native device and immediate context backed by a mocked backend device/context pair
type Rig struct {
	Device           *MockDevice
	ImmediateContext *MockDeviceContext
	ExtDevice        *MockExtDevice
	ExtContext       *MockExtContext
}

// NewRig builds a Rig whose backend device reports exactly the listed extensions as supported.
// No QueryInterface expectations are registered: use ExpectBackendQueries or register them directly.
func NewRig(ctrl *gomock.Controller, extensions ...vkext.Extension) *Rig {
	rig := &Rig{
		Device:           NewMockDevice(ctrl),
		ImmediateContext: NewMockDeviceContext(ctrl),
		ExtDevice:        NewMockExtDevice(ctrl),
		ExtContext:       NewMockExtContext(ctrl),
	}

	supported := slices.Clone(extensions)
	rig.ExtDevice.EXPECT().GetExtensionSupport(gomock.Any()).DoAndReturn(func(ext vkext.Extension) bool {
		return slices.Contains(supported, ext)
	}).AnyTimes()
	rig.ImmediateContext.EXPECT().GetType().Return(dx.DeviceContextImmediate).AnyTimes()

	return rig
}

// ExpectBackendQueries registers one successful backend interface query against the device and
// one against the immediate context
func (r *Rig) ExpectBackendQueries() {
	r.Device.EXPECT().QueryInterface(vkext.IIDDevice).Return(r.ExtDevice, nil)
	r.ImmediateContext.EXPECT().QueryInterface(vkext.IIDContext).Return(r.ExtContext, nil)
}

// ExpectBackendRelease registers the release of both backend interfaces, returning the provided
// remaining reference counts
func (r *Rig) ExpectBackendRelease(deviceRefs, contextRefs uint32) {
	r.ExtDevice.EXPECT().Release().Return(deviceRefs)
	r.ExtContext.EXPECT().Release().Return(contextRefs)
}

// DeviceAndSwapChain returns the rig's objects the way the native runtime would produce them
func (r *Rig) DeviceAndSwapChain(swapChain dx.SwapChain, featureLevel dx.FeatureLevel) dx.DeviceAndSwapChain {
	return dx.DeviceAndSwapChain{
		SwapChain:        swapChain,
		Device:           r.Device,
		FeatureLevel:     featureLevel,
		ImmediateContext: r.ImmediateContext,
	}
}
