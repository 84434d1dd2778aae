//go:build ags_5_2

package ags

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/mocks"
	"github.com/vkngwrapper/dxvk-ags/vkext"
	"go.uber.org/mock/gomock"
)

func versionedStubs() []stubCall {
	var returned DX12ReturnedParams

	return []stubCall{
		{"DX11WriteBreadcrumb", agsutils.ExtensionNotSupported, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX11WriteBreadcrumb(&BreadcrumbMarker{Type: BreadcrumbTopOfPipe})
		}},
		{"DX12CreateDevice", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12CreateDevice(&DX12DeviceCreationParams{}, &DX12ExtensionParams{}, &returned)
		}},
		{"DX12DestroyDevice", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12DestroyDevice(nil, nil)
		}},
		{"DX12PushMarker", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12PushMarker(nil, "frame")
		}},
		{"DX12PopMarker", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12PopMarker(nil)
		}},
		{"DX12SetMarker", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12SetMarker(nil, "marker")
		}},
	}
}

func TestDX11_5_2_NoDeferredFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)
	rig := mocks.NewRig(ctrl, vkext.ExtBarrierControl, vkext.ExtDepthBounds, vkext.ExtMultiDrawIndirect, vkext.ExtMultiDrawIndirectCount)

	returned := harness.createDevice(t, rig)
	require.Equal(t, agsutils.DX11ExtensionUAVOverlap|agsutils.DX11ExtensionDepthBoundsTest|
		agsutils.DX11ExtensionMultiDrawIndirect|agsutils.DX11ExtensionMultiDrawIndirectCountIndirect, returned.ExtensionsSupported)

	rig.ExpectBackendRelease(4, 3)
	var deviceRefs, contextRefs uint32
	res, err := harness.Context.DX11DestroyDevice(returned.Device, &deviceRefs, returned.ImmediateContext, &contextRefs)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
	require.Equal(t, uint32(4), deviceRefs)
	require.Equal(t, uint32(3), contextRefs)

	harness.deInit(t)
}

func TestDX11_5_2_ImmediateContextCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)
	rig := mocks.NewRig(ctrl, vkext.ExtBarrierControl, vkext.ExtDepthBounds, vkext.ExtMultiDrawIndirect, vkext.ExtMultiDrawIndirectCount)
	harness.createDevice(t, rig)

	args := mocks.NewMockBuffer(ctrl)
	args.EXPECT().GetDesc().Return(dx.BufferDesc{ByteWidth: 100}).AnyTimes()
	counts := mocks.NewMockBuffer(ctrl)

	gomock.InOrder(
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControlIgnoreWriteAfterWrite),
		rig.ExtContext.EXPECT().SetDepthBoundsTest(true, float32(0.5), float32(1)),
		rig.ExtContext.EXPECT().MultiDrawIndirect(uint32(5), args, uint32(0), uint32(20)),
		rig.ExtContext.EXPECT().MultiDrawIndexedIndirectCount(uint32(4), counts, uint32(0), args, uint32(16), uint32(20)),
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControl(0)),
	)

	res, err := harness.Context.DX11BeginUAVOverlap()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11SetDepthBounds(true, 0.5, 1)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11MultiDrawInstancedIndirect(5, args, 0, 20)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11MultiDrawIndexedInstancedIndirectCountIndirect(counts, 0, args, 16, 20)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11EndUAVOverlap()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	rig.ExpectBackendRelease(0, 0)
	harness.deInit(t)
}
