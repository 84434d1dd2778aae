//go:build ags_5_0

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
	var extensionsSupported uint32

	return []stubCall{
		{"DX12Init", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12Init(nil, &extensionsSupported)
		}},
		{"DX12DeInit", agsutils.LegacyDriver, func(c *Context) (agsutils.ReturnCode, error) {
			return c.DX12DeInit()
		}},
	}
}

func acquire(t *testing.T, harness *testHarness, rig *mocks.Rig) agsutils.ExtensionFlags {
	rig.ExpectBackendQueries()
	rig.Device.EXPECT().GetImmediateContext().Return(rig.ImmediateContext)
	rig.ImmediateContext.EXPECT().Release().Return(uint32(1))

	var extensionsSupported agsutils.ExtensionFlags
	res, err := harness.Context.DX11Init(rig.Device, 7, &extensionsSupported)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
	require.True(t, harness.Context.Attached())

	return extensionsSupported
}

func TestDX11Init_BarrierControlOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)
	rig := mocks.NewRig(ctrl, vkext.ExtBarrierControl)

	extensions := acquire(t, harness, rig)
	require.Equal(t, agsutils.DX11ExtensionUAVOverlap, extensions)

	gomock.InOrder(
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControlIgnoreWriteAfterWrite),
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControl(0)),
	)

	res, err := harness.Context.DX11BeginUAVOverlap()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11EndUAVOverlap()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = harness.Context.DX11SetDepthBounds(true, 0, 1)
	require.Equal(t, agsutils.ExtensionNotSupported, res)
	require.ErrorIs(t, err, agsutils.ErrExtensionNotSupported)

	buffer := mocks.NewMockBuffer(ctrl)
	res, _ = harness.Context.DX11MultiDrawInstancedIndirectCountIndirect(buffer, 0, buffer, 0, 20)
	require.Equal(t, agsutils.ExtensionNotSupported, res)

	rig.ExpectBackendRelease(0, 0)
	res, err = harness.Context.DX11DeInit()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
	require.False(t, harness.Context.Attached())

	res, err = harness.Context.DX11DeInit()
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)

	harness.deInit(t)
}

func TestDX11Init_NotBackendDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)
	rig := mocks.NewRig(ctrl)
	rig.Device.EXPECT().QueryInterface(vkext.IIDDevice).Return(nil, dx.ErrNoInterface)

	extensions := agsutils.DX11ExtensionQuadList
	res, err := harness.Context.DX11Init(rig.Device, 7, &extensions)
	require.Equal(t, agsutils.Failure, res)
	require.ErrorIs(t, err, agsutils.ErrFailure)
	require.Equal(t, agsutils.DX11ExtensionQuadList, extensions)
	require.False(t, harness.Context.Attached())

	res, err = harness.Context.DX11Init(nil, 7, nil)
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)

	harness.deInit(t)
}

func TestDX11Init_DeInitReleasesPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)
	rig := mocks.NewRig(ctrl, vkext.ExtDepthBounds)
	acquire(t, harness, rig)

	rig.ExtContext.EXPECT().SetDepthBoundsTest(false, float32(0), float32(1))
	res, err := harness.Context.DX11SetDepthBounds(false, 0, 1)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	rig.ExpectBackendRelease(0, 0)
	harness.deInit(t)
	require.False(t, harness.Context.Attached())
}

func TestGetCrossfireGPUCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	harness := newHarness(t, ctrl, nil, radeonAdapter)

	var numGPUs int
	res, err := harness.Context.GetCrossfireGPUCount(&numGPUs)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
	require.Equal(t, 1, numGPUs)

	var context *Context
	res, err = context.GetCrossfireGPUCount(&numGPUs)
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)

	harness.deInit(t)
}
