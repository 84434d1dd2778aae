package dispatch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/device"
	"github.com/vkngwrapper/dxvk-ags/mocks"
	"github.com/vkngwrapper/dxvk-ags/vkext"
	"go.uber.org/mock/gomock"
)

func attachedDispatcher(t *testing.T, ctrl *gomock.Controller, extensions ...vkext.Extension) (*Dispatcher, *mocks.Rig) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rig := mocks.NewRig(ctrl, extensions...)
	rig.ExpectBackendQueries()
	rig.Device.EXPECT().GetImmediateContext().Return(rig.ImmediateContext)
	rig.ImmediateContext.EXPECT().Release().Return(uint32(1))

	pair := device.New(logger, agsutils.Version5_3)
	_, err := pair.Acquire(rig.Device)
	require.NoError(t, err)

	return New(logger, pair), rig
}

func argsBuffer(ctrl *gomock.Controller, byteWidth uint32) *mocks.MockBuffer {
	buffer := mocks.NewMockBuffer(ctrl)
	buffer.EXPECT().GetDesc().Return(dx.BufferDesc{ByteWidth: byteWidth}).AnyTimes()
	return buffer
}

func TestMaxDrawCount(t *testing.T) {
	ctrl := gomock.NewController(t)

	testCases := []struct {
		name      string
		byteWidth uint32
		offset    uint32
		stride    uint32
		expected  uint32
	}{
		{name: "Exact", byteWidth: 200, offset: 0, stride: 20, expected: 10},
		{name: "Floor", byteWidth: 210, offset: 0, stride: 20, expected: 10},
		{name: "Offset", byteWidth: 200, offset: 40, stride: 20, expected: 8},
		{name: "OffsetAtEnd", byteWidth: 200, offset: 200, stride: 20, expected: 0},
		{name: "OffsetPastEnd", byteWidth: 200, offset: 400, stride: 1, expected: 0},
		{name: "OffsetPastEndZeroStride", byteWidth: 200, offset: 400, stride: 0, expected: 0},
		{name: "ZeroStride", byteWidth: 200, offset: 0, stride: 0, expected: 0},
		{name: "EmptyBuffer", byteWidth: 0, offset: 0, stride: 16, expected: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			buffer := argsBuffer(ctrl, testCase.byteWidth)
			require.Equal(t, testCase.expected, MaxDrawCount(buffer, testCase.offset, testCase.stride))
		})
	}
}

func TestDispatcher_Detached(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dispatcher := New(logger, device.New(logger, agsutils.Version5_3))

	res, err := dispatcher.BeginUAVOverlap(nil)
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)

	res, err = dispatcher.SetDepthBounds(nil, true, 0, 1)
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)

	res, err = dispatcher.MultiDrawIndirectCount(nil, CountedDraw{})
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)
}

func TestDispatcher_NothingSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, _ := attachedDispatcher(t, ctrl)
	buffer := mocks.NewMockBuffer(ctrl)
	native := mocks.NewMockDeviceContext(ctrl)

	calls := map[string]func() (agsutils.ReturnCode, error){
		"BeginUAVOverlap": func() (agsutils.ReturnCode, error) { return dispatcher.BeginUAVOverlap(nil) },
		"EndUAVOverlap":   func() (agsutils.ReturnCode, error) { return dispatcher.EndUAVOverlap(native) },
		"SetDepthBounds":  func() (agsutils.ReturnCode, error) { return dispatcher.SetDepthBounds(nil, true, 0.25, 0.75) },
		"MultiDrawIndirect": func() (agsutils.ReturnCode, error) {
			return dispatcher.MultiDrawIndirect(nil, 4, buffer, 0, 20)
		},
		"MultiDrawIndexedIndirect": func() (agsutils.ReturnCode, error) {
			return dispatcher.MultiDrawIndexedIndirect(native, 4, buffer, 0, 20)
		},
		"MultiDrawIndirectCount": func() (agsutils.ReturnCode, error) {
			return dispatcher.MultiDrawIndirectCount(nil, CountedDraw{CountBuffer: buffer, ArgsBuffer: buffer, ArgsByteStride: 20})
		},
		"MultiDrawIndexedIndirectCount": func() (agsutils.ReturnCode, error) {
			return dispatcher.MultiDrawIndexedIndirectCount(native, CountedDraw{CountBuffer: buffer, ArgsBuffer: buffer, ArgsByteStride: 20})
		},
	}

	// The mocks carry no expectations for backend operations, so any forwarded call fails the test
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			res, err := call()
			require.Equal(t, agsutils.ExtensionNotSupported, res)
			require.ErrorIs(t, err, agsutils.ErrExtensionNotSupported)
		})
	}
}

func TestDispatcher_UAVOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, rig := attachedDispatcher(t, ctrl, vkext.ExtBarrierControl)

	gomock.InOrder(
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControlIgnoreWriteAfterWrite),
		rig.ExtContext.EXPECT().SetBarrierControl(vkext.BarrierControl(0)),
	)

	res, err := dispatcher.BeginUAVOverlap(nil)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.EndUAVOverlap(nil)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
}

func TestDispatcher_DepthBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, rig := attachedDispatcher(t, ctrl, vkext.ExtDepthBounds)

	rig.ExtContext.EXPECT().SetDepthBoundsTest(true, float32(0.25), float32(0.75))

	res, err := dispatcher.SetDepthBounds(nil, true, 0.25, 0.75)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
}

func TestDispatcher_MultiDrawIndirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, rig := attachedDispatcher(t, ctrl, vkext.ExtMultiDrawIndirect)
	buffer := mocks.NewMockBuffer(ctrl)

	rig.ExtContext.EXPECT().MultiDrawIndirect(uint32(7), buffer, uint32(16), uint32(20))
	rig.ExtContext.EXPECT().MultiDrawIndexedIndirect(uint32(3), buffer, uint32(0), uint32(24))

	res, err := dispatcher.MultiDrawIndirect(nil, 7, buffer, 16, 20)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.MultiDrawIndexedIndirect(nil, 3, buffer, 0, 24)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.MultiDrawIndirectCount(nil, CountedDraw{ArgsBuffer: buffer})
	require.Equal(t, agsutils.ExtensionNotSupported, res)
	require.ErrorIs(t, err, agsutils.ErrExtensionNotSupported)
}

func TestDispatcher_MultiDrawIndirectCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, rig := attachedDispatcher(t, ctrl, vkext.ExtMultiDrawIndirectCount)
	counts := mocks.NewMockBuffer(ctrl)
	args := argsBuffer(ctrl, 1000)

	rig.ExtContext.EXPECT().MultiDrawIndirectCount(uint32(49), counts, uint32(4), args, uint32(20), uint32(20))
	rig.ExtContext.EXPECT().MultiDrawIndexedIndirectCount(uint32(0), counts, uint32(0), args, uint32(1000), uint32(20))

	res, err := dispatcher.MultiDrawIndirectCount(nil, CountedDraw{
		CountBuffer:     counts,
		CountByteOffset: 4,
		ArgsBuffer:      args,
		ArgsByteOffset:  20,
		ArgsByteStride:  20,
	})
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.MultiDrawIndexedIndirectCount(nil, CountedDraw{
		CountBuffer:    counts,
		ArgsBuffer:     args,
		ArgsByteOffset: 1000,
		ArgsByteStride: 20,
	})
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.MultiDrawIndirectCount(nil, CountedDraw{CountBuffer: counts, ArgsByteStride: 20})
	require.Equal(t, agsutils.InvalidArgs, res)
	require.ErrorIs(t, err, agsutils.ErrInvalidArgs)
}

func TestDispatcher_PerCallContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, _ := attachedDispatcher(t, ctrl, vkext.ExtDepthBounds, vkext.ExtBarrierControl)

	native := mocks.NewMockDeviceContext(ctrl)
	extContext := mocks.NewMockExtContext(ctrl)
	native.EXPECT().GetType().Return(dx.DeviceContextDeferred).AnyTimes()
	native.EXPECT().QueryInterface(vkext.IIDContext).Return(extContext, nil).Times(2)

	gomock.InOrder(
		extContext.EXPECT().SetDepthBoundsTest(false, float32(0), float32(1)),
		extContext.EXPECT().Release().Return(uint32(1)),
		extContext.EXPECT().SetBarrierControl(vkext.BarrierControlIgnoreWriteAfterWrite),
		extContext.EXPECT().Release().Return(uint32(1)),
	)

	res, err := dispatcher.SetDepthBounds(native, false, 0, 1)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)

	res, err = dispatcher.BeginUAVOverlap(native)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
}

func TestDispatcher_PerCallContextNotBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, _ := attachedDispatcher(t, ctrl, vkext.ExtDepthBounds)

	native := mocks.NewMockDeviceContext(ctrl)
	native.EXPECT().GetType().Return(dx.DeviceContextImmediate).AnyTimes()
	native.EXPECT().QueryInterface(vkext.IIDContext).Return(nil, dx.ErrNoInterface)

	res, err := dispatcher.SetDepthBounds(native, true, 0, 1)
	require.Equal(t, agsutils.Failure, res)
	require.ErrorIs(t, err, agsutils.ErrFailure)
	require.ErrorIs(t, err, dx.ErrNoInterface)
}

func TestDispatcher_DeferredContextRequiresDeferredFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rig := mocks.NewRig(ctrl, vkext.ExtDepthBounds)
	rig.ExpectBackendQueries()
	rig.Device.EXPECT().GetImmediateContext().Return(rig.ImmediateContext)
	rig.ImmediateContext.EXPECT().Release().Return(uint32(1))

	// Callers built against 5.2 never see the deferred-context flags
	pair := device.New(logger, agsutils.MakeVersion(5, 2, 1))
	_, err := pair.Acquire(rig.Device)
	require.NoError(t, err)
	dispatcher := New(logger, pair)

	native := mocks.NewMockDeviceContext(ctrl)
	native.EXPECT().GetType().Return(dx.DeviceContextDeferred).AnyTimes()

	res, err := dispatcher.SetDepthBounds(native, true, 0, 1)
	require.Equal(t, agsutils.ExtensionNotSupported, res)
	require.ErrorIs(t, err, agsutils.ErrExtensionNotSupported)
}
