package ags

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/mocks"
	"go.uber.org/mock/gomock"
)

type testHarness struct {
	Runtime *mocks.MockRuntime
	Factory *mocks.MockFactory
	Context *Context
	GPUInfo GPUInfo
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func expectAdapters(ctrl *gomock.Controller, factory *mocks.MockFactory, descs ...dx.AdapterDesc) {
	var calls []*gomock.Call
	for i, desc := range descs {
		adapter := mocks.NewMockAdapter(ctrl)
		adapter.EXPECT().GetDesc().Return(desc, nil)
		adapter.EXPECT().Release().Return(uint32(0))
		calls = append(calls, factory.EXPECT().EnumAdapters(uint32(i)).Return(adapter, nil))
	}
	calls = append(calls, factory.EXPECT().EnumAdapters(uint32(len(descs))).Return(nil, dx.ErrNotFound))

	gomock.InOrder(calls...)
}

func newHarness(t *testing.T, ctrl *gomock.Controller, config *Configuration, descs ...dx.AdapterDesc) *testHarness {
	harness := &testHarness{
		Runtime: mocks.NewMockRuntime(ctrl),
		Factory: mocks.NewMockFactory(ctrl),
	}

	harness.Runtime.EXPECT().CreateFactory().Return(harness.Factory, nil)
	expectAdapters(ctrl, harness.Factory, descs...)

	context, res, err := Init(testLogger(), harness.Runtime, config, &harness.GPUInfo)
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
	require.NotNil(t, context)
	harness.Context = context

	return harness
}

func (h *testHarness) deInit(t *testing.T) {
	h.Factory.EXPECT().Release().Return(uint32(0))

	res, err := h.Context.DeInit()
	require.NoError(t, err)
	require.Equal(t, agsutils.Success, res)
}

var radeonAdapter = dx.AdapterDesc{
	Description:          "AMD Radeon RX 6800",
	VendorID:             0x1002,
	DeviceID:             0x73bf,
	Revision:             0xc3,
	DedicatedVideoMemory: 16 * 1024 * 1024 * 1024,
}

var integratedAdapter = dx.AdapterDesc{
	VendorID:             0x1002,
	DeviceID:             0x164e,
	Revision:             0xc1,
	DedicatedVideoMemory: 512 * 1024 * 1024,
}
