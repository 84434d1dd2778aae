package vulkan

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/vkext"
	"github.com/vkngwrapper/extensions/v2/khr_draw_indirect_count"
)

func TestNewDevice_NoFeatures(t *testing.T) {
	device, err := NewDevice(extensionSet{}, &core1_0.PhysicalDeviceFeatures{})
	require.NoError(t, err)

	require.True(t, device.GetExtensionSupport(vkext.ExtBarrierControl))
	require.False(t, device.GetExtensionSupport(vkext.ExtDepthBounds))
	require.False(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirect))
	require.False(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirectCount))
	require.False(t, device.GetExtensionSupport(vkext.Extension(42)))
}

func TestNewDevice_AllFeatures(t *testing.T) {
	device, err := NewDevice(extensionSet{khr_draw_indirect_count.ExtensionName}, &core1_0.PhysicalDeviceFeatures{
		DepthBounds:       true,
		MultiDrawIndirect: true,
	})
	require.NoError(t, err)

	require.True(t, device.GetExtensionSupport(vkext.ExtBarrierControl))
	require.True(t, device.GetExtensionSupport(vkext.ExtDepthBounds))
	require.True(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirect))
	require.True(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirectCount))
}

func TestNewDevice_CountNeedsMultiDrawIndirect(t *testing.T) {
	device, err := NewDevice(extensionSet{khr_draw_indirect_count.ExtensionName}, &core1_0.PhysicalDeviceFeatures{
		DepthBounds: true,
	})
	require.NoError(t, err)

	require.True(t, device.GetExtensionSupport(vkext.ExtDepthBounds))
	require.False(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirect))
	require.False(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirectCount))
}

func TestNewDevice_CountNeedsExtension(t *testing.T) {
	device, err := NewDevice(extensionSet{}, &core1_0.PhysicalDeviceFeatures{
		MultiDrawIndirect: true,
	})
	require.NoError(t, err)

	require.True(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirect))
	require.False(t, device.GetExtensionSupport(vkext.ExtMultiDrawIndirectCount))
}

func TestNewDevice_InvalidArgs(t *testing.T) {
	_, err := NewDevice(nil, &core1_0.PhysicalDeviceFeatures{})
	require.Error(t, err)

	_, err = NewDevice(extensionSet{}, nil)
	require.Error(t, err)
}

func TestDevice_References(t *testing.T) {
	device, err := NewDevice(extensionSet{}, &core1_0.PhysicalDeviceFeatures{})
	require.NoError(t, err)

	queried, err := vkext.QueryDevice(device)
	require.NoError(t, err)
	require.Same(t, device, queried)

	unknown, err := device.QueryInterface(dx.IIDUnknown)
	require.NoError(t, err)
	require.Same(t, device, unknown)

	_, err = device.QueryInterface(vkext.IIDContext)
	require.ErrorIs(t, err, dx.ErrNoInterface)

	require.Equal(t, uint32(2), queried.Release())
	require.Equal(t, uint32(1), unknown.Release())
	require.Equal(t, uint32(0), device.Release())
	require.Equal(t, uint32(0), device.Release())
}
