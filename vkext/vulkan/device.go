package vulkan

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/vkext"
	"github.com/vkngwrapper/extensions/v2/khr_draw_indirect_count"
)

// ExtensionQuery reports which device extensions were enabled. core1_0.Device satisfies it.
type ExtensionQuery interface {
	IsDeviceExtensionActive(extensionName string) bool
}

// Device is a vkext.Device backed by a Vulkan device. Extension support is fixed at creation from
// the enabled device features and extensions.
type Device struct {
	refs atomic.Uint32

	depthBounds            bool
	multiDrawIndirect      bool
	multiDrawIndirectCount bool
}

var _ vkext.Device = &Device{}

// NewDevice creates a Device holding one reference
//
// extensions - The device whose enabled extensions are probed
//
// enabled - The features the Vulkan device was created with
func NewDevice(extensions ExtensionQuery, enabled *core1_0.PhysicalDeviceFeatures) (*Device, error) {
	if extensions == nil {
		return nil, errors.New("vulkan.NewDevice: extensions is nil")
	}
	if enabled == nil {
		return nil, errors.New("vulkan.NewDevice: enabled features are nil")
	}

	device := &Device{
		depthBounds:       enabled.DepthBounds,
		multiDrawIndirect: enabled.MultiDrawIndirect,
	}
	device.multiDrawIndirectCount = device.multiDrawIndirect && extensions.IsDeviceExtensionActive(khr_draw_indirect_count.ExtensionName)
	device.refs.Store(1)

	return device, nil
}

func (d *Device) GetExtensionSupport(extension vkext.Extension) bool {
	switch extension {
	case vkext.ExtBarrierControl:
		return true
	case vkext.ExtDepthBounds:
		return d.depthBounds
	case vkext.ExtMultiDrawIndirect:
		return d.multiDrawIndirect
	case vkext.ExtMultiDrawIndirectCount:
		return d.multiDrawIndirectCount
	}

	return false
}

func (d *Device) QueryInterface(iid uuid.UUID) (dx.Unknown, error) {
	if iid != vkext.IIDDevice && iid != dx.IIDUnknown {
		return nil, errors.Wrapf(dx.ErrNoInterface, "vulkan.Device does not implement %s", iid)
	}

	d.AddRef()
	return d, nil
}

func (d *Device) AddRef() uint32 {
	return d.refs.Add(1)
}

func (d *Device) Release() uint32 {
	return release(&d.refs)
}

func release(refs *atomic.Uint32) uint32 {
	for {
		current := refs.Load()
		if current == 0 {
			return 0
		}
		if refs.CompareAndSwap(current, current-1) {
			return current - 1
		}
	}
}
