//go:build !ags_5_0

package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/device"
)

// DX11DeviceCreationParams are the arguments forwarded to D3D11CreateDeviceAndSwapChain
type DX11DeviceCreationParams struct {
	Adapter       dx.Adapter
	DriverType    dx.DriverType
	Software      uintptr
	Flags         dx.CreateDeviceFlags
	FeatureLevels []dx.FeatureLevel
	SDKVersion    uint32
	// SwapChainDesc is optional. When nil, no swapchain is created.
	SwapChainDesc *dx.SwapChainDesc
}

// DX11ReturnedParams is filled by DX11CreateDevice. It is left untouched when the call is rejected
// for missing arguments or an attached device, and stays empty when the device cannot be created.
type DX11ReturnedParams struct {
	Device              dx.Device
	ImmediateContext    dx.DeviceContext
	SwapChain           dx.SwapChain
	FeatureLevel        dx.FeatureLevel
	ExtensionsSupported agsutils.ExtensionFlags
}

// DX11CreateDevice creates a native device (and a swapchain when requested) and attaches its backend
// interfaces. The native objects belong to the caller. If the new device does not expose the backend
// interfaces, they are released and the call fails with agsutils.Failure.
func (c *Context) DX11CreateDevice(creationParams *DX11DeviceCreationParams, extensionParams *DX11ExtensionParams, returnedParams *DX11ReturnedParams) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_CreateDevice", slog.Bool("extensionParams", extensionParams != nil))

	res, err := c.usable()
	if err != nil {
		return res, err
	}
	if creationParams == nil || returnedParams == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "creationParams and returnedParams are required")
	}

	if c.pair.State() == device.Attached {
		return agsutils.Fail(agsutils.InvalidArgs, "a device is already attached")
	}

	*returnedParams = DX11ReturnedParams{}

	var created device.Created
	res, err = c.pair.Create(c.runtime, dx.DeviceAndSwapChainParams{
		Adapter:       creationParams.Adapter,
		DriverType:    creationParams.DriverType,
		Software:      creationParams.Software,
		Flags:         creationParams.Flags,
		FeatureLevels: creationParams.FeatureLevels,
		SDKVersion:    creationParams.SDKVersion,
		SwapChainDesc: creationParams.SwapChainDesc,
	}, &created)
	if err != nil {
		return res, err
	}

	*returnedParams = DX11ReturnedParams{
		Device:              created.Device,
		ImmediateContext:    created.ImmediateContext,
		SwapChain:           created.SwapChain,
		FeatureLevel:        created.FeatureLevel,
		ExtensionsSupported: created.ExtensionsSupported,
	}

	c.logger.Debug("agsDriverExtensionsDX11_CreateDevice() = AGS_SUCCESS", slog.String("extensionsSupported", created.ExtensionsSupported.String()))
	return agsutils.Success, nil
}

func (c *Context) destroyDevice(deviceReferences, immediateContextReferences *uint32) (agsutils.ReturnCode, error) {
	res, err := c.usable()
	if err != nil {
		return res, err
	}

	deviceRefs, contextRefs, res, err := c.pair.Destroy()
	if err != nil {
		return res, err
	}

	if deviceReferences != nil {
		*deviceReferences = deviceRefs
	}
	if immediateContextReferences != nil {
		*immediateContextReferences = contextRefs
	}

	return agsutils.Success, nil
}
