//go:build !ags_5_0 && !ags_5_1

package ags

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// DX12DeviceCreationParams mirrors AGSDX12DeviceCreationParams
type DX12DeviceCreationParams struct {
	Adapter      dx.Adapter
	IID          uuid.UUID
	FeatureLevel dx.FeatureLevel
}

// DX12ExtensionParams mirrors AGSDX12ExtensionParams
type DX12ExtensionParams struct {
	AppName       string
	EngineName    string
	AppVersion    uint32
	EngineVersion uint32
	UAVSlot       uint32
}

// DX12ReturnedParams mirrors AGSDX12ReturnedParams
type DX12ReturnedParams struct {
	Device              dx.D3D12Device
	ExtensionsSupported uint32
}

// DX12CreateDevice is not supported and always reports agsutils.LegacyDriver. returnedParams is
// not touched.
func (c *Context) DX12CreateDevice(creationParams *DX12DeviceCreationParams, extensionParams *DX12ExtensionParams, returnedParams *DX12ReturnedParams) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_CreateDevice", agsutils.LegacyDriver)
}

// DX12DestroyDevice is not supported and always reports agsutils.LegacyDriver
func (c *Context) DX12DestroyDevice(device dx.D3D12Device, deviceReferences *uint32) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_DestroyDevice", agsutils.LegacyDriver)
}
