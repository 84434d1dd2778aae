//go:build ags_5_0 || ags_5_1

package ags

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// DX12Init is not supported and always reports agsutils.LegacyDriver
func (c *Context) DX12Init(device dx.D3D12Device, extensionsSupported *uint32) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_Init", agsutils.LegacyDriver)
}

// DX12DeInit is not supported and always reports agsutils.LegacyDriver
func (c *Context) DX12DeInit() (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_DeInit", agsutils.LegacyDriver)
}
