//go:build !ags_5_0

package ags

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

func (c *Context) DX12PushMarker(commandList dx.GraphicsCommandList, data string) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_PushMarker", agsutils.LegacyDriver)
}

func (c *Context) DX12PopMarker(commandList dx.GraphicsCommandList) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_PopMarker", agsutils.LegacyDriver)
}

func (c *Context) DX12SetMarker(commandList dx.GraphicsCommandList, data string) (agsutils.ReturnCode, error) {
	return c.notImplemented("agsDriverExtensionsDX12_SetMarker", agsutils.LegacyDriver)
}
