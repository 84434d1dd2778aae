//go:build ags_5_1

package ags

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// DX11DestroyDevice releases the backend interfaces attached by DX11CreateDevice. device is not
// released: it belongs to the caller. When deviceReferences is not nil it receives the reference
// count the backend device reported on release.
func (c *Context) DX11DestroyDevice(device dx.Device, deviceReferences *uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_DestroyDevice")
	return c.destroyDevice(deviceReferences, nil)
}
