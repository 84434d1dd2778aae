//go:build ags_5_0

package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// DX11Init attaches the backend interfaces of a device the caller created. uavSlot is accepted
// and ignored. When extensionsSupported is not nil it receives the extension bitmask.
func (c *Context) DX11Init(device dx.Device, uavSlot uint32, extensionsSupported *agsutils.ExtensionFlags) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_Init", slog.Int("uavSlot", int(uavSlot)))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	res, err = c.pair.Acquire(device)
	if err != nil {
		return res, err
	}

	if extensionsSupported != nil {
		*extensionsSupported = c.pair.Extensions()
	}

	return agsutils.Success, nil
}

// DX11DeInit releases the backend interfaces attached by DX11Init
func (c *Context) DX11DeInit() (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_DeInit")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.pair.Release()
}
