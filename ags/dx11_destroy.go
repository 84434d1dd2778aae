//go:build !ags_5_0 && !ags_5_1

package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// DX11DestroyDevice releases the backend interfaces attached by DX11CreateDevice. device and
// immediateContext are not released: they belong to the caller. The reference pointers are
// optional and receive the counts the backend interfaces reported on release.
func (c *Context) DX11DestroyDevice(device dx.Device, deviceReferences *uint32, immediateContext dx.DeviceContext, immediateContextReferences *uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_DestroyDevice")
	return c.destroyDevice(deviceReferences, immediateContextReferences)
}

// BreadcrumbType mirrors AGSBreadcrumbMarker::Type
type BreadcrumbType int32

const (
	BreadcrumbTopOfPipe BreadcrumbType = iota
	BreadcrumbBottomOfPipe
)

// BreadcrumbMarker mirrors AGSBreadcrumbMarker
type BreadcrumbMarker struct {
	MarkerData uint64
	Type       BreadcrumbType
	Index      uint32
}

// DX11WriteBreadcrumb is not supported
func (c *Context) DX11WriteBreadcrumb(marker *BreadcrumbMarker) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_WriteBreadcrumb", slog.Bool("marker", marker != nil))
	return c.notImplemented("agsDriverExtensionsDX11_WriteBreadcrumb", agsutils.ExtensionNotSupported)
}
