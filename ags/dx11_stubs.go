package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// AfrTransferType mirrors AGSAfrTransferType
type AfrTransferType int32

const (
	AfrTransferDefault AfrTransferType = iota
	AfrTransferDisable
	AfrTransfer1stFrame
	AfrTransferReplicatedChange
	AfrTransferCompositeChange
)

// AfrTransferEngine mirrors AGSAfrTransferEngine
type AfrTransferEngine int32

const (
	AfrTransferEngineDefault AfrTransferEngine = iota
	AfrTransferEngineCopyEngine
	AfrTransferEngineGraphicsEngine
)

// ClipRectMode mirrors AGSClipRect::Mode
type ClipRectMode int32

const (
	ClipRectInclusive ClipRectMode = iota
	ClipRectExclusive
)

// ClipRect mirrors AGSClipRect
type ClipRect struct {
	Mode ClipRectMode
	Rect dx.Rect
}

// None of the calls below have a backend equivalent. Each reports agsutils.ExtensionNotSupported and
// leaves the Context and every out parameter untouched.

func (c *Context) DX11IASetPrimitiveTopology(topology dx.PrimitiveTopology) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_IASetPrimitiveTopology", slog.Int("topology", int(topology)))
	return c.notImplemented("agsDriverExtensionsDX11_IASetPrimitiveTopology", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11SetMaxAsyncCompileThreadCount(numberOfThreads uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetMaxAsyncCompileThreadCount", slog.Int("numberOfThreads", int(numberOfThreads)))
	return c.notImplemented("agsDriverExtensionsDX11_SetMaxAsyncCompileThreadCount", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11NumPendingAsyncCompileJobs(numberOfJobs *uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_NumPendingAsyncCompileJobs")
	return c.notImplemented("agsDriverExtensionsDX11_NumPendingAsyncCompileJobs", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11SetDiskShaderCacheEnabled(enable bool) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetDiskShaderCacheEnabled", slog.Bool("enable", enable))
	return c.notImplemented("agsDriverExtensionsDX11_SetDiskShaderCacheEnabled", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11SetViewBroadcastMasks(vpMask, rtSliceMask uint64, vpMaskPerRtSliceEnabled bool) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetViewBroadcastMasks",
		slog.Uint64("vpMask", vpMask),
		slog.Uint64("rtSliceMask", rtSliceMask),
		slog.Bool("vpMaskPerRtSliceEnabled", vpMaskPerRtSliceEnabled),
	)
	return c.notImplemented("agsDriverExtensionsDX11_SetViewBroadcastMasks", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11GetMaxClipRects(maxRectCount *uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_GetMaxClipRects")
	return c.notImplemented("agsDriverExtensionsDX11_GetMaxClipRects", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11SetClipRects(clipRects []ClipRect) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetClipRects", slog.Int("clipRectCount", len(clipRects)))
	return c.notImplemented("agsDriverExtensionsDX11_SetClipRects", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11CreateBuffer(desc *dx.BufferDesc, initialData *dx.SubresourceData, buffer *dx.Buffer, transferType AfrTransferType, transferEngine AfrTransferEngine) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_CreateBuffer", slog.Int("transferType", int(transferType)), slog.Int("transferEngine", int(transferEngine)))
	return c.notImplemented("agsDriverExtensionsDX11_CreateBuffer", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11CreateTexture1D(desc *dx.Texture1DDesc, initialData *dx.SubresourceData, texture1D *dx.Texture1D, transferType AfrTransferType, transferEngine AfrTransferEngine) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_CreateTexture1D", slog.Int("transferType", int(transferType)), slog.Int("transferEngine", int(transferEngine)))
	return c.notImplemented("agsDriverExtensionsDX11_CreateTexture1D", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11CreateTexture2D(desc *dx.Texture2DDesc, initialData *dx.SubresourceData, texture2D *dx.Texture2D, transferType AfrTransferType, transferEngine AfrTransferEngine) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_CreateTexture2D", slog.Int("transferType", int(transferType)), slog.Int("transferEngine", int(transferEngine)))
	return c.notImplemented("agsDriverExtensionsDX11_CreateTexture2D", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11CreateTexture3D(desc *dx.Texture3DDesc, initialData *dx.SubresourceData, texture3D *dx.Texture3D, transferType AfrTransferType, transferEngine AfrTransferEngine) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_CreateTexture3D", slog.Int("transferType", int(transferType)), slog.Int("transferEngine", int(transferEngine)))
	return c.notImplemented("agsDriverExtensionsDX11_CreateTexture3D", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11NotifyResourceEndWrites(resource dx.Resource, transferRegions []dx.Rect, subresourceArray []uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_NotifyResourceEndWrites", slog.Int("numSubresources", len(subresourceArray)))
	return c.notImplemented("agsDriverExtensionsDX11_NotifyResourceEndWrites", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11NotifyResourceBeginAllAccess(resource dx.Resource) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_NotifyResourceBeginAllAccess")
	return c.notImplemented("agsDriverExtensionsDX11_NotifyResourceBeginAllAccess", agsutils.ExtensionNotSupported)
}

func (c *Context) DX11NotifyResourceEndAllAccess(resource dx.Resource) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_NotifyResourceEndAllAccess")
	return c.notImplemented("agsDriverExtensionsDX11_NotifyResourceEndAllAccess", agsutils.ExtensionNotSupported)
}
