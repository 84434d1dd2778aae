//go:build !ags_5_0 && !ags_5_1 && !ags_5_2

package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/dispatch"
)

// The calls in this file take the device context to record into. A nil dxContext means the
// immediate context of the attached device. A deferred context is accepted only when the matching
// deferred-contexts extension flag is supported.

func (c *Context) DX11BeginUAVOverlap(dxContext dx.DeviceContext) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_BeginUAVOverlap", slog.Bool("dxContext", dxContext != nil))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.BeginUAVOverlap(dxContext)
}

func (c *Context) DX11EndUAVOverlap(dxContext dx.DeviceContext) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_EndUAVOverlap", slog.Bool("dxContext", dxContext != nil))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.EndUAVOverlap(dxContext)
}

func (c *Context) DX11SetDepthBounds(dxContext dx.DeviceContext, enabled bool, minDepth, maxDepth float32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetDepthBounds",
		slog.Bool("enabled", enabled),
		slog.Float64("minDepth", float64(minDepth)),
		slog.Float64("maxDepth", float64(maxDepth)),
	)

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.SetDepthBounds(dxContext, enabled, minDepth, maxDepth)
}

func (c *Context) DX11MultiDrawInstancedIndirect(dxContext dx.DeviceContext, drawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawInstancedIndirect", slog.Int("drawCount", int(drawCount)))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndirect(dxContext, drawCount, bufferForArgs, alignedByteOffsetForArgs, byteStrideForArgs)
}

func (c *Context) DX11MultiDrawIndexedInstancedIndirect(dxContext dx.DeviceContext, drawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawIndexedInstancedIndirect", slog.Int("drawCount", int(drawCount)))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndexedIndirect(dxContext, drawCount, bufferForArgs, alignedByteOffsetForArgs, byteStrideForArgs)
}

// DX11MultiDrawInstancedIndirectCountIndirect reads the draw count from bufferForDrawCount. The
// maximum draw count passed to the backend is the number of argument records that fit in
// bufferForArgs after alignedByteOffsetForArgs.
func (c *Context) DX11MultiDrawInstancedIndirectCountIndirect(dxContext dx.DeviceContext, bufferForDrawCount dx.Buffer, alignedByteOffsetForDrawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawInstancedIndirectCountIndirect")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndirectCount(dxContext, dispatch.CountedDraw{
		CountBuffer:     bufferForDrawCount,
		CountByteOffset: alignedByteOffsetForDrawCount,
		ArgsBuffer:      bufferForArgs,
		ArgsByteOffset:  alignedByteOffsetForArgs,
		ArgsByteStride:  byteStrideForArgs,
	})
}

// DX11MultiDrawIndexedInstancedIndirectCountIndirect is the indexed form of
// DX11MultiDrawInstancedIndirectCountIndirect
func (c *Context) DX11MultiDrawIndexedInstancedIndirectCountIndirect(dxContext dx.DeviceContext, bufferForDrawCount dx.Buffer, alignedByteOffsetForDrawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawIndexedInstancedIndirectCountIndirect")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndexedIndirectCount(dxContext, dispatch.CountedDraw{
		CountBuffer:     bufferForDrawCount,
		CountByteOffset: alignedByteOffsetForDrawCount,
		ArgsBuffer:      bufferForArgs,
		ArgsByteOffset:  alignedByteOffsetForArgs,
		ArgsByteStride:  byteStrideForArgs,
	})
}
