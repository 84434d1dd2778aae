//go:build ags_5_0 || ags_5_1 || ags_5_2

package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/dispatch"
)

// The calls in this file record into the immediate context of the attached device.

func (c *Context) DX11BeginUAVOverlap() (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_BeginUAVOverlap")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.BeginUAVOverlap(nil)
}

func (c *Context) DX11EndUAVOverlap() (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_EndUAVOverlap")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.EndUAVOverlap(nil)
}

func (c *Context) DX11SetDepthBounds(enabled bool, minDepth, maxDepth float32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_SetDepthBounds",
		slog.Bool("enabled", enabled),
		slog.Float64("minDepth", float64(minDepth)),
		slog.Float64("maxDepth", float64(maxDepth)),
	)

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.SetDepthBounds(nil, enabled, minDepth, maxDepth)
}

func (c *Context) DX11MultiDrawInstancedIndirect(drawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawInstancedIndirect", slog.Int("drawCount", int(drawCount)))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndirect(nil, drawCount, bufferForArgs, alignedByteOffsetForArgs, byteStrideForArgs)
}

func (c *Context) DX11MultiDrawIndexedInstancedIndirect(drawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawIndexedInstancedIndirect", slog.Int("drawCount", int(drawCount)))

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndexedIndirect(nil, drawCount, bufferForArgs, alignedByteOffsetForArgs, byteStrideForArgs)
}

// DX11MultiDrawInstancedIndirectCountIndirect reads the draw count from bufferForDrawCount. The
// maximum draw count passed to the backend is the number of argument records that fit in
// bufferForArgs after alignedByteOffsetForArgs.
func (c *Context) DX11MultiDrawInstancedIndirectCountIndirect(bufferForDrawCount dx.Buffer, alignedByteOffsetForDrawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawInstancedIndirectCountIndirect")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndirectCount(nil, dispatch.CountedDraw{
		CountBuffer:     bufferForDrawCount,
		CountByteOffset: alignedByteOffsetForDrawCount,
		ArgsBuffer:      bufferForArgs,
		ArgsByteOffset:  alignedByteOffsetForArgs,
		ArgsByteStride:  byteStrideForArgs,
	})
}

// DX11MultiDrawIndexedInstancedIndirectCountIndirect is the indexed form of
// DX11MultiDrawInstancedIndirectCountIndirect
func (c *Context) DX11MultiDrawIndexedInstancedIndirectCountIndirect(bufferForDrawCount dx.Buffer, alignedByteOffsetForDrawCount uint32, bufferForArgs dx.Buffer, alignedByteOffsetForArgs, byteStrideForArgs uint32) (agsutils.ReturnCode, error) {
	c.log().Debug("agsDriverExtensionsDX11_MultiDrawIndexedInstancedIndirectCountIndirect")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	return c.dispatcher.MultiDrawIndexedIndirectCount(nil, dispatch.CountedDraw{
		CountBuffer:     bufferForDrawCount,
		CountByteOffset: alignedByteOffsetForDrawCount,
		ArgsBuffer:      bufferForArgs,
		ArgsByteOffset:  alignedByteOffsetForArgs,
		ArgsByteStride:  byteStrideForArgs,
	})
}
