package vkext

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

var (
	// IIDDevice is the interface identifier of ID3D11VkExtDevice
	IIDDevice = uuid.MustParse("8a6e3c42-f74c-45b7-8265-a231b677ca17")
	// IIDContext is the interface identifier of ID3D11VkExtContext
	IIDContext = uuid.MustParse("fd0bca13-5cb6-4c3a-987e-4750de2ca791")
)

// Device is the backend's device extension interface, ID3D11VkExtDevice
type Device interface {
	dx.Unknown

	// GetExtensionSupport reports whether ext is available on this device
	GetExtensionSupport(ext Extension) bool
}

// Context is the backend's context extension interface, ID3D11VkExtContext. Calls record into the
// device context the interface was queried from.
type Context interface {
	dx.Unknown

	MultiDrawIndirect(
		drawCount uint32,
		bufferForArgs dx.Buffer,
		byteOffsetForArgs uint32,
		byteStrideForArgs uint32,
	)

	MultiDrawIndexedIndirect(
		drawCount uint32,
		bufferForArgs dx.Buffer,
		byteOffsetForArgs uint32,
		byteStrideForArgs uint32,
	)

	MultiDrawIndirectCount(
		maxDrawCount uint32,
		bufferForCount dx.Buffer,
		byteOffsetForCount uint32,
		bufferForArgs dx.Buffer,
		byteOffsetForArgs uint32,
		byteStrideForArgs uint32,
	)

	MultiDrawIndexedIndirectCount(
		maxDrawCount uint32,
		bufferForCount dx.Buffer,
		byteOffsetForCount uint32,
		bufferForArgs dx.Buffer,
		byteOffsetForArgs uint32,
		byteStrideForArgs uint32,
	)

	SetDepthBoundsTest(enable bool, minDepthBounds, maxDepthBounds float32)

	SetBarrierControl(controlFlags BarrierControl)
}
