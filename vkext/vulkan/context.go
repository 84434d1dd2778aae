package vulkan

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_2"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/vkext"
)

// Buffer is a native buffer that can hand out the Vulkan buffer backing it
type Buffer interface {
	dx.Buffer
	// VulkanBuffer returns the backing buffer and the byte offset of this buffer's storage inside it
	VulkanBuffer() (core1_0.Buffer, int)
}

// CommandRecorder receives the commands forwarded by Context. core1_0.CommandBuffer satisfies it.
type CommandRecorder interface {
	CmdSetDepthBounds(min, max float32)
	CmdDrawIndirect(buffer core1_0.Buffer, offset int, drawCount, stride int)
	CmdDrawIndexedIndirect(buffer core1_0.Buffer, offset int, drawCount, stride int)
}

// IndirectCountRecorder receives count-buffer draws. core1_2.CommandBuffer satisfies it.
type IndirectCountRecorder interface {
	CmdDrawIndirectCount(buffer core1_0.Buffer, offset uint64, countBuffer core1_0.Buffer, countBufferOffset uint64, maxDrawCount, stride int)
	CmdDrawIndexedIndirectCount(buffer core1_0.Buffer, offset uint64, countBuffer core1_0.Buffer, countBufferOffset uint64, maxDrawCount, stride int)
}

var (
	_ CommandRecorder       = core1_0.CommandBuffer(nil)
	_ IndirectCountRecorder = core1_2.CommandBuffer(nil)
)

// Context is a vkext.Context that records forwarded calls into a command recorder
type Context struct {
	refs   atomic.Uint32
	logger *slog.Logger

	device   *Device
	commands CommandRecorder
	counts   IndirectCountRecorder

	barrierControl vkext.BarrierControl
}

var _ vkext.Context = &Context{}

// NewContext creates a Context holding one reference. counts may be nil, in which case count-buffer
// draws are dropped.
func NewContext(logger *slog.Logger, device *Device, commands CommandRecorder, counts IndirectCountRecorder) (*Context, error) {
	if logger == nil {
		return nil, errors.New("vulkan.NewContext: logger is nil")
	}
	if device == nil || commands == nil {
		return nil, errors.New("vulkan.NewContext: device and commands are required")
	}

	context := &Context{
		logger:   logger,
		device:   device,
		commands: commands,
		counts:   counts,
	}
	context.refs.Store(1)

	return context, nil
}

func (c *Context) QueryInterface(iid uuid.UUID) (dx.Unknown, error) {
	if iid != vkext.IIDContext && iid != dx.IIDUnknown {
		return nil, errors.Wrapf(dx.ErrNoInterface, "vulkan.Context does not implement %s", iid)
	}

	c.AddRef()
	return c, nil
}

func (c *Context) AddRef() uint32 {
	return c.refs.Add(1)
}

func (c *Context) Release() uint32 {
	return release(&c.refs)
}

// BarrierControl returns the flags set by the last SetBarrierControl call
func (c *Context) BarrierControl() vkext.BarrierControl {
	return c.barrierControl
}

func (c *Context) SetBarrierControl(flags vkext.BarrierControl) {
	c.logger.Debug("VkExtContext::SetBarrierControl", slog.String("flags", flags.String()))
	c.barrierControl = flags
}

func (c *Context) SetDepthBoundsTest(enable bool, minDepthBounds, maxDepthBounds float32) {
	if !c.device.depthBounds {
		c.logger.Warn("VkExtContext::SetDepthBoundsTest called without the depthBounds feature")
		return
	}

	if !enable {
		minDepthBounds, maxDepthBounds = 0, 1
	}

	c.commands.CmdSetDepthBounds(minDepthBounds, maxDepthBounds)
}

func (c *Context) vulkanBuffer(call string, buffer dx.Buffer) (core1_0.Buffer, int, bool) {
	vulkanBuffer, ok := buffer.(Buffer)
	if !ok {
		c.logger.Warn(call+": buffer is not backed by a Vulkan buffer", slog.String("buffer", fmt.Sprintf("%T", buffer)))
		return nil, 0, false
	}

	backing, offset := vulkanBuffer.VulkanBuffer()
	return backing, offset, true
}

func (c *Context) MultiDrawIndirect(drawCount uint32, bufferForArgs dx.Buffer, byteOffsetForArgs, byteStrideForArgs uint32) {
	args, offset, ok := c.vulkanBuffer("VkExtContext::MultiDrawIndirect", bufferForArgs)
	if !ok {
		return
	}

	c.commands.CmdDrawIndirect(args, offset+int(byteOffsetForArgs), int(drawCount), int(byteStrideForArgs))
}

func (c *Context) MultiDrawIndexedIndirect(drawCount uint32, bufferForArgs dx.Buffer, byteOffsetForArgs, byteStrideForArgs uint32) {
	args, offset, ok := c.vulkanBuffer("VkExtContext::MultiDrawIndexedIndirect", bufferForArgs)
	if !ok {
		return
	}

	c.commands.CmdDrawIndexedIndirect(args, offset+int(byteOffsetForArgs), int(drawCount), int(byteStrideForArgs))
}

type countedDraw struct {
	args        core1_0.Buffer
	argsOffset  uint64
	count       core1_0.Buffer
	countOffset uint64
}

func (c *Context) countedDraw(call string, bufferForCount dx.Buffer, byteOffsetForCount uint32, bufferForArgs dx.Buffer, byteOffsetForArgs uint32) (countedDraw, bool) {
	if c.counts == nil {
		c.logger.Warn(call + ": no indirect count recorder is available")
		return countedDraw{}, false
	}

	count, countOffset, ok := c.vulkanBuffer(call, bufferForCount)
	if !ok {
		return countedDraw{}, false
	}

	args, argsOffset, ok := c.vulkanBuffer(call, bufferForArgs)
	if !ok {
		return countedDraw{}, false
	}

	return countedDraw{
		args:        args,
		argsOffset:  uint64(argsOffset) + uint64(byteOffsetForArgs),
		count:       count,
		countOffset: uint64(countOffset) + uint64(byteOffsetForCount),
	}, true
}

func (c *Context) MultiDrawIndirectCount(maxDrawCount uint32, bufferForCount dx.Buffer, byteOffsetForCount uint32, bufferForArgs dx.Buffer, byteOffsetForArgs, byteStrideForArgs uint32) {
	draw, ok := c.countedDraw("VkExtContext::MultiDrawIndirectCount", bufferForCount, byteOffsetForCount, bufferForArgs, byteOffsetForArgs)
	if !ok {
		return
	}

	c.counts.CmdDrawIndirectCount(draw.args, draw.argsOffset, draw.count, draw.countOffset, int(maxDrawCount), int(byteStrideForArgs))
}

func (c *Context) MultiDrawIndexedIndirectCount(maxDrawCount uint32, bufferForCount dx.Buffer, byteOffsetForCount uint32, bufferForArgs dx.Buffer, byteOffsetForArgs, byteStrideForArgs uint32) {
	draw, ok := c.countedDraw("VkExtContext::MultiDrawIndexedIndirectCount", bufferForCount, byteOffsetForCount, bufferForArgs, byteOffsetForArgs)
	if !ok {
		return
	}

	c.counts.CmdDrawIndexedIndirectCount(draw.args, draw.argsOffset, draw.count, draw.countOffset, int(maxDrawCount), int(byteStrideForArgs))
}
