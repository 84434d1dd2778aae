package vulkan

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"golang.org/x/exp/slices"
)

type fakeVulkanBuffer struct {
	core1_0.Buffer
	name string
}

type fakeBuffer struct {
	backing core1_0.Buffer
	offset  int
	width   uint32
}

var _ Buffer = &fakeBuffer{}

func (b *fakeBuffer) QueryInterface(iid uuid.UUID) (dx.Unknown, error) {
	return nil, dx.ErrNoInterface
}
func (b *fakeBuffer) AddRef() uint32  { return 1 }
func (b *fakeBuffer) Release() uint32 { return 0 }
func (b *fakeBuffer) GetDesc() dx.BufferDesc {
	return dx.BufferDesc{ByteWidth: b.width}
}
func (b *fakeBuffer) VulkanBuffer() (core1_0.Buffer, int) {
	return b.backing, b.offset
}

// plainBuffer is a native buffer with no Vulkan storage behind it
type plainBuffer struct{}

func (b plainBuffer) QueryInterface(iid uuid.UUID) (dx.Unknown, error) {
	return nil, dx.ErrNoInterface
}
func (b plainBuffer) AddRef() uint32        { return 1 }
func (b plainBuffer) Release() uint32       { return 0 }
func (b plainBuffer) GetDesc() dx.BufferDesc { return dx.BufferDesc{} }

type recordedCall struct {
	Name        string
	Buffer      core1_0.Buffer
	Offset      uint64
	CountBuffer core1_0.Buffer
	CountOffset uint64
	DrawCount   int
	Stride      int
	Min         float32
	Max         float32
}

type fakeRecorder struct {
	calls []recordedCall
}

func (r *fakeRecorder) CmdSetDepthBounds(min, max float32) {
	r.calls = append(r.calls, recordedCall{Name: "CmdSetDepthBounds", Min: min, Max: max})
}

func (r *fakeRecorder) CmdDrawIndirect(buffer core1_0.Buffer, offset int, drawCount, stride int) {
	r.calls = append(r.calls, recordedCall{Name: "CmdDrawIndirect", Buffer: buffer, Offset: uint64(offset), DrawCount: drawCount, Stride: stride})
}

func (r *fakeRecorder) CmdDrawIndexedIndirect(buffer core1_0.Buffer, offset int, drawCount, stride int) {
	r.calls = append(r.calls, recordedCall{Name: "CmdDrawIndexedIndirect", Buffer: buffer, Offset: uint64(offset), DrawCount: drawCount, Stride: stride})
}

func (r *fakeRecorder) CmdDrawIndirectCount(buffer core1_0.Buffer, offset uint64, countBuffer core1_0.Buffer, countBufferOffset uint64, maxDrawCount, stride int) {
	r.calls = append(r.calls, recordedCall{Name: "CmdDrawIndirectCount", Buffer: buffer, Offset: offset, CountBuffer: countBuffer, CountOffset: countBufferOffset, DrawCount: maxDrawCount, Stride: stride})
}

func (r *fakeRecorder) CmdDrawIndexedIndirectCount(buffer core1_0.Buffer, offset uint64, countBuffer core1_0.Buffer, countBufferOffset uint64, maxDrawCount, stride int) {
	r.calls = append(r.calls, recordedCall{Name: "CmdDrawIndexedIndirectCount", Buffer: buffer, Offset: offset, CountBuffer: countBuffer, CountOffset: countBufferOffset, DrawCount: maxDrawCount, Stride: stride})
}

type extensionSet []string

func (s extensionSet) IsDeviceExtensionActive(extensionName string) bool {
	return slices.Contains(s, extensionName)
}
