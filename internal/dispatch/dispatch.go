package dispatch

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/device"
	"github.com/vkngwrapper/dxvk-ags/vkext"
)

// Dispatcher forwards extension calls to the backend context of an attached Pair, gated on the
// extension bitmask the Pair computed at attach
type Dispatcher struct {
	logger *slog.Logger
	pair   *device.Pair
}

// New creates a Dispatcher over pair. The pair is read on every call, so attach and detach
// take effect immediately.
func New(logger *slog.Logger, pair *device.Pair) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		pair:   pair,
	}
}

// MaxDrawCount is the number of whole argument records of byteStride bytes that fit in args after
// byteOffset
func MaxDrawCount(args dx.Buffer, byteOffset, byteStride uint32) uint32 {
	desc := args.GetDesc()
	if desc.ByteWidth <= byteOffset || byteStride == 0 {
		return 0
	}

	return (desc.ByteWidth - byteOffset) / byteStride
}

type target struct {
	context vkext.Context
	owned   bool
}

func (t target) done() {
	if t.owned {
		t.context.Release()
	}
}

// resolve picks the backend context a call is forwarded to. A nil native context means the pair's
// immediate context. Otherwise the native context is queried for its own backend interface, and a
// deferred context additionally requires deferred.
func (d *Dispatcher) resolve(native dx.DeviceContext, flag, deferred agsutils.ExtensionFlags) (target, agsutils.ReturnCode, error) {
	if d.pair.State() != device.Attached {
		res, err := agsutils.Fail(agsutils.InvalidArgs, "no device is attached")
		return target{}, res, err
	}

	extensions := d.pair.Extensions()
	if extensions&flag == 0 {
		res, err := agsutils.Fail(agsutils.ExtensionNotSupported, "%s is not supported by the device", flag)
		return target{}, res, err
	}

	if native == nil {
		return target{context: d.pair.Context()}, agsutils.Success, nil
	}

	if native.GetType() == dx.DeviceContextDeferred && extensions&deferred == 0 {
		res, err := agsutils.Fail(agsutils.ExtensionNotSupported, "%s is not supported by the device", deferred)
		return target{}, res, err
	}

	context, err := vkext.QueryContext(native)
	if err != nil {
		d.logger.Warn("device context is not a backend context", slog.Any("error", err))
		res, err := agsutils.FailWith(agsutils.Failure, err, "could not resolve the backend context")
		return target{}, res, err
	}

	return target{context: context, owned: true}, agsutils.Success, nil
}

// BeginUAVOverlap suppresses write-after-write barriers between UAV writes on native
func (d *Dispatcher) BeginUAVOverlap(native dx.DeviceContext) (agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionUAVOverlap, agsutils.DX11ExtensionUAVOverlapDeferredContexts)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.SetBarrierControl(vkext.BarrierControlIgnoreWriteAfterWrite)
	return agsutils.Success, nil
}

// EndUAVOverlap restores the default UAV barriers on native
func (d *Dispatcher) EndUAVOverlap(native dx.DeviceContext) (agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionUAVOverlap, agsutils.DX11ExtensionUAVOverlapDeferredContexts)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.SetBarrierControl(0)
	return agsutils.Success, nil
}

// SetDepthBounds enables or disables the depth bounds test on native
func (d *Dispatcher) SetDepthBounds(native dx.DeviceContext, enabled bool, minDepth, maxDepth float32) (agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionDepthBoundsTest, agsutils.DX11ExtensionDepthBoundsDeferredContexts)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.SetDepthBoundsTest(enabled, minDepth, maxDepth)
	return agsutils.Success, nil
}

// MultiDrawIndirect records drawCount instanced draws read from args
func (d *Dispatcher) MultiDrawIndirect(native dx.DeviceContext, drawCount uint32, args dx.Buffer, byteOffset, byteStride uint32) (agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionMultiDrawIndirect, agsutils.DX11ExtensionMDIDeferredContexts)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.MultiDrawIndirect(drawCount, args, byteOffset, byteStride)
	return agsutils.Success, nil
}

// MultiDrawIndexedIndirect records drawCount indexed instanced draws read from args
func (d *Dispatcher) MultiDrawIndexedIndirect(native dx.DeviceContext, drawCount uint32, args dx.Buffer, byteOffset, byteStride uint32) (agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionMultiDrawIndirect, agsutils.DX11ExtensionMDIDeferredContexts)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.MultiDrawIndexedIndirect(drawCount, args, byteOffset, byteStride)
	return agsutils.Success, nil
}

// CountedDraw is the argument set shared by both count-buffer draw calls
type CountedDraw struct {
	CountBuffer     dx.Buffer
	CountByteOffset uint32
	ArgsBuffer      dx.Buffer
	ArgsByteOffset  uint32
	ArgsByteStride  uint32
}

func (d *Dispatcher) countedDraw(native dx.DeviceContext, draw CountedDraw) (target, uint32, agsutils.ReturnCode, error) {
	t, res, err := d.resolve(native, agsutils.DX11ExtensionMultiDrawIndirectCountIndirect, agsutils.DX11ExtensionMDIDeferredContexts)
	if err != nil {
		return t, 0, res, err
	}

	if draw.ArgsBuffer == nil {
		t.done()
		res, err = agsutils.Fail(agsutils.InvalidArgs, "the argument buffer is nil")
		return target{}, 0, res, err
	}

	return t, MaxDrawCount(draw.ArgsBuffer, draw.ArgsByteOffset, draw.ArgsByteStride), agsutils.Success, nil
}

// MultiDrawIndirectCount records instanced draws whose count is read from the count buffer, capped
// by the records that fit in the argument buffer
func (d *Dispatcher) MultiDrawIndirectCount(native dx.DeviceContext, draw CountedDraw) (agsutils.ReturnCode, error) {
	t, maxDrawCount, res, err := d.countedDraw(native, draw)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.MultiDrawIndirectCount(maxDrawCount, draw.CountBuffer, draw.CountByteOffset, draw.ArgsBuffer, draw.ArgsByteOffset, draw.ArgsByteStride)
	return agsutils.Success, nil
}

// MultiDrawIndexedIndirectCount is the indexed form of MultiDrawIndirectCount
func (d *Dispatcher) MultiDrawIndexedIndirectCount(native dx.DeviceContext, draw CountedDraw) (agsutils.ReturnCode, error) {
	t, maxDrawCount, res, err := d.countedDraw(native, draw)
	if err != nil {
		return res, err
	}
	defer t.done()

	t.context.MultiDrawIndexedIndirectCount(maxDrawCount, draw.CountBuffer, draw.CountByteOffset, draw.ArgsBuffer, draw.ArgsByteOffset, draw.ArgsByteStride)
	return agsutils.Success, nil
}
