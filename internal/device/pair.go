package device

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/caps"
	"github.com/vkngwrapper/dxvk-ags/vkext"
)

// State is the attach state of a Pair
type State int32

const (
	// Detached means no backend device/context pair is held
	Detached State = iota
	// Attached means both backend interfaces are held and the extension bitmask is valid
	Attached
)

var stateMapping = make(map[State]string)

func (s State) String() string {
	return stateMapping[s]
}

func init() {
	stateMapping[Detached] = "Detached"
	stateMapping[Attached] = "Attached"
}

// Created holds the objects produced by Pair.Create
type Created struct {
	dx.DeviceAndSwapChain
	ExtensionsSupported agsutils.ExtensionFlags
}

// Pair owns at most one backend device/context pair. Both interfaces are present or both are absent.
//
// Pair performs no locking. Attach and detach calls must not race with each other or with readers.
type Pair struct {
	logger  *slog.Logger
	version agsutils.Version

	device     vkext.Device
	context    vkext.Context
	extensions agsutils.ExtensionFlags
}

// New creates a detached Pair that reports extension flags for callers built against version
func New(logger *slog.Logger, version agsutils.Version) *Pair {
	return &Pair{
		logger:  logger,
		version: version,
	}
}

func (p *Pair) State() State {
	if p.device == nil {
		return Detached
	}

	return Attached
}

// Device returns the attached backend device, or nil when detached
func (p *Pair) Device() vkext.Device {
	return p.device
}

// Context returns the attached backend immediate context, or nil when detached
func (p *Pair) Context() vkext.Context {
	return p.context
}

// Extensions returns the extension bitmask computed when the pair was attached. It is zero when detached.
func (p *Pair) Extensions() agsutils.ExtensionFlags {
	return p.extensions
}

func (p *Pair) attach(device vkext.Device, context vkext.Context) (agsutils.ReturnCode, error) {
	var extensions agsutils.ExtensionFlags
	res, err := caps.Query(device, p.version, &extensions)
	if err != nil {
		return res, err
	}

	p.device = device
	p.context = context
	p.extensions = extensions

	p.logger.Debug("    Attached backend device", slog.String("extensions", extensions.String()))
	return agsutils.Success, nil
}

func (p *Pair) detach() (deviceRefs, contextRefs uint32) {
	deviceRefs = p.device.Release()
	contextRefs = p.context.Release()

	p.device = nil
	p.context = nil
	p.extensions = 0

	p.logger.Debug("    Detached backend device", slog.Int("deviceRefs", int(deviceRefs)), slog.Int("contextRefs", int(contextRefs)))
	return deviceRefs, contextRefs
}

// Create calls the native device creation entry point and attaches the backend interfaces of the
// new device and its immediate context. returned is reset before use. If the new device is not a
// backend device, every object the runtime produced is released, returned is reset again and the
// call fails.
func (p *Pair) Create(runtime dx.Runtime, params dx.DeviceAndSwapChainParams, returned *Created) (agsutils.ReturnCode, error) {
	if p.State() != Detached {
		return agsutils.Fail(agsutils.InvalidArgs, "a device is already attached")
	}
	if runtime == nil || returned == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "runtime and returned params are required")
	}

	*returned = Created{}

	objects, err := runtime.CreateDeviceAndSwapChain(params)
	if err != nil {
		return agsutils.FailWith(agsutils.Failure, err, "D3D11CreateDeviceAndSwapChain")
	}
	returned.DeviceAndSwapChain = objects

	device, context, err := queryPair(objects.Device, objects.ImmediateContext)
	if err != nil {
		p.logger.Warn("created device is not a backend device", slog.Any("error", err))
		rollback(objects)
		*returned = Created{}
		return agsutils.FailWith(agsutils.Failure, err, "the created device does not expose the backend extension interfaces")
	}

	res, err := p.attach(device, context)
	if err != nil {
		device.Release()
		context.Release()
		rollback(objects)
		*returned = Created{}
		return res, err
	}

	returned.ExtensionsSupported = p.extensions
	return agsutils.Success, nil
}

// Destroy releases the attached backend interfaces and reports the reference counts the backend
// returned from those releases. The caller's native device and immediate context are not touched:
// releasing them remains the caller's responsibility.
func (p *Pair) Destroy() (deviceRefs, contextRefs uint32, res agsutils.ReturnCode, err error) {
	if p.State() != Attached {
		res, err = agsutils.Fail(agsutils.InvalidArgs, "no device is attached")
		return 0, 0, res, err
	}

	deviceRefs, contextRefs = p.detach()
	return deviceRefs, contextRefs, agsutils.Success, nil
}

// Acquire attaches the backend interfaces of a device the caller created. Nothing the caller owns
// is released on failure.
func (p *Pair) Acquire(device dx.Device) (agsutils.ReturnCode, error) {
	if p.State() != Detached {
		return agsutils.Fail(agsutils.InvalidArgs, "a device is already attached")
	}
	if device == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "device is nil")
	}

	extDevice, err := vkext.QueryDevice(device)
	if err != nil {
		return agsutils.FailWith(agsutils.Failure, err, "the device does not expose the backend extension interface")
	}

	immediateContext := device.GetImmediateContext()
	if immediateContext == nil {
		extDevice.Release()
		return agsutils.Fail(agsutils.Failure, "the device has no immediate context")
	}

	extContext, err := vkext.QueryContext(immediateContext)
	immediateContext.Release()
	if err != nil {
		extDevice.Release()
		return agsutils.FailWith(agsutils.Failure, err, "the immediate context does not expose the backend extension interface")
	}

	res, err := p.attach(extDevice, extContext)
	if err != nil {
		extDevice.Release()
		extContext.Release()
		return res, err
	}

	return agsutils.Success, nil
}

// Release is the counterpart of Acquire: it releases the backend interfaces without reporting
// reference counts
func (p *Pair) Release() (agsutils.ReturnCode, error) {
	if p.State() != Attached {
		return agsutils.Fail(agsutils.InvalidArgs, "no device is attached")
	}

	p.detach()
	return agsutils.Success, nil
}

func queryPair(device dx.Device, immediateContext dx.DeviceContext) (vkext.Device, vkext.Context, error) {
	extDevice, err := vkext.QueryDevice(device)
	if err != nil {
		return nil, nil, err
	}

	extContext, err := vkext.QueryContext(immediateContext)
	if err != nil {
		extDevice.Release()
		return nil, nil, err
	}

	return extDevice, extContext, nil
}

func rollback(objects dx.DeviceAndSwapChain) {
	if objects.SwapChain != nil {
		objects.SwapChain.Release()
	}
	if objects.Device != nil {
		objects.Device.Release()
	}
	if objects.ImmediateContext != nil {
		objects.ImmediateContext.Release()
	}
}
