package ags

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/dxvk-ags/agsutils"
	"github.com/vkngwrapper/dxvk-ags/dx"
	"github.com/vkngwrapper/dxvk-ags/internal/device"
	"github.com/vkngwrapper/dxvk-ags/internal/dispatch"
	"golang.org/x/exp/slices"
)

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Context is the handle produced by Init. Its zero value is not usable.
type Context struct {
	logger  *slog.Logger
	runtime dx.Runtime
	factory dx.Factory
	config  Configuration

	pair       *device.Pair
	dispatcher *dispatch.Dispatcher
	devices    []DeviceInfo
}

// Init enumerates the adapters of a new DXGI factory and returns a Context holding them. The logger
// may be nil. config may be nil. When gpuInfo is not nil, it is filled with the build version and
// the enumerated devices.
func Init(logger *slog.Logger, runtime dx.Runtime, config *Configuration, gpuInfo *GPUInfo) (*Context, agsutils.ReturnCode, error) {
	if logger == nil {
		logger = discardLogger
	}

	logger.Debug("agsInit", slog.Bool("config", config != nil), slog.Bool("gpuInfo", gpuInfo != nil))

	if runtime == nil {
		res, err := agsutils.Fail(agsutils.InvalidArgs, "runtime is nil")
		return nil, res, err
	}

	factory, err := runtime.CreateFactory()
	if err != nil {
		res, err := agsutils.FailWith(agsutils.Failure, err, "CreateDXGIFactory1")
		return nil, res, err
	}

	var options Configuration
	if config != nil {
		options = *config
	}

	pair := device.New(logger, BuildVersion)
	context := &Context{
		logger:     logger,
		runtime:    runtime,
		factory:    factory,
		config:     options.withDefaults(),
		pair:       pair,
		dispatcher: dispatch.New(logger, pair),
	}
	context.enumerateDevices()

	if gpuInfo != nil {
		*gpuInfo = GPUInfo{
			AGSVersionMajor:       VersionMajor,
			AGSVersionMinor:       VersionMinor,
			AGSVersionPatch:       VersionPatch,
			DriverVersion:         context.config.DriverVersion,
			RadeonSoftwareVersion: context.config.RadeonSoftwareVersion,
			Devices:               context.Devices(),
		}
	}

	logger.Debug("agsInit() = AGS_SUCCESS", slog.Int("numDevices", len(context.devices)))
	return context, agsutils.Success, nil
}

func (c *Context) enumerateDevices() {
	for i := 0; ; i++ {
		adapter, err := c.factory.EnumAdapters(uint32(i))
		if err != nil {
			if !errors.Is(err, dx.ErrNotFound) {
				c.logger.Warn("adapter enumeration stopped early", slog.Int("index", i), slog.Any("error", err))
			}
			return
		}

		desc, err := adapter.GetDesc()
		adapter.Release()
		if err != nil {
			c.logger.Warn("could not describe adapter", slog.Int("index", i), slog.Any("error", err))
			continue
		}

		adapterString := desc.Description
		if adapterString == "" {
			adapterString = defaultAdapterString
		}

		c.devices = append(c.devices, DeviceInfo{
			AdapterString:       adapterString,
			ArchitectureVersion: ArchitectureVersionGCN,
			VendorID:            desc.VendorID,
			DeviceID:            desc.DeviceID,
			RevisionID:          desc.Revision,
			IsPrimaryDevice:     i == 0,
			LocalMemoryInBytes:  desc.DedicatedVideoMemory,
			ADLAdapterIndex:     i,
		})
	}
}

func (c *Context) log() *slog.Logger {
	if c == nil || c.logger == nil {
		return discardLogger
	}

	return c.logger
}

func (c *Context) usable() (agsutils.ReturnCode, error) {
	if c == nil || c.factory == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "context is nil or has been deinitialized")
	}

	return agsutils.Success, nil
}

// DeInit releases the attached backend device pair, if any, and the DXGI factory. The Context cannot
// be used afterwards.
func (c *Context) DeInit() (agsutils.ReturnCode, error) {
	c.log().Debug("agsDeInit")

	res, err := c.usable()
	if err != nil {
		return res, err
	}

	if c.pair.State() == device.Attached {
		res, err = c.pair.Release()
		if err != nil {
			return res, err
		}
	}

	c.factory.Release()
	c.factory = nil

	c.logger.Debug("agsDeInit() = AGS_SUCCESS")
	return agsutils.Success, nil
}

// Attached is true while a backend device pair is attached
func (c *Context) Attached() bool {
	return c != nil && c.pair.State() == device.Attached
}

// ExtensionsSupported returns the extension bitmask computed when the current device was attached.
// It is zero when no device is attached.
func (c *Context) ExtensionsSupported() agsutils.ExtensionFlags {
	if c == nil {
		return 0
	}

	return c.pair.Extensions()
}

// Devices returns a copy of the devices enumerated by Init
func (c *Context) Devices() []DeviceInfo {
	if c == nil {
		return nil
	}

	return slices.Clone(c.devices)
}

// BuildStatsString returns a JSON document describing the Context: the build version, the attach
// state, the supported extensions and the enumerated devices
func (c *Context) BuildStatsString() string {
	writer := jwriter.NewWriter()

	json := writer.Object()
	json.Name("Version").String(BuildVersion.String())

	if c != nil {
		json.Name("Attached").Bool(c.Attached())
		json.Name("Extensions").String(c.ExtensionsSupported().String())
		json.Name("DriverVersion").String(c.config.DriverVersion)
		json.Name("RadeonSoftwareVersion").String(c.config.RadeonSoftwareVersion)

		devices := json.Name("Devices").Array()
		for _, info := range c.devices {
			o := devices.Object()
			o.Name("AdapterString").String(info.AdapterString)
			o.Name("ArchitectureVersion").String(info.ArchitectureVersion.String())
			o.Name("VendorID").Int(int(info.VendorID))
			o.Name("DeviceID").Int(int(info.DeviceID))
			o.Name("RevisionID").Int(int(info.RevisionID))
			o.Name("IsPrimaryDevice").Bool(info.IsPrimaryDevice)
			o.Name("LocalMemoryInBytes").Float64(float64(info.LocalMemoryInBytes))
			o.Name("ADLAdapterIndex").Int(info.ADLAdapterIndex)
			o.End()
		}
		devices.End()
	}

	json.End()
	return string(writer.Bytes())
}

// notImplemented logs an always-unsupported entry point and returns its fixed outcome
func (c *Context) notImplemented(name string, code agsutils.ReturnCode) (agsutils.ReturnCode, error) {
	c.log().Warn(name + ": not implemented")
	return agsutils.Fail(code, "%s is not implemented", name)
}
