package dx

// DeviceAndSwapChainParams are the arguments of D3D11CreateDeviceAndSwapChain
type DeviceAndSwapChainParams struct {
	Adapter       Adapter
	DriverType    DriverType
	Software      uintptr
	Flags         CreateDeviceFlags
	FeatureLevels []FeatureLevel
	SDKVersion    uint32
	// SwapChainDesc is optional. When nil, no swapchain is created.
	SwapChainDesc *SwapChainDesc
}

// DeviceAndSwapChain holds the objects produced by D3D11CreateDeviceAndSwapChain. SwapChain is nil
// when no swapchain was requested.
type DeviceAndSwapChain struct {
	SwapChain        SwapChain
	Device           Device
	FeatureLevel     FeatureLevel
	ImmediateContext DeviceContext
}

// Runtime is the set of native entry points the AGS layer calls into
type Runtime interface {
	// CreateFactory is CreateDXGIFactory1
	CreateFactory() (Factory, error)
	// CreateDeviceAndSwapChain is D3D11CreateDeviceAndSwapChain
	CreateDeviceAndSwapChain(params DeviceAndSwapChainParams) (DeviceAndSwapChain, error)
}
