package dx

// AdapterDesc is the subset of DXGI_ADAPTER_DESC that the AGS layer reports
type AdapterDesc struct {
	Description           string
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
}

// Adapter is an IDXGIAdapter
type Adapter interface {
	Unknown
	GetDesc() (AdapterDesc, error)
}

// Factory is an IDXGIFactory1
type Factory interface {
	Unknown
	// EnumAdapters returns the adapter at index, or ErrNotFound when index is past the last adapter
	EnumAdapters(index uint32) (Adapter, error)
}

type Format uint32

type SwapEffect uint32

// SwapChainDesc mirrors DXGI_SWAP_CHAIN_DESC
type SwapChainDesc struct {
	Width        uint32
	Height       uint32
	Format       Format
	SampleCount  uint32
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     bool
	SwapEffect   SwapEffect
	Flags        uint32
}

// SwapChain is an IDXGISwapChain
type SwapChain interface {
	Unknown
}
