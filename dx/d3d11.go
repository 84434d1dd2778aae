package dx

// DriverType mirrors D3D_DRIVER_TYPE
type DriverType uint32

const (
	DriverTypeUnknown DriverType = iota
	DriverTypeHardware
	DriverTypeReference
	DriverTypeNull
	DriverTypeSoftware
	DriverTypeWARP
)

// FeatureLevel mirrors D3D_FEATURE_LEVEL
type FeatureLevel uint32

const (
	FeatureLevel9_1  FeatureLevel = 0x9100
	FeatureLevel9_2  FeatureLevel = 0x9200
	FeatureLevel9_3  FeatureLevel = 0x9300
	FeatureLevel10_0 FeatureLevel = 0xa000
	FeatureLevel10_1 FeatureLevel = 0xa100
	FeatureLevel11_0 FeatureLevel = 0xb000
	FeatureLevel11_1 FeatureLevel = 0xb100
	FeatureLevel12_0 FeatureLevel = 0xc000
	FeatureLevel12_1 FeatureLevel = 0xc100
)

// CreateDeviceFlags mirrors D3D11_CREATE_DEVICE_FLAG
type CreateDeviceFlags uint32

// SDKVersion is D3D11_SDK_VERSION
const SDKVersion uint32 = 7

// PrimitiveTopology mirrors D3D_PRIMITIVE_TOPOLOGY
type PrimitiveTopology uint32

// DeviceContextType mirrors D3D11_DEVICE_CONTEXT_TYPE
type DeviceContextType uint32

const (
	DeviceContextImmediate DeviceContextType = iota
	DeviceContextDeferred
)

// Device is an ID3D11Device
type Device interface {
	Unknown
	// GetImmediateContext returns a new reference to the device's immediate context
	GetImmediateContext() DeviceContext
}

// DeviceContext is an ID3D11DeviceContext, either immediate or deferred
type DeviceContext interface {
	Unknown
	GetType() DeviceContextType
}

// Resource is an ID3D11Resource
type Resource interface {
	Unknown
}

// BufferDesc mirrors D3D11_BUFFER_DESC
type BufferDesc struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

// Buffer is an ID3D11Buffer
type Buffer interface {
	Resource
	GetDesc() BufferDesc
}

// SubresourceData mirrors D3D11_SUBRESOURCE_DATA
type SubresourceData struct {
	SysMem           []byte
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

// Texture1DDesc mirrors D3D11_TEXTURE1D_DESC
type Texture1DDesc struct {
	Width          uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// Texture2DDesc mirrors D3D11_TEXTURE2D_DESC
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	SampleCount    uint32
	SampleQuality  uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// Texture3DDesc mirrors D3D11_TEXTURE3D_DESC
type Texture3DDesc struct {
	Width          uint32
	Height         uint32
	Depth          uint32
	MipLevels      uint32
	Format         Format
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type Texture1D interface {
	Resource
}

type Texture2D interface {
	Resource
}

type Texture3D interface {
	Resource
}

// Rect mirrors D3D11_RECT
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}
