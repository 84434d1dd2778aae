package dx

// D3D12Device is an ID3D12Device. The AGS layer never calls into it.
type D3D12Device interface {
	Unknown
}

// GraphicsCommandList is an ID3D12GraphicsCommandList. The AGS layer never calls into it.
type GraphicsCommandList interface {
	Unknown
}
