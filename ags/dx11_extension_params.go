//go:build !ags_5_0 && !ags_5_1

package ags

// DX11ExtensionParams are accepted by DX11CreateDevice and do not change its behavior.
// NumBreadcrumbMarkers is ignored because DX11WriteBreadcrumb is not supported.
type DX11ExtensionParams struct {
	AppName              string
	EngineName           string
	AppVersion           uint32
	EngineVersion        uint32
	NumBreadcrumbMarkers uint32
	UAVSlot              uint32
	CrossfireMode        CrossfireMode
}
