//go:build ags_5_1

package ags

// DX11ExtensionParams are accepted by DX11CreateDevice and do not change its behavior
type DX11ExtensionParams struct {
	AppName       string
	EngineName    string
	AppVersion    uint32
	EngineVersion uint32
	UAVSlot       uint32
	CrossfireMode CrossfireMode
}
