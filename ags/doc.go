// Package ags exposes the AMD GPU Services entry points on top of a backend device that implements
// the vkext vendor-extension interfaces.
//
// A Context is produced by Init and threaded through every other call. It attaches at most one
// backend device/context pair at a time. Extension calls are forwarded to that pair when the backend
// reports the matching capability, and fail with agsutils.ExtensionNotSupported otherwise. Entry
// points for features the backend never provides are individually named and always report the same
// outcome code: ExtensionNotSupported for D3D11 features and LegacyDriver for D3D12 and display
// mode calls.
//
// The set of entry points follows one historical AGS header, selected at build time:
//
//	-tags ags_5_0   AGS 5.0: DX11Init/DX11DeInit over a caller-created device
//	-tags ags_5_1   AGS 5.1: DX11CreateDevice and a device-only DX11DestroyDevice
//	-tags ags_5_2   AGS 5.2: DX11DestroyDevice also reports immediate context references
//	(no tag)        AGS 5.3: extension calls take a per-call device context
//
// Every entry point returns the AGS return code alongside an error. The error is nil on success
// and otherwise wraps the matching agsutils sentinel, so errors.Is(err, agsutils.ErrExtensionNotSupported)
// and agsutils.CodeOf(err) both work.
//
// A Context performs no locking. Attach and detach calls must not race with each other or with
// extension calls.
package ags
