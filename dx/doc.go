// Package dx describes the native DXGI and Direct3D objects that the AGS layer receives from and
// hands back to the caller. Nothing in this package is implemented here: the objects are produced by
// the native graphics runtime (or a test double) and are only passed through, queried and released.
//
// Objects follow COM rules. QueryInterface and GetImmediateContext return a new reference that the
// receiver must Release, and Release returns the number of references that remain.
package dx
