//go:build ags_5_0

package ags

const (
	VersionMajor = 5
	VersionMinor = 0
	VersionPatch = 5
)
