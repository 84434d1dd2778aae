//go:build ags_5_2

package ags

const (
	VersionMajor = 5
	VersionMinor = 2
	VersionPatch = 1
)
