//go:build !ags_5_0 && !ags_5_1 && !ags_5_2

package ags

const (
	VersionMajor = 5
	VersionMinor = 3
	VersionPatch = 0
)
