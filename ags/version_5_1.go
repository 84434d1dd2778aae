//go:build ags_5_1

package ags

const (
	VersionMajor = 5
	VersionMinor = 1
	VersionPatch = 1
)
