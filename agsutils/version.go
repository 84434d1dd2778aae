package agsutils

import "fmt"

// Version is an AGS version packed the same way as AGS_MAKE_VERSION: 10 bits of major,
// 10 bits of minor and 12 bits of patch
type Version uint32

// MakeVersion packs major, minor and patch into a Version
func MakeVersion(major, minor, patch uint32) Version {
	return Version((major << 22) | (minor << 12) | patch)
}

var (
	// Version5_1 introduced explicit device creation and destruction
	Version5_1 = MakeVersion(5, 1, 0)
	// Version5_2 added immediate context reference counts, breadcrumb markers and DX12 device creation
	Version5_2 = MakeVersion(5, 2, 0)
	// Version5_3 added per-call device contexts, deferred context extension flags and driver version checks
	Version5_3 = MakeVersion(5, 3, 0)
)

func (v Version) Major() uint32 {
	return uint32(v) >> 22
}

func (v Version) Minor() uint32 {
	return (uint32(v) >> 12) & 0x3ff
}

func (v Version) Patch() uint32 {
	return uint32(v) & 0xfff
}

// IsAtLeast returns true if this version is the same as or newer than other
func (v Version) IsAtLeast(other Version) bool {
	return v >= other
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
