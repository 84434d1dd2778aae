package ags

import "github.com/vkngwrapper/dxvk-ags/agsutils"

// BuildVersion is the AGS header version this package was built against. Extension flags and
// entry points are exposed for this version only.
var BuildVersion = agsutils.MakeVersion(VersionMajor, VersionMinor, VersionPatch)
