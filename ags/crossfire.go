//go:build ags_5_0 || ags_5_1

package ags

import (
	"github.com/vkngwrapper/dxvk-ags/agsutils"
)

// GetCrossfireGPUCount always reports a single GPU
func (c *Context) GetCrossfireGPUCount(numGPUs *int) (agsutils.ReturnCode, error) {
	c.log().Debug("agsGetCrossfireGPUCount")

	if c == nil || numGPUs == nil {
		return agsutils.Fail(agsutils.InvalidArgs, "context and numGPUs are required")
	}

	*numGPUs = 1
	return agsutils.Success, nil
}
