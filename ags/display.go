package ags

import (
	"log/slog"

	"github.com/vkngwrapper/dxvk-ags/agsutils"
)

// DisplayMode mirrors AGSDisplaySettings::Mode
type DisplayMode int32

const (
	DisplayModeSDR DisplayMode = iota
	DisplayModeHDR10PQ
	DisplayModeHDR10SCRGB
	DisplayModeFreesyncHDRSCRGB
	DisplayModeFreesyncHDRGamma22
	DisplayModeDolbyVision
)

// DisplaySettings mirrors the mode and chromaticity fields of AGSDisplaySettings
type DisplaySettings struct {
	Mode DisplayMode

	ChromaticityRedX        float64
	ChromaticityRedY        float64
	ChromaticityGreenX      float64
	ChromaticityGreenY      float64
	ChromaticityBlueX       float64
	ChromaticityBlueY       float64
	ChromaticityWhitePointX float64
	ChromaticityWhitePointY float64

	MinLuminance              float64
	MaxLuminance              float64
	MaxContentLightLevel      float64
	MaxFrameAverageLightLevel float64
}

// SetDisplayMode is not supported and always reports agsutils.LegacyDriver
func (c *Context) SetDisplayMode(deviceIndex, displayIndex int, settings *DisplaySettings) (agsutils.ReturnCode, error) {
	c.log().Debug("agsSetDisplayMode", slog.Int("deviceIndex", deviceIndex), slog.Int("displayIndex", displayIndex))
	return c.notImplemented("agsSetDisplayMode", agsutils.LegacyDriver)
}
