package render

import "gonum.org/v1/plot/vg"

// DPI is the raster resolution used for on-screen output.
// At 96 DPI one pixel is 0.75pt.
const DPI = 96

// PixelsToLength converts a pixel count at DPI to a vg length.
func PixelsToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / DPI
}
