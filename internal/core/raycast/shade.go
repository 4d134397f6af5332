package raycast

import "image/color"

// CorrectLightness shifts each channel by delta weighted by its share of luma
// (30/59/11 percent) and clamps the result to [0,255].
func CorrectLightness(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: clampChannel(int(c.R) + delta*30/100),
		G: clampChannel(int(c.G) + delta*59/100),
		B: clampChannel(int(c.B) + delta*11/100),
		A: 255,
	}
}

// DepthShade darkens base according to how far away the wall is.
func DepthShade(base color.RGBA, distance, fog float64) color.RGBA {
	return CorrectLightness(base, min(0, -int(distance/fog)))
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(v, 255)))
}

// toRGBA converts any color to non-premultiplied 8-bit RGBA.
func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
