package room

import (
	"math"
	"strconv"
)

// hexToHue extracts the HSL hue (0-360) from a "#rrggbb" color. The second
// return is false for anything that does not parse as such.
func hexToHue(hex string) (float64, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, false
	}
	parse := func(s string) (float64, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v) / 255, true
	}
	r, okR := parse(hex[1:3])
	g, okG := parse(hex[3:5])
	b, okB := parse(hex[5:7])
	if !okR || !okG || !okB {
		return 0, false
	}

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	if max == min {
		return 0, true // achromatic
	}

	d := max - min
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, true
}

// hueDistinct reports whether two hues are far enough apart on the color
// wheel for the two players' tiles to stay tellable apart.
func hueDistinct(a, b, threshold float64) bool {
	diff := math.Abs(a - b)
	return diff > threshold && diff < 360-threshold
}
