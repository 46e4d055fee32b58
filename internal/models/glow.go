package models

import (
	"math"
)

// WarmWhiteMirek is the colour temperature of a room's lamps (~2700K).
// Mirek = 1,000,000 / Kelvin
const WarmWhiteMirek = 370

// Glow is the colour a room casts at a given intensity
type Glow struct {
	// ColorTemp in Mirek (153 = cool/blue, 500 = warm/orange)
	Mirek uint16
	// Intensity on the room scale (0-10)
	Intensity int
}

// GlowFor returns the glow of a room
func GlowFor(r *Room) Glow {
	return Glow{Mirek: WarmWhiteMirek, Intensity: r.LightIntensity}
}

// RGB returns the glow as RGB values (0-255 each), dimmed by intensity
func (g Glow) RGB() (r, gr, b uint8) {
	if g.Mirek == 0 {
		g.Mirek = WarmWhiteMirek
	}

	// Convert Mirek to Kelvin: K = 1,000,000 / Mirek
	kelvin := 1000000.0 / float64(g.Mirek)

	// Algorithm based on Tanner Helland's work
	// http://www.tannerhelland.com/4435/convert-temperature-rgb-algorithm-code/
	temp := kelvin / 100.0

	var rf, gf, bf float64

	// Red
	if temp <= 66 {
		rf = 255
	} else {
		rf = 329.698727446 * math.Pow(temp-60, -0.1332047592)
		rf = clampFloat(rf, 0, 255)
	}

	// Green
	if temp <= 66 {
		gf = 99.4708025861*math.Log(temp) - 161.1195681661
	} else {
		gf = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
	}
	gf = clampFloat(gf, 0, 255)

	// Blue
	if temp >= 66 {
		bf = 255
	} else if temp <= 19 {
		bf = 0
	} else {
		bf = 138.5177312231*math.Log(temp-10) - 305.0447927307
		bf = clampFloat(bf, 0, 255)
	}

	// Same scale the browser used: brightness(intensity / 10)
	brightness := float64(clampIntensity(g.Intensity)) / MaxIntensity
	rf *= brightness
	gf *= brightness
	bf *= brightness

	return uint8(rf), uint8(gf), uint8(bf)
}

// HexString returns the glow as a hex string (e.g., "#FFA757")
func (g Glow) HexString() string {
	r, gr, b := g.RGB()
	return "#" + hexByte(r) + hexByte(gr) + hexByte(b)
}

// clampFloat clamps a float64 to a range
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func hexByte(b uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}
