package layout

import (
	"math"
	"regexp"
	"strconv"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidHexColor reports whether s is a "#RRGGBB" color.
func IsValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Luminance returns the relative luminance of a "#RRGGBB" color per the
// WCAG formula. The input must be a valid hex color.
func Luminance(hex string) float64 {
	r := channelLuminance(hex[1:3])
	g := channelLuminance(hex[3:5])
	b := channelLuminance(hex[5:7])
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func channelLuminance(hexByte string) float64 {
	v, _ := strconv.ParseUint(hexByte, 16, 8)
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastingTextColor picks black or white text for the given background
// color. Invalid colors get black, matching the default text color of the
// grid.
func ContrastingTextColor(hex string) string {
	if !IsValidHexColor(hex) {
		return "#000000"
	}
	if Luminance(hex) > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
