package elayout

import "golang.org/x/image/math/fixed"

// --- misc helpers ---

// Font measuring speaks 26.6 fixed point; layout speaks float64.
func fixedToFloat(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}
