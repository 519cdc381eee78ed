package flows

import "fmt"

// formatRand renders an amount of ZAR cents as the screens show it, e.g.
// 42000 -> "R 420.00", -5000 -> "-R 50.00".
func formatRand(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR %d.%02d", sign, cents/100, cents%100)
}
