package models

import "math"

// Amounts are held in paise (minor units) so balance arithmetic stays exact.
// Rupee values only appear on the JSON boundary.

// ToPaise converts a rupee amount to paise, rounding to the nearest paisa.
func ToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

// ToRupees converts a paise amount to rupees.
func ToRupees(paise int64) float64 {
	return float64(paise) / 100
}
