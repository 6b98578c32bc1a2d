// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recency holds the recency multiplier shared by collaboration
// strength and flow weights, so both call sites use the same bands.
package recency

import "time"

// RecentWindow is the age in years up to which a publication counts as recent.
const RecentWindow = 5

// Weight returns the recency multiplier for a publication year relative to
// asOfYear: 1.5 up to one year old, 1.2 up to three, 1.0 up to five, 0.8 older.
// Future years weigh as the newest band.
func Weight(year, asOfYear int) float64 {
	age := asOfYear - year
	switch {
	case age <= 1:
		return 1.5
	case age <= 3:
		return 1.2
	case age <= 5:
		return 1.0
	default:
		return 0.8
	}
}

// IsRecent reports whether year falls within RecentWindow of asOfYear.
func IsRecent(year, asOfYear int) bool {
	return asOfYear-year <= RecentWindow
}

// Resolve returns asOfYear, or the current calendar year when it is zero.
func Resolve(asOfYear int) int {
	if asOfYear > 0 {
		return asOfYear
	}
	return time.Now().Year()
}
