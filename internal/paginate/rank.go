// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paginate

import "math"

// EmphasisThreshold is the score an interaction must exceed to be emphasized.
const EmphasisThreshold = 0.7

// Tier is a display hint for an interaction. It never affects ordering or
// inclusion.
type Tier int

const (
	TierDefault Tier = iota
	TierEmphasized
)

func (t Tier) String() string {
	switch t {
	case TierEmphasized:
		return "emphasized"
	default:
		return "default"
	}
}

// Rank returns TierEmphasized when score is present, finite, and strictly
// greater than EmphasisThreshold.
func Rank(score *float64) Tier {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return TierDefault
	}
	if *score > EmphasisThreshold {
		return TierEmphasized
	}
	return TierDefault
}
