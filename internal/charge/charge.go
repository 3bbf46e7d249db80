// Package charge turns tier-split durations into monetary amounts.
package charge

import (
	"math"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/hexatel/callrater/internal/tariff"
)

// DefaultBlockSeconds is the standard billing block; 30- and 6-second
// blocks are supported as alternate configurations.
const DefaultBlockSeconds = 60

// Result is the computed charge for one call.
type Result struct {
	StandardSeconds int64
	ReducedSeconds  int64
	BilledSeconds   int64
	Total           float64
}

// Calculator rounds per-tier durations up to the billing block and prices
// them at the tier's per-minute rate.
type Calculator struct {
	blockSeconds int64
}

func NewCalculator(blockSeconds int) Calculator {
	if blockSeconds <= 0 {
		blockSeconds = DefaultBlockSeconds
	}
	return Calculator{blockSeconds: int64(blockSeconds)}
}

// RoundToBlock rounds a duration up to the next multiple of the billing
// block. Zero stays zero.
func (c Calculator) RoundToBlock(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	blocks := (seconds + c.blockSeconds - 1) / c.blockSeconds
	return blocks * c.blockSeconds
}

// Charge prices a tier split against a rate entry. Each tier is rounded
// independently, priced per minute, summed and rounded to two decimals.
func (c Calculator) Charge(split tariff.Split, rate ratesdomain.RateEntry) Result {
	billedStandard := c.RoundToBlock(split.StandardSeconds)
	billedReduced := c.RoundToBlock(split.ReducedSeconds)

	standardCharge := float64(billedStandard) / 60 * rate.StandardRate
	reducedCharge := float64(billedReduced) / 60 * rate.ReducedRate

	return Result{
		StandardSeconds: split.StandardSeconds,
		ReducedSeconds:  split.ReducedSeconds,
		BilledSeconds:   billedStandard + billedReduced,
		Total:           roundMoney(standardCharge + reducedCharge),
	}
}

// roundMoney rounds half away from zero to two decimal places, matching
// the rounding the reference rate values were designed against.
func roundMoney(raw float64) float64 {
	return math.Floor(raw*100+0.5) / 100
}
