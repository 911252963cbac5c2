// core/genesis/genesis.go
// Protocol constants derived from the Fibonacci sequence rather than
// arbitrary convention, plus the mirrored reward/penalty tier table.
package genesis

import (
	"github.com/shopspring/decimal"

	"phichain-core/phimath"
)

// Parameters are the Fibonacci-derived protocol constants.
type Parameters struct {
	Phi decimal.Decimal

	SlotDuration        int64 // F(6) = 8 seconds
	EpochDuration       int64 // F(18) = 2584 slots
	MinValidatorStake   int64 // F(20) = 6765
	MaxValidatorCount   int64 // F(17) = 1597
	TargetCommitteeSize int64 // F(14) = 377
	FinalityThreshold   int64 // F(15) = 610
}

// DefaultParameters derives the parameter set at the default Phi precision.
func DefaultParameters() Parameters {
	return Parameters{
		Phi:                 phimath.Phi(phimath.DefaultPrecision),
		SlotDuration:        phimath.Fibonacci(6).Int64(),
		EpochDuration:       phimath.Fibonacci(18).Int64(),
		MinValidatorStake:   phimath.Fibonacci(20).Int64(),
		MaxValidatorCount:   phimath.Fibonacci(17).Int64(),
		TargetCommitteeSize: phimath.Fibonacci(14).Int64(),
		FinalityThreshold:   phimath.Fibonacci(15).Int64(),
	}
}

// Tier is one rung of the mirrored incentive schedule: good behavior at
// tier n earns F(n), equivocation at the same tier costs F(-n). For even
// n the pair nets to zero exactly.
type Tier struct {
	Index      int
	Reward     int64
	Penalty    int64
	Net        int64
	Zeckendorf []int64 // Zeckendorf encoding of the reward
}

// RewardTiers builds the first n tiers of the schedule.
func RewardTiers(n int) []Tier {
	tiers := make([]Tier, 0, n)
	for i := 1; i <= n; i++ {
		reward := phimath.Fibonacci(i).Int64()
		penalty := phimath.Fibonacci(-i).Int64()
		tiers = append(tiers, Tier{
			Index:      i,
			Reward:     reward,
			Penalty:    penalty,
			Net:        reward + penalty,
			Zeckendorf: phimath.Zeckendorf(reward),
		})
	}
	return tiers
}
