package genesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()

	assert.Equal(t, int64(8), p.SlotDuration)
	assert.Equal(t, int64(2584), p.EpochDuration)
	assert.Equal(t, int64(6765), p.MinValidatorStake)
	assert.Equal(t, int64(1597), p.MaxValidatorCount)
	assert.Equal(t, int64(377), p.TargetCommitteeSize)
	assert.Equal(t, int64(610), p.FinalityThreshold)

	assert.Equal(t, "1.6180339887", p.Phi.Truncate(10).String())
}

func TestFinalityBelowCommitteeSupermajority(t *testing.T) {
	// F(15)/F(14) converges on phi, so the threshold clears 3/5 of the
	// committee but never reaches it whole.
	p := DefaultParameters()
	assert.Greater(t, p.FinalityThreshold*5, p.TargetCommitteeSize*3)
	assert.Less(t, p.FinalityThreshold, p.TargetCommitteeSize*2)
}

func TestRewardTiersValues(t *testing.T) {
	tiers := RewardTiers(8)
	require.Len(t, tiers, 8)

	rewards := []int64{1, 1, 2, 3, 5, 8, 13, 21}
	for i, tier := range tiers {
		assert.Equal(t, i+1, tier.Index)
		assert.Equal(t, rewards[i], tier.Reward)
		assert.Equal(t, tier.Reward+tier.Penalty, tier.Net)
	}
}

func TestRewardTiersMirrorLaw(t *testing.T) {
	// F(-n) = (-1)^(n+1) F(n): even tiers cancel exactly, odd tiers pay
	// double because reward and penalty share a sign.
	for _, tier := range RewardTiers(12) {
		if tier.Index%2 == 0 {
			assert.Zerof(t, tier.Net, "tier %d", tier.Index)
			assert.Equal(t, -tier.Reward, tier.Penalty)
		} else {
			assert.Equalf(t, 2*tier.Reward, tier.Net, "tier %d", tier.Index)
			assert.Equal(t, tier.Reward, tier.Penalty)
		}
	}
}

func TestRewardTiersZeckendorf(t *testing.T) {
	for _, tier := range RewardTiers(10) {
		var sum int64
		for _, term := range tier.Zeckendorf {
			sum += term
		}
		assert.Equalf(t, tier.Reward, sum, "tier %d encoding", tier.Index)
	}

	// A Fibonacci reward encodes as itself.
	tiers := RewardTiers(7)
	assert.Equal(t, []int64{13}, tiers[6].Zeckendorf)
}

func TestRewardTiersEmpty(t *testing.T) {
	assert.Empty(t, RewardTiers(0))
}
