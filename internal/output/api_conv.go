// internal/output/api_conv.go
package output

import (
	"fmt"
	"math"
	"time"

	"phichain-core/genesis"
	"phichain-core/ledger"
	"phichain-core/merkle"
	"phichain/pkg/api"
)

// ToAPIRecord converts a domain Record to the stable wire schema (v1).
func ToAPIRecord(r ledger.Record) api.RecordV1 {
	return api.RecordV1{
		Direction:   r.Direction.String(),
		Payload:     string(r.Payload),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		Predecessor: string(r.Predecessor),
		Primary:     string(r.Primary),
		Mirror:      string(r.Mirror),
	}
}

func toAPIRecords(list []ledger.Record) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// ToAPIState converts a temporal-state query result.
func ToAPIState(s ledger.TemporalState) api.StateV1 {
	v := api.StateV1{
		Position:  s.Position,
		Symmetric: s.Symmetric,
	}
	if s.Forward != nil {
		r := ToAPIRecord(*s.Forward)
		v.Forward = &r
	}
	if s.Backward != nil {
		r := ToAPIRecord(*s.Backward)
		v.Backward = &r
	}
	return v
}

// ToAPIStats converts aggregate statistics. TemporalBalance becomes a
// string because +Inf has no JSON number representation.
func ToAPIStats(s ledger.Stats) api.StatsV1 {
	return api.StatsV1{
		ForwardCount:    s.ForwardCount,
		BackwardCount:   s.BackwardCount,
		TotalCount:      s.TotalCount,
		SymmetryScore:   s.SymmetryScore,
		TemporalBalance: FormatBalance(s.TemporalBalance),
	}
}

// FormatBalance renders the temporal balance for both text and JSON
// surfaces: six decimals, or the literal "+Inf" sentinel.
func FormatBalance(b float64) string {
	if math.IsInf(b, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%.6f", b)
}

// ToAPIMerkle packages a chain fingerprint, optionally with a proof.
func ToAPIMerkle(dir ledger.Direction, t *merkle.Tree, leafIndex int, leaf string, proof []merkle.ProofStep) api.MerkleV1 {
	v := api.MerkleV1{
		Direction: dir.String(),
		Root:      t.Root(),
		Leaves:    t.Len(),
	}
	if proof != nil {
		v.LeafIndex = leafIndex
		v.Leaf = leaf
		v.Proof = make([]api.ProofStepV1, 0, len(proof))
		for _, s := range proof {
			v.Proof = append(v.Proof, api.ProofStepV1{Hash: s.Hash, Left: s.Left})
		}
	}
	return v
}

// ToAPIGenesis converts the derived protocol parameters with n reward tiers.
func ToAPIGenesis(p genesis.Parameters, tiers []genesis.Tier) api.GenesisV1 {
	v := api.GenesisV1{
		Phi:                 p.Phi.String(),
		SlotDuration:        p.SlotDuration,
		EpochDuration:       p.EpochDuration,
		MinValidatorStake:   p.MinValidatorStake,
		MaxValidatorCount:   p.MaxValidatorCount,
		TargetCommitteeSize: p.TargetCommitteeSize,
		FinalityThreshold:   p.FinalityThreshold,
	}
	for _, t := range tiers {
		v.RewardTiers = append(v.RewardTiers, api.TierV1{
			Index:      t.Index,
			Reward:     t.Reward,
			Penalty:    t.Penalty,
			Net:        t.Net,
			Zeckendorf: append([]int64(nil), t.Zeckendorf...),
		})
	}
	return v
}
