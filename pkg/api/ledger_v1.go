// pkg/api/ledger_v1.go
package api

// RecordV1 is the stable JSON schema for a single ledger record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Direction   string `json:"direction"` // "forward" | "backward"
	Payload     string `json:"payload"`
	CreatedAt   string `json:"created_at"` // RFC 3339, UTC
	Predecessor string `json:"predecessor"`
	Primary     string `json:"primary"`
	Mirror      string `json:"mirror"`
}

// StateV1 is the stable schema for a temporal-state query at one position.
type StateV1 struct {
	Position  int       `json:"position"`
	Forward   *RecordV1 `json:"forward,omitempty"`
	Backward  *RecordV1 `json:"backward,omitempty"`
	Symmetric bool      `json:"symmetric"`
}

// StatsV1 is the stable schema for aggregate ledger statistics.
// TemporalBalance is formatted as a decimal string; an empty backward
// chain yields the literal "+Inf", which plain JSON numbers cannot carry.
type StatsV1 struct {
	ForwardCount    int     `json:"forward_count"`
	BackwardCount   int     `json:"backward_count"`
	TotalCount      int     `json:"total_count"`
	SymmetryScore   float64 `json:"symmetry_score"`
	TemporalBalance string  `json:"temporal_balance"`
}

// ProofStepV1 is one sibling hash on a Merkle membership path.
type ProofStepV1 struct {
	Hash string `json:"hash"`
	Left bool   `json:"left,omitempty"`
}

// MerkleV1 is the stable schema for chain fingerprints and proofs.
type MerkleV1 struct {
	Direction string        `json:"direction"`
	Root      string        `json:"root"`
	Leaves    int           `json:"leaves"`
	LeafIndex int           `json:"leaf_index,omitempty"`
	Leaf      string        `json:"leaf,omitempty"`
	Proof     []ProofStepV1 `json:"proof,omitempty"`
}

// TierV1 is one rung of the mirrored reward schedule.
type TierV1 struct {
	Index      int     `json:"index"`
	Reward     int64   `json:"reward"`
	Penalty    int64   `json:"penalty"`
	Net        int64   `json:"net"`
	Zeckendorf []int64 `json:"zeckendorf"`
}

// GenesisV1 is the stable schema for the derived protocol parameters.
type GenesisV1 struct {
	Phi                 string   `json:"phi"`
	SlotDuration        int64    `json:"slot_duration"`
	EpochDuration       int64    `json:"epoch_duration"`
	MinValidatorStake   int64    `json:"min_validator_stake"`
	MaxValidatorCount   int64    `json:"max_validator_count"`
	TargetCommitteeSize int64    `json:"target_committee_size"`
	FinalityThreshold   int64    `json:"finality_threshold"`
	RewardTiers         []TierV1 `json:"reward_tiers,omitempty"`
}
