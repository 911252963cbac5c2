// internal/output/json.go
package output

import (
	"io"

	"phichain-core/genesis"
	"phichain-core/ledger"
	"phichain/internal/jsonutil"
)

// WriteRecordJSON writes a single JSON array of v1 records (pretty-indented).
func WriteRecordJSON(w io.Writer, list []ledger.Record) error {
	return jsonutil.EncodePretty(w, toAPIRecords(list))
}

// WriteStateJSON writes one temporal-state result.
func WriteStateJSON(w io.Writer, s ledger.TemporalState) error {
	return jsonutil.EncodePretty(w, ToAPIState(s))
}

// WriteStatsJSON writes the aggregate statistics object.
func WriteStatsJSON(w io.Writer, s ledger.Stats) error {
	return jsonutil.EncodePretty(w, ToAPIStats(s))
}

// WriteGenesisJSON writes the derived protocol parameters.
func WriteGenesisJSON(w io.Writer, p genesis.Parameters, tiers []genesis.Tier) error {
	return jsonutil.EncodePretty(w, ToAPIGenesis(p, tiers))
}
