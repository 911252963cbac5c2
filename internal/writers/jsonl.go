// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"phichain-core/ledger"
	"phichain/internal/jsonlutil"
	"phichain/internal/output"
)

// StartRecordJSONLWriter streams each record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- ledger.Record, <-chan error) {
	return jsonlutil.Start[ledger.Record](out, bufSize,
		func(enc *json.Encoder, r ledger.Record) error {
			return enc.Encode(output.ToAPIRecord(r))
		},
		IsBrokenPipe,
	)
}
