// Package writers turns ledger records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, pretty blocks, JSON/JSONL).
//   - The ledger core stays domain-only; the CLI stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
