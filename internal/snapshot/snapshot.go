// internal/snapshot/snapshot.go
// Binary snapshot of both chains. MessagePack on disk, with a version
// header so newer layouts are rejected instead of misread.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ugorji/go/codec"

	"phichain-core/digest"
	"phichain-core/ledger"
)

const currentVersion = 1

var mh codec.MsgpackHandle

// ErrNotFound reports an absent snapshot file, which callers treat as an
// empty ledger rather than a failure.
var ErrNotFound = errors.New("snapshot: not found")

type recordV1 struct {
	Payload     []byte `codec:"payload"`
	Direction   int    `codec:"direction"`
	CreatedAt   int64  `codec:"created_at"` // unix nanoseconds, UTC
	Predecessor string `codec:"predecessor"`
	Primary     string `codec:"primary"`
	Mirror      string `codec:"mirror"`
}

type fileV1 struct {
	Version   int        `codec:"version"`
	Precision int        `codec:"precision"`
	Forward   []recordV1 `codec:"forward"`
	Backward  []recordV1 `codec:"backward"`
}

func toWire(r ledger.Record) recordV1 {
	return recordV1{
		Payload:     r.Payload,
		Direction:   int(r.Direction),
		CreatedAt:   r.CreatedAt.UTC().UnixNano(),
		Predecessor: string(r.Predecessor),
		Primary:     string(r.Primary),
		Mirror:      string(r.Mirror),
	}
}

func fromWire(r recordV1) ledger.Record {
	return ledger.Record{
		Payload:     r.Payload,
		Direction:   ledger.Direction(r.Direction),
		CreatedAt:   time.Unix(0, r.CreatedAt).UTC(),
		Predecessor: digest.Digest(r.Predecessor),
		Primary:     digest.Digest(r.Primary),
		Mirror:      digest.Digest(r.Mirror),
	}
}

// Save writes the ledger to path. The write goes through a temp file in
// the same directory and a rename, so a crash never leaves a torn file.
func Save(path string, l *ledger.TemporalLedger) error {
	fwd, bwd := l.Chains()
	f := fileV1{
		Version:   currentVersion,
		Precision: l.Engine().Precision(),
		Forward:   make([]recordV1, 0, len(fwd)),
		Backward:  make([]recordV1, 0, len(bwd)),
	}
	for _, r := range fwd {
		f.Forward = append(f.Forward, toWire(r))
	}
	for _, r := range bwd {
		f.Backward = append(f.Backward, toWire(r))
	}

	var buf []byte
	if err := codec.NewEncoderBytes(&buf, &mh).Encode(f); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot and rebuilds the ledger, re-verifying chain
// linkage and digests. A missing file yields ErrNotFound.
func Load(path string) (*ledger.TemporalLedger, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	var f fileV1
	if err := codec.NewDecoderBytes(raw, &mh).Decode(&f); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if f.Version > currentVersion {
		return nil, fmt.Errorf("snapshot: version %d is newer than supported %d", f.Version, currentVersion)
	}

	eng, err := digest.New(f.Precision)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	fwd := make([]ledger.Record, 0, len(f.Forward))
	for _, r := range f.Forward {
		fwd = append(fwd, fromWire(r))
	}
	bwd := make([]ledger.Record, 0, len(f.Backward))
	for _, r := range f.Backward {
		bwd = append(bwd, fromWire(r))
	}

	l, err := ledger.Load(eng, fwd, bwd)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return l, nil
}

// LoadOrNew loads path, or returns a fresh ledger at the given precision
// when no snapshot exists yet.
func LoadOrNew(path string, precision int) (*ledger.TemporalLedger, error) {
	l, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		eng, err := digest.New(precision)
		if err != nil {
			return nil, err
		}
		return ledger.New(eng), nil
	}
	return l, err
}
