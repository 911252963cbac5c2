// core/merkle/merkle.go
// SHA3-256 Merkle tree over opaque string leaves. The ledger CLI uses it
// to fingerprint a whole chain with one root and to produce membership
// proofs for single records.
package merkle

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// hashLeaf and hashPair keep leaf and interior hashing in one place.
func hashLeaf(data string) string {
	sum := sha3.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func hashPair(left, right string) string {
	sum := sha3.Sum256([]byte(left + right))
	return hex.EncodeToString(sum[:])
}

// ProofStep is one sibling hash on the path from a leaf to the root.
type ProofStep struct {
	Hash string
	// Left is true when the sibling sits to the left of the running hash.
	Left bool
}

// Tree is an immutable Merkle tree. A level with an odd node count pairs
// the last node with itself.
type Tree struct {
	leafCount int
	levels    [][]string // levels[0] = hashed leaves, last = [root]
}

// New builds a tree over the given leaves. An empty leaf set yields a
// tree whose Root is the empty string.
func New(leaves []string) *Tree {
	t := &Tree{leafCount: len(leaves)}
	if len(leaves) == 0 {
		return t
	}

	level := make([]string, len(leaves))
	for i, l := range leaves {
		level[i] = hashLeaf(l)
	}
	t.levels = append(t.levels, level)

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, hashPair(level[i], level[i]))
			}
		}
		t.levels = append(t.levels, next)
		level = next
	}
	return t
}

// Root returns the root hash, or "" for an empty tree.
func (t *Tree) Root() string {
	if len(t.levels) == 0 {
		return ""
	}
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Len returns the number of leaves.
func (t *Tree) Len() int { return t.leafCount }

// Proof returns the sibling path for the leaf at index.
func (t *Tree) Proof(index int) ([]ProofStep, error) {
	if index < 0 || index >= t.leafCount {
		return nil, fmt.Errorf("merkle: leaf index %d out of range [0,%d)", index, t.leafCount)
	}

	var proof []ProofStep
	idx := index
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := idx ^ 1
		if sibling >= len(level) {
			// Odd tail: the node was paired with itself.
			sibling = idx
		}
		proof = append(proof, ProofStep{
			Hash: level[sibling],
			Left: idx%2 == 1,
		})
		idx /= 2
	}
	return proof, nil
}

// VerifyProof replays a proof from a raw leaf value and reports whether it
// reaches root.
func VerifyProof(leaf string, proof []ProofStep, root string) bool {
	h := hashLeaf(leaf)
	for _, step := range proof {
		if step.Left {
			h = hashPair(step.Hash, h)
		} else {
			h = hashPair(h, step.Hash)
		}
	}
	return h == root
}
