// internal/cli/merkle.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phichain-core/ledger"
	"phichain-core/merkle"
	"phichain/internal/jsonutil"
	"phichain/internal/output"
)

func (c *cli) newMerkleCmd() *cobra.Command {
	var (
		dirName string
		prove   int
	)

	cmd := &cobra.Command{
		Use:   "merkle",
		Short: "Fingerprint a chain with a Merkle root, optionally with a proof",
		Long: "Merkle builds a SHA3-256 tree over the primary digests of one chain\n" +
			"and prints its root. With --prove N it also emits the membership\n" +
			"proof for the record at index N; VerifyProof replays it offline.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validateOutput(); err != nil {
				return err
			}
			dir, err := ledger.ParseDirection(dirName)
			if err != nil {
				return usageError{err}
			}

			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			fwd, bwd := l.Chains()
			chain := fwd
			if dir == ledger.Backward {
				chain = bwd
			}

			leaves := make([]string, 0, len(chain))
			for _, r := range chain {
				leaves = append(leaves, string(r.Primary))
			}
			tree := merkle.New(leaves)

			var (
				proof []merkle.ProofStep
				leaf  string
			)
			if prove >= 0 {
				proof, err = tree.Proof(prove)
				if err != nil {
					return usageError{err}
				}
				leaf = leaves[prove]
			}

			w := cmd.OutOrStdout()
			switch c.cfg.Output {
			case "json":
				return jsonutil.EncodePretty(w, output.ToAPIMerkle(dir, tree, prove, leaf, proof))
			case "jsonl":
				return jsonutil.EncodeLine(w, output.ToAPIMerkle(dir, tree, prove, leaf, proof))
			default:
				fmt.Fprintf(w, "%s\t%d\t%s\n", dir, tree.Len(), tree.Root())
				for _, s := range proof {
					side := "right"
					if s.Left {
						side = "left"
					}
					fmt.Fprintf(w, "proof\t%s\t%s\n", side, s.Hash)
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&dirName, "direction", "d", "forward", "chain to fingerprint: forward|backward")
	cmd.Flags().IntVar(&prove, "prove", -1, "emit a membership proof for the record at this index")
	return cmd
}
