// internal/cli/genesis.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phichain-core/genesis"
	"phichain/internal/jsonutil"
	"phichain/internal/output"
)

func (c *cli) newGenesisCmd() *cobra.Command {
	var tiers int

	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Show the Fibonacci-derived protocol parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validateOutput(); err != nil {
				return err
			}
			p := genesis.DefaultParameters()
			tt := genesis.RewardTiers(tiers)

			w := cmd.OutOrStdout()
			switch c.cfg.Output {
			case "json":
				return output.WriteGenesisJSON(w, p, tt)
			case "jsonl":
				return jsonutil.EncodeLine(w, output.ToAPIGenesis(p, tt))
			default:
				fmt.Fprintf(w, "phi\t%s\n", p.Phi.Truncate(12))
				fmt.Fprintf(w, "slot_duration\t%d\n", p.SlotDuration)
				fmt.Fprintf(w, "epoch_duration\t%d\n", p.EpochDuration)
				fmt.Fprintf(w, "min_validator_stake\t%d\n", p.MinValidatorStake)
				fmt.Fprintf(w, "max_validator_count\t%d\n", p.MaxValidatorCount)
				fmt.Fprintf(w, "target_committee_size\t%d\n", p.TargetCommitteeSize)
				fmt.Fprintf(w, "finality_threshold\t%d\n", p.FinalityThreshold)
				for _, t := range tt {
					fmt.Fprintf(w, "tier\t%d\treward=%d\tpenalty=%d\tnet=%d\n",
						t.Index, t.Reward, t.Penalty, t.Net)
				}
				return nil
			}
		},
	}
	cmd.Flags().IntVar(&tiers, "tiers", 0, "include the first N reward tiers")
	return cmd
}
