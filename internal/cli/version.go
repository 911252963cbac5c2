// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phichain/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "phichain", version.Version)
		},
	}
}
