// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "eclbuild version %s\n", rootCmd.Version)
		fmt.Fprintln(out, "ECLiPSe build configuration resolver")
		fmt.Fprintln(out, "https://github.com/arc-language/eclbuild")
	},
}
