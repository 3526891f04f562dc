// internal/cli/resolve.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/eclbuild/pkg/descriptor"
)

var resolveFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build configuration",
	Long: `Resolve the ECLiPSe installation and print the build configuration:
package metadata plus, for every extension, its sources, include
directories, library directories and libraries.

Examples:
  eclbuild resolve
  eclbuild resolve --format json
  ECLIPSEDIR=/opt/eclipse eclbuild resolve --non-interactive`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", descriptor.FormatYAML, "output format (yaml, json)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	_, setup, err := resolve(cmd)
	if err != nil {
		return err
	}

	return descriptor.Encode(cmd.OutOrStdout(), resolveFormat, setup)
}
