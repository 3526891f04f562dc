// internal/cli/platform.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/eclbuild/pkg/platform"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the platform and its ECLiPSe architecture tag",
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

func runPlatform(cmd *cobra.Command, args []string) error {
	plat := platform.Detect()
	system := plat.System
	if config.Platform != "" {
		system = config.Platform
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s/%s\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "System: %s\n", system)

	arch, err := platform.ArchTag(system)
	if err != nil {
		fmt.Fprintf(out, "Supported systems: %v\n", platform.Supported())
		return err
	}

	fmt.Fprintf(out, "Arch: %s\n", arch)
	return nil
}
