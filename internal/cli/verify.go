// internal/cli/verify.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/eclbuild/pkg/env"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the ECLiPSe installation is usable",
	Long: `Resolve the build configuration, then check that the derived include
and library directories exist and that every library to link is present.

resolve and flags never perform these checks; missing directories are
otherwise only reported by the compiler or linker.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, setup, err := resolve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	environment := env.New(setup.Root, setup.ArchTag)
	failed := 0

	for _, d := range setup.Extensions {
		problems, err := environment.Verify(ctx, d.Libraries()...)
		if err != nil {
			return fmt.Errorf("verifying %s: %w", d.Name(), err)
		}

		if len(problems) == 0 {
			fmt.Fprintf(out, "✓ %s\n", d.Name())
			continue
		}

		failed++
		fmt.Fprintf(out, "✗ %s\n", d.Name())
		for _, p := range problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extensions cannot be built against %s", failed, len(setup.Extensions), setup.Root)
	}

	return nil
}
