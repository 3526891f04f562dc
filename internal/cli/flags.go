// internal/cli/flags.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagsCgo bool

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print compiler and linker flags",
	Long: `Print the compiler and linker flags for each configured extension.

With --cgo the flags are printed as CGO_CFLAGS/CGO_LDFLAGS assignments:
  eval "$(eclbuild flags --cgo)"`,
	Args: cobra.NoArgs,
	RunE: runFlags,
}

func init() {
	flagsCmd.Flags().BoolVar(&flagsCgo, "cgo", false, "print cgo environment assignments")
}

func runFlags(cmd *cobra.Command, args []string) error {
	_, setup, err := resolve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range setup.Extensions {
		if flagsCgo {
			for _, kv := range d.CgoEnv() {
				fmt.Fprintf(out, "export %s\n", shellQuote(kv))
			}
			continue
		}

		flags := d.CompilerFlags()
		if len(setup.Extensions) > 1 {
			fmt.Fprintf(out, "# %s\n", d.Name())
		}
		fmt.Fprintf(out, "CFLAGS: %s\n", flags.CFlags())
		fmt.Fprintf(out, "LDFLAGS: %s\n", flags.LDFlags())
	}

	return nil
}

// shellQuote quotes the value of a KEY=value assignment for sh
func shellQuote(kv string) string {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return kv
	}
	return key + "='" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
