// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/eclbuild"
	"github.com/arc-language/eclbuild/internal/ctxlog"
	"github.com/arc-language/eclbuild/pkg/core"
)

var (
	cfgFile        string
	eclipseDir     string
	platformName   string
	envFile        string
	nonInteractive bool
	maxAttempts    int
	debug          bool
	config         *core.Config
	configErr      error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eclbuild",
	Short: "ECLiPSe build configuration resolver",
	Long: `eclbuild - ECLiPSe build configuration resolver

Locates an ECLiPSe installation, maps the platform to its architecture tag
and emits the include/library configuration needed to compile extensions
against the ECLiPSe native library.

The installation is taken from --eclipse-dir, the config file, the
ECLIPSEDIR environment variable, or asked for interactively.`,
	Version:       "0.2.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/eclbuild/config.yaml)")
	flags.StringVar(&eclipseDir, "eclipse-dir", "", "ECLiPSe installation root (overrides ECLIPSEDIR)")
	flags.StringVar(&platformName, "platform", "", "platform identifier (Linux, Windows); auto-detected when empty")
	flags.StringVar(&envFile, "env-file", "", "dotenv file consulted for ECLIPSEDIR")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "fail instead of prompting when ECLIPSEDIR is not defined")
	flags.IntVar(&maxAttempts, "max-attempts", 0, "maximum prompt attempts (0 = unlimited)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	config, configErr = core.LoadConfig(cfgFile)
	if configErr != nil {
		configErr = fmt.Errorf("loading config: %w", configErr)
		config = core.DefaultConfig()
	}

	// Override config with flags
	flags := rootCmd.PersistentFlags()
	if flags.Changed("eclipse-dir") {
		config.EclipseDir = eclipseDir
	}
	if flags.Changed("platform") {
		config.Platform = platformName
	}
	if flags.Changed("env-file") {
		config.EnvFile = envFile
	}
	if nonInteractive {
		config.NonInteractive = true
	}
	if flags.Changed("max-attempts") {
		config.MaxAttempts = maxAttempts
	}
	if debug {
		config.Debug = true
	}
	if configErr == nil {
		configErr = config.Validate()
	}
}

// commandContext returns the command context carrying the logger
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxlog.WithLogger(ctx, ctxlog.New(cmd.ErrOrStderr(), config.Debug))
}

// newResolver builds a resolver that prompts on stderr so stdout only
// carries command output
func newResolver(cmd *cobra.Command) (*eclbuild.Resolver, error) {
	lookup, err := core.EnvLookup(config.EnvFile)
	if err != nil {
		return nil, err
	}

	return eclbuild.NewResolver(config,
		eclbuild.WithLookup(lookup),
		eclbuild.WithPrompt(cmd.InOrStdin(), cmd.ErrOrStderr()),
	), nil
}

// resolve runs a full resolution for a command
func resolve(cmd *cobra.Command) (context.Context, *eclbuild.Setup, error) {
	ctx := commandContext(cmd)

	r, err := newResolver(cmd)
	if err != nil {
		return ctx, nil, err
	}

	setup, err := r.Resolve(ctx)
	return ctx, setup, err
}
