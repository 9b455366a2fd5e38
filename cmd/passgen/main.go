package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/passgen/internal/cli"
	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/config"
	"github.com/Veraticus/passgen/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
)

// Flags that switch passgen from interactive to batch mode.
var batchFlags = []string{"length", "count", "symbols", "numbers", "exclude-ambiguous", "no-letters", "save", "check", "preset"}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "🔑 Secure password generator and strength checker",
		Long: `passgen generates cryptographically secure random passwords and rates
the strength of existing ones.

Run without flags for an interactive session, or pass any generation flag
for batch mode:

  passgen -l 20 -s -n -c 5
  passgen --preset wifi --save ~/wifi.txt
  passgen --check 'Tr0ub4dor&3'`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runRoot,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/passgen/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Generation flags
	flags := cmd.Flags()
	flags.IntP("length", "l", model.DefaultLength, fmt.Sprintf("password length (%d-%d)", model.MinLength, model.MaxLength))
	flags.IntP("count", "c", 1, "number of passwords to generate")
	flags.BoolP("symbols", "s", false, "include punctuation symbols")
	flags.BoolP("numbers", "n", false, "include digits")
	flags.BoolP("exclude-ambiguous", "x", false, "exclude look-alike characters (i l 1 L o 0 O)")
	flags.Bool("no-letters", false, "leave letters out of the character pool")
	flags.String("save", "", "append generated passwords to this file")
	flags.String("check", "", "analyze a password instead of generating one (- reads it from stdin)")
	flags.String("preset", "", "use a named preset: "+strings.Join(config.PresetNames(), ", "))

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLength, flags.Lookup("length"))
	_ = viper.BindPFlag(config.KeyCount, flags.Lookup("count"))
	_ = viper.BindPFlag(config.KeySymbols, flags.Lookup("symbols"))
	_ = viper.BindPFlag(config.KeyNumbers, flags.Lookup("numbers"))
	_ = viper.BindPFlag(config.KeyExcludeAmbiguous, flags.Lookup("exclude-ambiguous"))
	_ = viper.BindPFlag(config.KeyNoLetters, flags.Lookup("no-letters"))

	return cmd
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes passgen and returns the process exit code. Interrupt
// signals are handled by interactive mode alone; batch mode never blocks.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, formatFatal(err))
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, _ []string) error {
	switch {
	case cmd.Flags().Changed("check"):
		return runCheck(cmd)
	case batchRequested(cmd):
		return runBatch(cmd)
	default:
		return runInteractive(cmd)
	}
}

func batchRequested(cmd *cobra.Command) bool {
	for _, name := range batchFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("PASSGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("configuration loaded", "file", viper.ConfigFileUsed())
	return nil
}

func formatFatal(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return cli.FormatError(userErr.UserMessage)
	}
	return cli.FormatError(err.Error())
}
