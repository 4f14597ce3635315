package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/snoolib/modcmd/internal/di"
	"github.com/snoolib/modcmd/pkg/command"
	"github.com/snoolib/modcmd/pkg/config"
	"github.com/snoolib/modcmd/pkg/loader"
	"github.com/snoolib/modcmd/pkg/logging"
	"github.com/snoolib/modcmd/pkg/messages"
)

var (
	// Global flags
	commandsDir string
	verbose     bool
	quiet       bool

	// Interpreter instance - initialized once and reused
	interp  *di.Interpreter
	catalog *messages.Catalog
	log     logging.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "modcmd",
	Short:   "modcmd chat command interpreter",
	Long:    `modcmd parses chat-style command lines ("ban u/someuser 1 week spamming") against a registry of command definitions and dispatches them.`,
	Version: "dev",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env next to the binary is a convenience, not a requirement.
		_ = godotenv.Load()

		log = newRootLogger()
		catalog = messages.Default()
		interp = di.InjectInterpreter()

		cfg := config.NewManager()
		ld := loader.New(interp.Registry, builtinHandlers(cmd.OutOrStdout()),
			loader.WithLogger(log),
			loader.WithFallbackHandler(dumpHandler(cmd.OutOrStdout())),
		)
		if commandsDir == "" {
			commandsDir = cfg.GetStringWithDefault("MODCMD_COMMANDS_DIR", "")
		}
		if commandsDir != "" {
			return ld.LoadDir(commandsDir)
		}
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		return ld.Discover(cwd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: drop into the REPL.
		return runREPL(cmd)
	},
}

func newRootLogger() logging.Logger {
	var level slog.Level
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	format := logging.FormatText
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		format = logging.FormatJSON
	}
	return logging.NewLogger(logging.Config{
		Level:   level,
		Format:  format,
		Output:  os.Stderr,
		AddTime: false,
	})
}

// newContext builds the parse context the CLI hands to every Parse call.
func newContext(send func(string)) *command.Context {
	return &command.Context{
		Localize: catalog.Localize,
		Send:     send,
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&commandsDir, "commands-dir", "", "directory of command definition files (default: .modcmd/commands)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	RootCmd.AddCommand(newRunCommand())
	RootCmd.AddCommand(newReplCommand())
	RootCmd.AddCommand(newListCommand())
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
