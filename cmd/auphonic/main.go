package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akordowski/auphonic-go/pkg/auphonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose        bool
	configPath     string
	outputFormat   string
	transcriptPath string

	logger *zap.Logger

	// httpClient replaces the default transport when set
	httpClient *http.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "auphonic",
	Short: "Command line client for the Auphonic audio post-production API",
	Long: `auphonic talks to the Auphonic API with the credentials from the
environment (AUPHONIC_CLIENT_ID, AUPHONIC_CLIENT_SECRET, AUPHONIC_ACCESS_TOKEN
or AUPHONIC_USERNAME/AUPHONIC_PASSWORD), an optional .env file, or the TOML
file given with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case "json", "yaml":
		default:
			return fmt.Errorf("unsupported output format %q (want json or yaml)", outputFormat)
		}

		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "Output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&transcriptPath, "transcript", "", "Append a request/response transcript to this file")

	rootCmd.AddCommand(loginCmd, accountCmd, infoCmd, servicesCmd, presetsCmd, productionsCmd)
}

// exitCode maps an error category to the process exit status.
func exitCode(err error) int {
	switch auphonic.Classify(err) {
	case auphonic.KindArgument:
		return 2
	case auphonic.KindAuthentication:
		return 3
	case auphonic.KindAPI:
		return 4
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitCode(err))
	}
}
