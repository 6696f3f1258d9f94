package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loginCmd exchanges username and password for an access token
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain an access token with the configured username and password",
	Long: `Runs the OAuth password grant with AUPHONIC_USERNAME and AUPHONIC_PASSWORD
and prints the token. Store it as AUPHONIC_ACCESS_TOKEN to skip the exchange
on later calls.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account of the session user",
	Args:  cobra.NoArgs,
	RunE:  runAccount,
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the external services connected to the account",
	Args:  cobra.NoArgs,
	RunE:  runServices,
}

var serviceFilesCmd = &cobra.Command{
	Use:   "files [service-uuid]",
	Short: "List the files available on an incoming service",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceFiles,
}

func init() {
	servicesCmd.AddCommand(serviceFilesCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.HasUserCredentials() {
		return errNoUserCredentials
	}

	client, closeTranscript, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer closeTranscript()

	token, err := client.AuthenticateWithPassword(cmd.Context(), cfg.Username, cfg.Password)
	if err != nil {
		logger.Error("Login failed", zap.String("username", cfg.Username), zap.Error(err))
		return err
	}
	return render(cmd.OutOrStdout(), newTokenView(token))
}

func runAccount(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	account, err := client.GetAccountInfo(cmd.Context())
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), newAccountView(account))
}

func runServices(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	services, err := client.GetServices(cmd.Context())
	if err != nil {
		return err
	}
	views := make([]serviceView, 0, len(services))
	for _, s := range services {
		views = append(views, newServiceView(s))
	}
	return render(cmd.OutOrStdout(), views)
}

func runServiceFiles(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	files, err := client.GetServiceFiles(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), files)
}
