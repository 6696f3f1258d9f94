package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/akordowski/auphonic-go/pkg/auphonic"
	"github.com/spf13/cobra"
)

var (
	productionsLimit  int
	productionsOffset int

	waitInterval time.Duration
	waitTimeout  time.Duration
)

var productionsCmd = &cobra.Command{
	Use:   "productions",
	Short: "Manage productions",
}

var productionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List productions",
	Args:  cobra.NoArgs,
	RunE:  runProductionsList,
}

var productionsGetCmd = &cobra.Command{
	Use:   "get [production-uuid]",
	Short: "Show a production",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionsGet,
}

var productionsStartCmd = &cobra.Command{
	Use:   "start [production-uuid]",
	Short: "Start audio processing",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionsStart,
}

var productionsStopCmd = &cobra.Command{
	Use:   "stop [production-uuid]",
	Short: "Stop audio processing",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionsStop,
}

var productionsDeleteCmd = &cobra.Command{
	Use:   "delete [production-uuid]",
	Short: "Delete a production and all its files",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionsDelete,
}

var productionsUploadCmd = &cobra.Command{
	Use:   "upload [production-uuid] [file]",
	Short: "Upload the input audio file of a production",
	Args:  cobra.ExactArgs(2),
	RunE:  runProductionsUpload,
}

// productionsWaitCmd polls until the production is done or has failed
var productionsWaitCmd = &cobra.Command{
	Use:   "wait [production-uuid]",
	Short: "Wait until a production is done",
	Long: `Polls the production with exponential backoff until it is done or has
failed. Exits with a non-zero status when the production failed or the
timeout passed.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductionsWait,
}

func init() {
	productionsListCmd.Flags().IntVar(&productionsLimit, "limit", 0, "Maximum number of productions (0 = server default)")
	productionsListCmd.Flags().IntVar(&productionsOffset, "offset", 0, "Number of productions to skip")

	productionsWaitCmd.Flags().DurationVar(&waitInterval, "interval", 5*time.Second, "First delay between polls")
	productionsWaitCmd.Flags().DurationVar(&waitTimeout, "timeout", 0, "Give up after this long (0 = no limit)")

	productionsCmd.AddCommand(
		productionsListCmd,
		productionsGetCmd,
		productionsStartCmd,
		productionsStopCmd,
		productionsDeleteCmd,
		productionsUploadCmd,
		productionsWaitCmd,
	)
}

func runProductionsList(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	productions, err := client.GetProductions(cmd.Context(), productionsLimit, productionsOffset)
	if err != nil {
		return err
	}
	views := make([]productionView, 0, len(productions))
	for i := range productions {
		views = append(views, newProductionView(&productions[i]))
	}
	return render(cmd.OutOrStdout(), views)
}

func runProductionsGet(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	production, err := client.GetProduction(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), newProductionView(production))
}

func runProductionsStart(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	production, err := client.StartProduction(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), newProductionView(production))
}

func runProductionsStop(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	if err := client.StopProduction(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stopped production %s\n", args[0])
	return nil
}

func runProductionsDelete(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	if err := client.DeleteProduction(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted production %s\n", args[0])
	return nil
}

func runProductionsUpload(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	production, err := client.UploadProductionFile(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), newProductionView(production))
}

func runProductionsWait(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	production, err := client.WaitForProduction(cmd.Context(), args[0], auphonic.WaitOptions{
		Interval: waitInterval,
		Timeout:  waitTimeout,
	})
	if production != nil {
		if renderErr := render(cmd.OutOrStdout(), newProductionView(production)); renderErr != nil {
			return errors.Join(err, renderErr)
		}
	}
	return err
}
