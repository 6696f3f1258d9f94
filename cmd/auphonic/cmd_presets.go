package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	presetsLimit  int
	presetsOffset int
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsGetCmd = &cobra.Command{
	Use:   "get [preset-uuid]",
	Short: "Show a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsGet,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete [preset-uuid]",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsDelete,
}

func init() {
	presetsListCmd.Flags().IntVar(&presetsLimit, "limit", 0, "Maximum number of presets (0 = server default)")
	presetsListCmd.Flags().IntVar(&presetsOffset, "offset", 0, "Number of presets to skip")

	presetsCmd.AddCommand(presetsListCmd, presetsGetCmd, presetsDeleteCmd)
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	presets, err := client.GetPresets(cmd.Context(), presetsLimit, presetsOffset)
	if err != nil {
		return err
	}
	views := make([]presetView, 0, len(presets))
	for i := range presets {
		views = append(views, newPresetView(&presets[i]))
	}
	return render(cmd.OutOrStdout(), views)
}

func runPresetsGet(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	preset, err := client.GetPreset(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), newPresetView(preset))
}

func runPresetsDelete(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeTranscript()

	if err := client.DeletePreset(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", args[0])
	return nil
}
