package main

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// infoCmd fetches the public reference data
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show algorithms, formats, production states and service types",
	Long: `Fetches all public reference data concurrently. No session is needed,
only the client credentials.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, closeTranscript, err := openPublic()
	if err != nil {
		return err
	}
	defer closeTranscript()

	var info infoView
	p := pool.New().WithMaxGoroutines(5).WithErrors().WithContext(cmd.Context())

	p.Go(func(ctx context.Context) error {
		algorithms, err := client.GetAlgorithms(ctx)
		if err != nil {
			return fmt.Errorf("failed to get algorithms: %w", err)
		}
		info.Algorithms = displayNames(algorithms)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		endings, err := client.GetFileEndings(ctx)
		if err != nil {
			return fmt.Errorf("failed to get file endings: %w", err)
		}
		info.FileEndings = joinEndings(endings)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		types, err := client.GetOutputFileTypes(ctx)
		if err != nil {
			return fmt.Errorf("failed to get output file types: %w", err)
		}
		info.OutputFileTypes = displayNames(types)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		statuses, err := client.GetProductionStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to get production status: %w", err)
		}
		info.ProductionState = statusNames(statuses)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		types, err := client.GetServiceTypes(ctx)
		if err != nil {
			return fmt.Errorf("failed to get service types: %w", err)
		}
		info.ServiceTypes = displayNames(types)
		return nil
	})

	if err := p.Wait(); err != nil {
		logger.Error("Failed to fetch reference data", zap.Error(err))
		return err
	}
	return render(cmd.OutOrStdout(), info)
}
