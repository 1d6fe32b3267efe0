package main

import (
	"encoding/json"
	"strings"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/repository"
	"github.com/Domenick1991/traveldesk/internal/service/reports"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run an analytics report and print it as JSON",
	Long:  "Runs one of the analytics reports: " + strings.Join(reportNames(), ", ") + ".",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	report, err := reports.NewReportService(repository.NewAnalyticsRepository(pool)).Run(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func reportNames() []string {
	names := make([]string, 0, len(domain.ReportNames))
	for _, n := range domain.ReportNames {
		names = append(names, string(n))
	}
	return names
}
