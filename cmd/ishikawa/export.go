package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/ishikawa"
	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/export"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Analyze an incident and export the report as a PDF",
	Long: `Analyzes an incident description, builds the printable report and prints
it to PDF using a headless browser. Requires Chrome or Chromium on the host.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		incident, _ := cmd.Flags().GetString("incident")
		if incident == "" && len(args) > 0 {
			incident = args[0]
		}
		level, _ := cmd.Flags().GetInt("level")
		outPath, _ := cmd.Flags().GetString("out")

		eng := ishikawa.New(
			ishikawa.WithProvider(mockdata.NewProvider(
				mockdata.WithLatency(cfg.Provider.Latency.Std()),
				mockdata.WithLogger(logger),
			)),
			ishikawa.WithLogger(logger),
		)

		ctx := cmd.Context()
		session, err := eng.Generate(ctx, uuid.NewString(), incident, level)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		report, err := eng.Report(ctx, session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		svg, err := eng.Diagram(ctx, session.ID)
		if err != nil {
			fmt.Printf("Error rendering diagram: %v\n", err)
			os.Exit(1)
		}

		html, err := export.BuildHTML(report, svg, false)
		if err != nil {
			fmt.Printf("Error building report: %v\n", err)
			os.Exit(1)
		}

		printer := export.NewPrinter(
			export.WithExecPath(cfg.Export.ChromePath),
			export.WithTimeout(cfg.Export.Timeout.Std()),
			export.WithLogger(logger),
		)
		pdf, err := printer.PrintPDF(ctx, html)
		if err != nil {
			fmt.Printf("Error printing PDF: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s (%d bytes)\n", outPath, len(pdf))
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("incident", "i", "", "Incident description to analyze")
	exportCmd.Flags().IntP("level", "l", 1, "Analysis depth (1-3)")
	exportCmd.Flags().StringP("out", "O", "report.pdf", "Output PDF path")
}
