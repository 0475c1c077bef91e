package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/ishikawa"
	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/presentation/graph"
	"github.com/aretw0/ishikawa/internal/presentation/tui"
	"github.com/aretw0/ishikawa/pkg/domain"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Analyze an incident and print its cause-effect tree",
	Long: `Analyzes an incident description and prints the resulting cause-effect tree.

Output formats:
- tree (default): indented plain-text tree
- markdown: rendered analysis report
- json: raw node list
- mermaid: Mermaid flowchart definition
- svg: standalone SVG diagram`,
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
		output, _ := cmd.Flags().GetString("output")

		eng := ishikawa.New(
			ishikawa.WithProvider(mockdata.NewProvider(
				mockdata.WithLatency(cfg.Provider.Latency.Std()),
				mockdata.WithLogger(logger),
			)),
			ishikawa.WithLogger(logger),
		)

		ctx := cmd.Context()

		switch output {
		case "markdown":
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

			tui.PrintBanner()
			render := tui.NewRenderer()
			out, err := render(tui.ReportMarkdown(report))
			if err != nil {
				fmt.Printf("Error rendering markdown: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)

		default:
			tree, err := eng.Fetch(ctx, incident, level)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			switch output {
			case "tree":
				printTree(tree, tree.Root().Key, 0)
			case "json":
				data, err := json.MarshalIndent(tree, "", "  ")
				if err != nil {
					fmt.Printf("Error encoding tree: %v\n", err)
					os.Exit(1)
				}
				fmt.Println(string(data))
			case "mermaid":
				fmt.Println(graph.GenerateMermaid(tree))
			case "svg":
				svg, err := eng.Render(tree)
				if err != nil {
					fmt.Printf("Error rendering diagram: %v\n", err)
					os.Exit(1)
				}
				fmt.Println(svg)
			default:
				fmt.Printf("Unknown output format: %s. Supported: tree, markdown, json, mermaid, svg\n", output)
				os.Exit(1)
			}
		}
	},
}

func printTree(tree domain.Tree, key int, depth int) {
	node, ok := tree.Lookup(key)
	if !ok {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("[%d] %s\n", node.Key, node.Name)
	for _, c := range tree.Children(key) {
		printTree(tree, c.Key, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("incident", "i", "", "Incident description to analyze")
	generateCmd.Flags().IntP("level", "l", 1, "Analysis depth (1-3)")
	generateCmd.Flags().StringP("output", "o", "tree", "Output format: tree, markdown, json, mermaid or svg")
}
