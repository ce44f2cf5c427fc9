package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/internal/audit"
	"github.com/permaudit-project/permaudit/internal/report"
	"github.com/permaudit-project/permaudit/pkg/color"
	"github.com/permaudit-project/permaudit/pkg/logging"
	"github.com/permaudit-project/permaudit/pkg/metrics"
	"github.com/permaudit-project/permaudit/pkg/progress"
)

var (
	scanOut     string
	scanOutJSON string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan <parent>",
	Short: "Enumerate folder permissions under a parent directory",
	Long: `Enumerate folder permissions under a parent directory.

Reads the access-control list of every immediate subfolder and lists the
normalized entries with their inheritance sources. No template is applied;
every folder is reported.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := requireConfig()
		parent := requireParent(args[0])

		if scanWorkers > 0 {
			cfg.Workers = scanWorkers
		}

		reg := metrics.NewRegistry()
		auditor := audit.New(acl.NewDefaultProvider(), acl.NewDirLister(), audit.Options{
			Full:     true,
			Workers:  cfg.Workers,
			Progress: progressCallback(),
			Logger:   logging.Default(),
			Metrics:  reg,
		})

		run, err := auditor.Run(parent)
		if err != nil {
			fmtErr("scan %s: %v", parent, err)
			os.Exit(1)
		}

		if err := writeReports(cfg.Report.Title, "", run, scanOut, scanOutJSON); err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(run)
			return
		}
		printScan(run)
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanOut, "out", "", "write an HTML report to this path")
	scanCmd.Flags().StringVar(&scanOutJSON, "out-json", "", "write a JSON report to this path")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "folder-level parallelism (overrides config)")
	rootCmd.AddCommand(scanCmd)
}

// printScan renders an enumeration run as text.
func printScan(run *audit.RunResult) {
	fmt.Printf("Scanned %d folders under %s\n", run.FoldersScanned, run.Parent)
	fmt.Println()

	for _, r := range run.Results {
		if r.Error != "" {
			fmt.Printf("%s\n", color.Red(r.Path))
			fmt.Printf("  error: %s\n", r.Error)
			fmt.Println()
			continue
		}

		fmt.Printf("%s\n", color.Bold(r.Path))
		fmt.Printf("  Owner: %s  Inheritance: %s\n", r.Owner, enabledWord(r.InheritanceEnabled))
		for _, ra := range r.Aces {
			fmt.Printf("  %-7s %-30s %-20s %s\n",
				ra.Ace.AccessType, ra.Ace.Principal, ra.Ace.RightName, ra.Ace.AppliesTo)
			fmt.Printf("          inherited from: %s\n", ra.InheritedFrom)
		}
		fmt.Println()
	}

	if run.ErrorCount > 0 {
		fmt.Printf("%s\n", color.Yellow(fmt.Sprintf("%d folders could not be read", run.ErrorCount)))
	}
}

func enabledWord(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// writeReports writes the optional HTML and JSON report files.
func writeReports(title, templateDescription string, run *audit.RunResult, htmlPath, jsonPath string) error {
	if htmlPath == "" && jsonPath == "" {
		return nil
	}
	data := report.NewData(title, templateDescription, run)
	if htmlPath != "" {
		if err := report.WriteHTML(htmlPath, data); err != nil {
			return fmt.Errorf("write HTML report: %w", err)
		}
	}
	if jsonPath != "" {
		if err := report.WriteJSON(jsonPath, data); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	}
	return nil
}

// progressCallback reports folder progress on stderr unless JSON output is
// requested.
func progressCallback() progress.Callback {
	if jsonOutput {
		return progress.Noop
	}
	return func(op string, current, total int, message string) {
		fmt.Fprintf(os.Stderr, "\r%s: %d/%d %s", op, current, total, message)
		if current == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
