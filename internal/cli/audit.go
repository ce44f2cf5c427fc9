package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/internal/audit"
	"github.com/permaudit-project/permaudit/internal/diff"
	"github.com/permaudit-project/permaudit/internal/runlog"
	"github.com/permaudit-project/permaudit/pkg/color"
	"github.com/permaudit-project/permaudit/pkg/config"
	"github.com/permaudit-project/permaudit/pkg/logging"
	"github.com/permaudit-project/permaudit/pkg/metrics"
	"github.com/permaudit-project/permaudit/pkg/model"
	"github.com/permaudit-project/permaudit/pkg/template"
	"github.com/permaudit-project/permaudit/pkg/webhook"
)

var (
	auditTemplate string
	auditFull     bool
	auditOut      string
	auditOutJSON  string
	auditWorkers  int
	auditRunLog   string
)

var auditCmd = &cobra.Command{
	Use:   "audit <parent>",
	Short: "Audit folder permissions against a template",
	Long: `Audit folder permissions against a template.

Expands the template for each subfolder name, compares the expected ACEs
with the folder's actual ACL and reports the deviations: missing required
entries and unexpected extra entries. Only deviant folders (and folders
whose ACL could not be read) appear in the output.

A failure to load the template aborts the run before any folder is
processed. A failure to read a single folder's ACL does not; the folder is
reported with an error marker and the run continues.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := requireConfig()
		parent := requireParent(args[0])

		tmpl, err := template.Load(auditTemplate)
		if err != nil {
			fmtErr("load template: %v", err)
			os.Exit(1)
		}

		if auditWorkers > 0 {
			cfg.Workers = auditWorkers
		}

		reg := metrics.NewRegistry()
		auditor := audit.New(acl.NewDefaultProvider(), acl.NewDirLister(), audit.Options{
			Template: tmpl,
			Full:     auditFull,
			Matching: diff.Matching(cfg.Matching),
			Workers:  cfg.Workers,
			Progress: progressCallback(),
			Logger:   logging.Default(),
			Metrics:  reg,
		})

		run, err := auditor.Run(parent)
		if err != nil {
			fmtErr("audit %s: %v", parent, err)
			os.Exit(1)
		}

		if auditRunLog != "" {
			if err := appendRunLog(auditRunLog, run); err != nil {
				fmtErr("append run log: %v", err)
				os.Exit(1)
			}
		}

		notifyWebhook(cfg, run)

		if err := writeReports(cfg.Report.Title, tmpl.Description, run, auditOut, auditOutJSON); err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(run)
			return
		}
		printAudit(run)

		if run.DeviantCount > 0 || run.ErrorCount > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditTemplate, "template", "", "path to the permission template (required)")
	auditCmd.MarkFlagRequired("template")
	auditCmd.Flags().BoolVar(&auditFull, "full", false, "include every ACE with its inheritance source")
	auditCmd.Flags().StringVar(&auditOut, "out", "", "write an HTML report to this path")
	auditCmd.Flags().StringVar(&auditOutJSON, "out-json", "", "write a JSON report to this path")
	auditCmd.Flags().IntVar(&auditWorkers, "workers", 0, "folder-level parallelism (overrides config)")
	auditCmd.Flags().StringVar(&auditRunLog, "runlog", "", "append this run to a hash-chained run log file")
	rootCmd.AddCommand(auditCmd)
}

// appendRunLog appends a summary record for the run.
func appendRunLog(path string, run *audit.RunResult) error {
	app := runlog.NewAppender(path)
	return app.Append(model.RunRecord{
		Timestamp:      run.FinishedAt,
		RunID:          run.RunID,
		Parent:         run.Parent,
		TemplateMode:   run.TemplateMode,
		FoldersScanned: run.FoldersScanned,
		DeviantCount:   run.DeviantCount,
		ErrorCount:     run.ErrorCount,
	})
}

// notifyWebhook posts the run outcome when a hook is configured. Failures
// are logged, never fatal.
func notifyWebhook(cfg *config.Config, run *audit.RunResult) {
	if !cfg.Webhook.Enabled {
		return
	}
	event := webhook.EventRunCompleted
	if run.DeviantCount > 0 {
		event = webhook.EventDeviationsFound
	}
	client := webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.Secret)
	err := client.Notify(webhook.Event{
		Event:          event,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		RunID:          run.RunID,
		Parent:         run.Parent,
		FoldersScanned: run.FoldersScanned,
		DeviantCount:   run.DeviantCount,
		ErrorCount:     run.ErrorCount,
	})
	if err != nil {
		logging.ErrorErr("webhook notification failed", err, map[string]any{"url": cfg.Webhook.URL})
	}
}

// printAudit renders an audit run as text.
func printAudit(run *audit.RunResult) {
	if len(run.Results) == 0 {
		fmt.Printf("%s\n", color.Green(fmt.Sprintf(
			"All %d folders match the template.", run.FoldersScanned)))
		return
	}

	for _, r := range run.Results {
		if r.Error != "" {
			fmt.Printf("%s\n", color.Red(r.Path))
			fmt.Printf("  error: %s\n", r.Error)
			fmt.Println()
			continue
		}

		fmt.Printf("%s\n", color.Yellow(r.Path))
		for _, d := range r.Deviations {
			marker := "-"
			if d.Kind == model.DeviationUnexpected {
				marker = "+"
			}
			fmt.Printf("  %s %s (%s): %s\n", marker, d.Principal, d.RightName, d.Kind)
		}
		if auditFull {
			for _, ra := range r.Aces {
				fmt.Printf("  %-7s %-30s %-20s %s\n",
					ra.Ace.AccessType, ra.Ace.Principal, ra.Ace.RightName, ra.Ace.AppliesTo)
				fmt.Printf("          inherited from: %s\n", ra.InheritedFrom)
			}
		}
		fmt.Println()
	}

	fmt.Printf("Scanned %d folders: %d deviant, %d errors\n",
		run.FoldersScanned, run.DeviantCount, run.ErrorCount)
}
