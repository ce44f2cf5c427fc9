package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/internal/doctor"
)

var (
	doctorTemplate string
	doctorRunLog   string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor <parent>",
	Short: "Check that an audit of the parent directory can succeed",
	Long: `Check that an audit of the parent directory can succeed.

Verifies the parent is a readable directory and the ACL provider works on
this platform. With --template the template is parsed and expanded; with
--runlog the run log's hash chain is verified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireConfig()

		doc := doctor.NewDoctor(args[0], doctorTemplate, doctorRunLog, acl.NewDefaultProvider())
		result := doc.Check()

		if jsonOutput {
			outputJSON(result)
			if !result.Healthy {
				os.Exit(1)
			}
			return
		}

		if len(result.Findings) == 0 {
			fmt.Println("Environment is healthy.")
			return
		}

		fmt.Printf("Findings (%d):\n", len(result.Findings))
		for _, f := range result.Findings {
			fmt.Printf("  [%s] %s: %s\n", f.Severity, f.Category, f.Description)
		}

		if !result.Healthy {
			os.Exit(1)
		}
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorTemplate, "template", "", "also check this permission template")
	doctorCmd.Flags().StringVar(&doctorRunLog, "runlog", "", "also verify this run log's hash chain")
	rootCmd.AddCommand(doctorCmd)
}
