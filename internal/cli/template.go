package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/permaudit-project/permaudit/pkg/template"
)

var templateFolder string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect permission templates",
	Long:  `Inspect permission templates used by audit mode.`,
}

var templateValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a permission template",
	Long: `Validate a permission template.

Checks that the file parses and that every required permission carries a
principal, rights, an Allow/Deny type and an applies-to scope. Exits
non-zero if the template would abort an audit run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tmpl, err := template.Load(args[0])
		if err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(map[string]any{
				"valid":                true,
				"path":                 args[0],
				"required_permissions": len(tmpl.RequiredPermissions),
			})
			return
		}

		fmt.Printf("Template is valid (%d required permissions).\n", len(tmpl.RequiredPermissions))
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a permission template, optionally expanded for a folder",
	Long: `Show a permission template.

With --folder, every ` + template.FolderNameToken + ` token is replaced with
the given folder name and the expected ACEs are printed exactly as the
audit would compare them.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tmpl, err := template.Load(args[0])
		if err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}

		if templateFolder != "" {
			expected := tmpl.Expand(templateFolder)
			if jsonOutput {
				outputJSON(expected)
				return
			}
			fmt.Printf("Expected ACEs for folder %q:\n", templateFolder)
			for _, ace := range expected {
				fmt.Printf("  %-7s %-30s %-20s %s\n",
					ace.AccessType, ace.Principal, ace.RightName, ace.AppliesTo)
			}
			return
		}

		if jsonOutput {
			outputJSON(tmpl)
			return
		}

		if tmpl.Description != "" {
			fmt.Printf("Description: %s\n", tmpl.Description)
			fmt.Println()
		}
		for _, req := range tmpl.RequiredPermissions {
			fmt.Printf("  %-7s %-30s %-20s %s\n",
				req.Type, req.Principal, req.Rights, req.AppliesTo)
		}
	},
}

func init() {
	templateShowCmd.Flags().StringVar(&templateFolder, "folder", "", "expand the template for this folder name")
	templateCmd.AddCommand(templateValidateCmd)
	templateCmd.AddCommand(templateShowCmd)
	rootCmd.AddCommand(templateCmd)
}
