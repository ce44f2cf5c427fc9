// Package doctor performs environment health checks before an audit run.
package doctor

import (
	"fmt"

	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/internal/runlog"
	"github.com/permaudit-project/permaudit/pkg/pathutil"
	"github.com/permaudit-project/permaudit/pkg/template"
)

// Finding represents a detected issue.
type Finding struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Path        string `json:"path,omitempty"`
}

// Result contains doctor check results.
type Result struct {
	Healthy  bool      `json:"healthy"`
	Findings []Finding `json:"findings"`
}

// Doctor checks that an audit of parent can succeed.
type Doctor struct {
	parent       string
	templatePath string
	runlogPath   string
	provider     acl.Provider
}

// NewDoctor creates a doctor. templatePath and runlogPath may be empty to
// skip those checks.
func NewDoctor(parent, templatePath, runlogPath string, provider acl.Provider) *Doctor {
	return &Doctor{parent: parent, templatePath: templatePath, runlogPath: runlogPath, provider: provider}
}

// Check runs all diagnostic checks.
func (d *Doctor) Check() *Result {
	result := &Result{Healthy: true}

	d.checkParent(result)
	d.checkTemplate(result)
	d.checkProvider(result)
	d.checkRunLog(result)

	return result
}

func (d *Doctor) checkParent(result *Result) {
	if err := pathutil.ValidateParent(d.parent); err != nil {
		d.fail(result, "parent", err.Error(), d.parent)
	}
}

func (d *Doctor) checkTemplate(result *Result) {
	if d.templatePath == "" {
		return
	}
	tmpl, err := template.Load(d.templatePath)
	if err != nil {
		d.fail(result, "template", err.Error(), d.templatePath)
		return
	}
	// Expansion with a probe name must produce at least one expected ACE.
	if len(tmpl.Expand("probe")) == 0 {
		d.fail(result, "template", "template expands to no requirements", d.templatePath)
	}
}

func (d *Doctor) checkProvider(result *Result) {
	if _, err := d.provider.GetAcl(d.parent); err != nil {
		d.fail(result, "acl-provider",
			fmt.Sprintf("cannot read ACL of parent: %v", err), d.parent)
	}
}

func (d *Doctor) checkRunLog(result *Result) {
	if d.runlogPath == "" {
		return
	}
	if err := runlog.NewAppender(d.runlogPath).Verify(); err != nil {
		result.Findings = append(result.Findings, Finding{
			Category:    "runlog",
			Description: err.Error(),
			Severity:    "warning",
			Path:        d.runlogPath,
		})
	}
}

func (d *Doctor) fail(result *Result, category, description, path string) {
	result.Healthy = false
	result.Findings = append(result.Findings, Finding{
		Category:    category,
		Description: description,
		Severity:    "error",
		Path:        path,
	})
}
