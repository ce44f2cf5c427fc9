// Package audit orchestrates the per-folder permission audit: ACL
// acquisition, normalization, template diffing and inheritance resolution.
package audit

import (
	"sync"
	"time"

	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/internal/diff"
	"github.com/permaudit-project/permaudit/internal/inherit"
	"github.com/permaudit-project/permaudit/pkg/logging"
	"github.com/permaudit-project/permaudit/pkg/metrics"
	"github.com/permaudit-project/permaudit/pkg/model"
	"github.com/permaudit-project/permaudit/pkg/progress"
	"github.com/permaudit-project/permaudit/pkg/template"
	"github.com/permaudit-project/permaudit/pkg/uuidutil"
)

// Options configures one audit run.
type Options struct {
	// Template enables audit mode. Nil means pure enumeration: every
	// folder is emitted and deviations stay empty.
	Template *template.Template
	// Full attaches normalized ACEs with their inheritance sources to each
	// emitted result.
	Full bool
	// Matching selects exact or case-folded comparison (audit mode only).
	Matching diff.Matching
	// Workers sets the folder-level parallelism. Folder audits are
	// independent; the shared cache keeps ancestor fetches at-most-once.
	Workers  int
	Progress progress.Callback
	Logger   *logging.Logger
	Metrics  *metrics.Registry
}

// RunResult is the outcome of one audit run.
type RunResult struct {
	RunID          string                    `json:"run_id"`
	Parent         string                    `json:"parent"`
	TemplateMode   bool                      `json:"template_mode"`
	StartedAt      time.Time                 `json:"started_at"`
	FinishedAt     time.Time                 `json:"finished_at"`
	FoldersScanned int                       `json:"folders_scanned"`
	DeviantCount   int                       `json:"deviant_count"`
	ErrorCount     int                       `json:"error_count"`
	Results        []model.FolderAuditResult `json:"results"`
}

// Auditor drives the audit of all subfolders of one parent directory.
type Auditor struct {
	provider acl.Provider
	lister   acl.Lister
	differ   *diff.Differ
	opts     Options
}

// New creates an Auditor.
func New(provider acl.Provider, lister acl.Lister, opts Options) *Auditor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Matching == "" {
		opts.Matching = diff.MatchingExact
	}
	if opts.Progress == nil {
		opts.Progress = progress.Noop
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewRegistry()
	}
	return &Auditor{
		provider: provider,
		lister:   lister,
		differ:   diff.NewDiffer(opts.Matching),
		opts:     opts,
	}
}

// Run audits every subfolder of parent. A single unreadable folder never
// aborts the run; it is recorded with an error marker and the run
// continues. The only fatal failure is the subfolder enumeration itself.
func (a *Auditor) Run(parent string) (*RunResult, error) {
	run := &RunResult{
		RunID:        uuidutil.NewV4(),
		Parent:       parent,
		TemplateMode: a.opts.Template != nil,
		StartedAt:    time.Now().UTC(),
	}
	log := a.opts.Logger.With(map[string]any{"run_id": run.RunID})

	folders, err := a.lister.ListSubfolders(parent)
	if err != nil {
		return nil, err
	}
	log.Info("audit run started", map[string]any{
		"parent":        parent,
		"folders":       len(folders),
		"template_mode": run.TemplateMode,
	})

	// The cache is created per run and discarded with it; it is the only
	// shared mutable state in the engine.
	cache := inherit.NewCache(a.opts.Metrics.RecordCacheHit)
	fetch := a.countingFetch()
	resolver := inherit.NewResolver(acl.ProviderFunc(fetch), cache)

	type slot struct {
		result  model.FolderAuditResult
		include bool
	}
	slots := make([]slot, len(folders))

	var progMu sync.Mutex
	prog := progress.New("audit", len(folders), a.opts.Progress)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < a.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				slots[i].result, slots[i].include = a.auditFolder(folders[i], cache, fetch, resolver, log)
				progMu.Lock()
				prog.Increment(folders[i].Name)
				progMu.Unlock()
			}
		}()
	}
	for i := range folders {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	run.FoldersScanned = len(folders)
	for _, s := range slots {
		if !s.include {
			continue
		}
		if s.result.Error != "" {
			run.ErrorCount++
		}
		if s.result.Deviant {
			run.DeviantCount++
		}
		run.Results = append(run.Results, s.result)
	}
	run.FinishedAt = time.Now().UTC()

	log.Info("audit run finished", map[string]any{
		"folders_scanned": run.FoldersScanned,
		"deviant":         run.DeviantCount,
		"errors":          run.ErrorCount,
		"metrics":         a.opts.Metrics.Snapshot(),
	})
	return run, nil
}

// countingFetch wraps the provider so every true fetch is counted.
func (a *Auditor) countingFetch() func(string) (*model.Acl, error) {
	return func(path string) (*model.Acl, error) {
		a.opts.Metrics.RecordProviderCall()
		return a.provider.GetAcl(path)
	}
}

func (a *Auditor) auditFolder(
	folder model.FolderInfo,
	cache *inherit.Cache,
	fetch func(string) (*model.Acl, error),
	resolver *inherit.Resolver,
	log *logging.Logger,
) (model.FolderAuditResult, bool) {
	snap, err := cache.Get(folder.Path, fetch)
	if err != nil {
		log.Warn("folder ACL unreadable", map[string]any{"path": folder.Path, "error": err.Error()})
		a.opts.Metrics.RecordFolder(false, true)
		return model.FolderAuditResult{Path: folder.Path, Error: err.Error()}, true
	}

	canon := make([]model.CanonicalAce, len(snap.Entries))
	for i, raw := range snap.Entries {
		canon[i] = Normalize(raw)
	}

	result := model.FolderAuditResult{
		Path:               folder.Path,
		Owner:              snap.Owner,
		LastModified:       folder.LastModified,
		InheritanceEnabled: !snap.Protected,
	}

	include := true
	if a.opts.Template != nil {
		expected := a.opts.Template.Expand(folder.Name)
		result.Deviations = a.differ.Diff(expected, canon)
		result.Deviant = len(result.Deviations) > 0
		// Audit mode reports deviations only.
		include = result.Deviant
	}
	a.opts.Metrics.RecordFolder(result.Deviant, false)

	if !include {
		return model.FolderAuditResult{}, false
	}

	if a.opts.Full {
		result.Aces = make([]model.ResolvedAce, len(snap.Entries))
		for i, raw := range snap.Entries {
			result.Aces[i] = model.ResolvedAce{
				Ace:           canon[i],
				InheritedFrom: resolver.Source(folder.Path, raw),
			}
		}
	}
	return result, true
}
