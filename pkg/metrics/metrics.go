// Package metrics tracks per-run counters for the audit engine.
package metrics

import "sync/atomic"

// Registry holds the counters for one audit run.
type Registry struct {
	foldersScanned atomic.Int64
	deviantFolders atomic.Int64
	folderErrors   atomic.Int64
	providerCalls  atomic.Int64
	cacheHits      atomic.Int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RecordFolder records one scanned folder and its outcome.
func (r *Registry) RecordFolder(deviant bool, errored bool) {
	r.foldersScanned.Add(1)
	if deviant {
		r.deviantFolders.Add(1)
	}
	if errored {
		r.folderErrors.Add(1)
	}
}

// RecordProviderCall records one fetch from the underlying ACL provider.
func (r *Registry) RecordProviderCall() {
	r.providerCalls.Add(1)
}

// RecordCacheHit records an ACL lookup served from the run cache.
func (r *Registry) RecordCacheHit() {
	r.cacheHits.Add(1)
}

// Snapshot returns the current counter values.
func (r *Registry) Snapshot() map[string]int64 {
	return map[string]int64{
		"folders_scanned": r.foldersScanned.Load(),
		"deviant_folders": r.deviantFolders.Load(),
		"folder_errors":   r.folderErrors.Load(),
		"provider_calls":  r.providerCalls.Load(),
		"cache_hits":      r.cacheHits.Load(),
	}
}
