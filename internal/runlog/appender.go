// Package runlog appends audit-run records to a hash-chained JSONL log.
package runlog

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/jsonutil"
	"github.com/permaudit-project/permaudit/pkg/model"
)

// Appender writes run records to a JSONL file. Each record carries the
// hash of its predecessor so history tampering is detectable.
type Appender struct {
	path string
	mu   sync.Mutex
}

// NewAppender creates an Appender for the given log path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Append adds a record for one completed run.
func (a *Appender) Append(rec model.RunRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return fmt.Errorf("create runlog dir: %w", err)
	}

	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open runlog: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("lock runlog: %w", err)
	}
	defer unlockFile(file)

	prevHash, err := lastRecordHash(file)
	if err != nil {
		return err
	}

	rec.Timestamp = time.Now().UTC()
	rec.PrevHash = prevHash
	rec.RecordHash = ""
	hash, err := recordHash(rec)
	if err != nil {
		return err
	}
	rec.RecordHash = hash

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}

	if _, err := file.Seek(0, 2); err != nil {
		return fmt.Errorf("seek runlog: %w", err)
	}
	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync runlog: %w", err)
	}
	return nil
}

// Verify walks the whole log and checks the hash chain. A missing log is
// intact by definition.
func (a *Appender) Verify() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	file, err := os.Open(a.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open runlog: %w", err)
	}
	defer file.Close()

	prev := ""
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		var rec model.RunRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return errclass.ErrRunLogCorrupt.WithMessagef("line %d: %v", line, err)
		}
		if rec.PrevHash != prev {
			return errclass.ErrRunLogCorrupt.WithMessagef("line %d: prev hash mismatch", line)
		}
		want := rec.RecordHash
		rec.RecordHash = ""
		got, err := recordHash(rec)
		if err != nil {
			return err
		}
		if got != want {
			return errclass.ErrRunLogCorrupt.WithMessagef("line %d: record hash mismatch", line)
		}
		prev = want
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan runlog: %w", err)
	}
	return nil
}

func lastRecordHash(file *os.File) (string, error) {
	if _, err := file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("seek runlog: %w", err)
	}
	last := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec model.RunRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return "", errclass.ErrRunLogCorrupt.WithMessagef("unparsable record: %v", err)
		}
		last = rec.RecordHash
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan runlog: %w", err)
	}
	return last, nil
}

// recordHash hashes the canonical JSON form of a record with RecordHash
// cleared.
func recordHash(rec model.RunRecord) (string, error) {
	data, err := jsonutil.CanonicalMarshal(rec)
	if err != nil {
		return "", fmt.Errorf("hash run record: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
