package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gordohq/lead-portal/internal/entity"
)

// Column headers of the backing file, in canonical order. A file missing some
// of these gets the missing columns synthesized as empty strings on load;
// columns are never reordered or dropped from the schema.
var Columns = []string{
	"Date",
	"Customer",
	"Company",
	"Product Interest",
	"Status",
	"Notes",
	"AI Follow-Up Message",
	"WhatsApp Link",
	"Email",
	"Phone",
	"Last Contact",
}

// CSVStore persists the full lead set as a single CSV file. Every mutation
// rewrites the whole file (write temp, rename over). Atomicity is
// best-effort: the rename is atomic on POSIX filesystems but nothing is
// fsynced, and there is no cross-process locking — exactly one writer
// process is assumed. Concurrent writer processes race last-rewrite-wins.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Initialize creates the parent directory and a header-only backing file when
// none exists. Idempotent: an existing file is left untouched.
func (s *CSVStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

func (s *CSVStore) initLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat backing file: %w", err)
	}
	return s.persistLocked(nil)
}

// LoadAll reads the full current set in row order. A missing backing file is
// initialized and reported as empty. A file whose header lacks schema columns
// is tolerated: the absent columns come back as empty strings and the next
// persist upgrades the file in place. Rows are never reordered.
func (s *CSVStore) LoadAll(ctx context.Context) (entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *CSVStore) loadLocked(ctx context.Context) (entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		if err := s.initLocked(); err != nil {
			return nil, err
		}
		return entity.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open backing file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are padded below

	header, err := r.Read()
	if err == io.EOF {
		return entity.Snapshot{}, nil
	}
	if err != nil {
		return nil, &StoreCorruptError{Path: s.path, Err: err}
	}

	// Map each schema column to its position in this file's header, -1 when
	// the file predates the column.
	colIdx := make([]int, len(Columns))
	for i, want := range Columns {
		colIdx[i] = -1
		for j, got := range header {
			if got == want {
				colIdx[i] = j
				break
			}
		}
	}

	var snap entity.Snapshot
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &StoreCorruptError{Path: s.path, Err: err}
		}
		values := make([]string, len(Columns))
		for i, j := range colIdx {
			if j >= 0 && j < len(row) {
				values[i] = row[j]
			}
		}
		snap = append(snap, leadFromRow(values))
	}
	return snap, nil
}

// Append adds lead as the new last row and rewrites the persisted set.
func (s *CSVStore) Append(ctx context.Context, lead entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	snap = append(snap, lead)
	return s.persistLocked(snap)
}

// UpdateFields overwrites only the named columns of the row at rowIndex
// (0-based, current load order) and rewrites the persisted set. Unknown
// column names are rejected before anything is written.
func (s *CSVStore) UpdateFields(ctx context.Context, rowIndex int, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name := range fields {
		if !isColumn(name) {
			return fmt.Errorf("lead store: unknown column %q", name)
		}
	}

	snap, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if rowIndex < 0 || rowIndex >= len(snap) {
		return &IndexOutOfRangeError{Index: rowIndex, Rows: len(snap)}
	}
	applyFields(&snap[rowIndex], fields)
	return s.persistLocked(snap)
}

// Invalidate is a no-op on the raw store; the cache wrapper gives it meaning.
func (s *CSVStore) Invalidate() {}

// persistLocked writes the full set to a temp file next to the backing file
// and renames it into place, so a failed write leaves the prior file intact.
func (s *CSVStore) persistLocked(snap entity.Snapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".leads-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, lead := range snap {
		if err := w.Write(rowFromLead(lead)); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace backing file: %w", err)
	}
	return nil
}

func isColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

func leadFromRow(values []string) entity.Lead {
	return entity.Lead{
		Date:            values[0],
		Customer:        values[1],
		Company:         values[2],
		ProductInterest: values[3],
		Status:          values[4],
		Notes:           values[5],
		FollowUpMessage: values[6],
		WhatsAppLink:    values[7],
		Email:           values[8],
		Phone:           values[9],
		LastContact:     values[10],
	}
}

func rowFromLead(l entity.Lead) []string {
	return []string{
		l.Date,
		l.Customer,
		l.Company,
		l.ProductInterest,
		l.Status,
		l.Notes,
		l.FollowUpMessage,
		l.WhatsAppLink,
		l.Email,
		l.Phone,
		l.LastContact,
	}
}

func applyFields(l *entity.Lead, fields map[string]string) {
	for name, value := range fields {
		switch name {
		case "Date":
			l.Date = value
		case "Customer":
			l.Customer = value
		case "Company":
			l.Company = value
		case "Product Interest":
			l.ProductInterest = value
		case "Status":
			l.Status = value
		case "Notes":
			l.Notes = value
		case "AI Follow-Up Message":
			l.FollowUpMessage = value
		case "WhatsApp Link":
			l.WhatsAppLink = value
		case "Email":
			l.Email = value
		case "Phone":
			l.Phone = value
		case "Last Contact":
			l.LastContact = value
		}
	}
}
