package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/jszwec/csvutil"
	"github.com/route-assist/app/models"
	"github.com/route-assist/internal/normalizer"
	"go.uber.org/zap"
)

// Table is the finalized delivery table: one row per unique (route,
// normalized street) pair with its sequence position. It is loaded once per
// serving session and read-only afterwards. The normalized street column is
// a lazily computed cache of a deterministic function of raw_address, safe
// to recompute any number of times.
type Table struct {
	records []models.DeliveryRecord

	once    sync.Once
	streets []string
}

// NewTable wraps an already-built record slice, used by the pipeline and by
// tests. The slice is owned by the table afterwards.
func NewTable(records []models.DeliveryRecord) *Table {
	return &Table{records: records}
}

// Load reads a finalized table from a CSV file.
func Load(path string, logger *zap.Logger) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read finalized table: %w", err)
	}

	var records []models.DeliveryRecord
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode finalized table: %w", err)
	}

	logger.Info("Finalized table loaded",
		zap.String("path", path),
		zap.Int("records", len(records)))
	return NewTable(records), nil
}

// LoadRaw reads a raw ingest table (route_id, raw_address, date, time).
// Columns the finalized table adds later are simply absent and left zero.
func LoadRaw(path string) ([]models.DeliveryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw table: %w", err)
	}

	var records []models.DeliveryRecord
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode raw table: %w", err)
	}
	return records, nil
}

// Save writes a finalized table as CSV, columns in the canonical order
// route_id, route_name, raw_address, date, time, sequence_position.
func Save(path string, records []models.DeliveryRecord) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode finalized table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write finalized table: %w", err)
	}
	return nil
}

// Records returns the table rows. Callers must not mutate them.
func (t *Table) Records() []models.DeliveryRecord {
	return t.records
}

// Streets returns the normalized street name for each row, aligned by
// index with Records. The column is computed on first use.
func (t *Table) Streets() []string {
	t.once.Do(func() {
		t.streets = make([]string, len(t.records))
		for i, rec := range t.records {
			t.streets[i] = normalizer.ExtractStreetName(rec.RawAddress)
		}
	})
	return t.streets
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}
