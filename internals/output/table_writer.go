package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

const tableName = "output.csv"

// tableManifest describes the written table for the host framework.
type tableManifest struct {
	Incremental bool     `json:"incremental"`
	PrimaryKey  []string `json:"primary_key"`
	Columns     []string `json:"columns"`
}

// TableWriter writes the rates table and its manifest into the host's
// out/tables directory.
type TableWriter struct {
	dataDir string
}

func NewTableWriter(dataDir string) *TableWriter {
	return &TableWriter{dataDir: dataDir}
}

// WriteRatesTable writes the CSV table with its fixed header and the
// accompanying manifest. It returns the table path.
func (w *TableWriter) WriteRatesTable(table domain.RatesTable, incremental bool) (string, error) {
	outDir := filepath.Join(w.dataDir, "out", "tables")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tablePath := filepath.Join(outDir, tableName)
	if err := w.writeCSV(tablePath, table); err != nil {
		return "", err
	}

	if err := w.writeManifest(tablePath+".manifest", incremental); err != nil {
		return "", err
	}

	return tablePath, nil
}

func (w *TableWriter) writeCSV(path string, table domain.RatesTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output table: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.TableHeader); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}
	for _, record := range table {
		if err := writer.Write(record.Row()); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output table: %w", err)
	}
	return nil
}

func (w *TableWriter) writeManifest(path string, incremental bool) error {
	manifest := tableManifest{
		Incremental: incremental,
		PrimaryKey:  domain.TablePrimaryKey,
		Columns:     domain.TableHeader,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal table manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write table manifest: %w", err)
	}
	return nil
}
