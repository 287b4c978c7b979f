package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cart-service/internal/models"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// CatalogStore persists the product catalog as a JSON array on disk.
type CatalogStore struct {
	path   string
	logger *zap.Logger
}

// NewCatalogStore creates a catalog store backed by the given file path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{
		path:   path,
		logger: util.GetLogger(),
	}
}

// Load reads the catalog file. A missing file yields an empty catalog.
// Records are decoded individually: one that fails to decode or lacks a
// product_id is skipped with a diagnostic while the rest of the file is still
// processed.
func (s *CatalogStore) Load() (*models.Catalog, error) {
	catalog := models.NewCatalog()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", s.path, err)
	}

	for _, entry := range raw {
		var rec models.ProductRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			s.logger.Warn("Skipping malformed catalog record",
				zap.ByteString("record", entry),
				zap.Error(err))
			continue
		}
		if rec.ProductID == "" {
			s.logger.Warn("Skipping catalog record without product_id",
				zap.ByteString("record", entry))
			continue
		}
		catalog.Add(models.ProductFromRecord(rec))
	}

	return catalog, nil
}

// Save writes every product's tagged record, in catalog order.
func (s *CatalogStore) Save(catalog *models.Catalog) error {
	records := make([]models.ProductRecord, 0, catalog.Len())
	for _, p := range catalog.Products() {
		records = append(records, p.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", s.path, err)
	}
	return nil
}
