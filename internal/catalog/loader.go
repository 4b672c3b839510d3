// Package catalog loads the weapon catalog from a JSON config file.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/validation"
)

// File is the on-disk catalog format
type File struct {
	Version string          `json:"version,omitempty"`
	Weapons []domain.Weapon `json:"weapons"`
}

// Loader reads and validates weapon catalogs
type Loader struct {
	schema validation.SchemaValidator
}

// NewLoader creates a new catalog loader
func NewLoader() *Loader {
	return &Loader{schema: validation.NewSchemaValidator()}
}

// Load reads path, validates it, and returns weapons in file order.
// An empty path yields the built-in catalog.
func (l *Loader) Load(path string) ([]domain.Weapon, error) {
	if path == "" {
		return domain.DefaultWeapons(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon catalog %s: %w", path, err)
	}

	weapons, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid weapon catalog %s: %w", path, err)
	}

	slog.Info(LogMsgCatalogLoaded, "path", path, "weapons", len(weapons))
	return weapons, nil
}

// Parse validates raw catalog JSON and decodes it
func (l *Loader) Parse(data []byte) ([]domain.Weapon, error) {
	if err := l.schema.ValidateBytes(data, validation.SchemaWeapons); err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := Validate(file.Weapons); err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

// Validate checks the rules a schema cannot express:
// ids are unique and the starter weapon is present.
func Validate(weapons []domain.Weapon) error {
	seen := make(map[string]bool, len(weapons))
	for _, w := range weapons {
		if seen[w.ID] {
			return fmt.Errorf("%w: duplicate weapon id %q", domain.ErrInvalidInput, w.ID)
		}
		seen[w.ID] = true
	}
	if !seen[domain.StarterWeapon] {
		return fmt.Errorf("%w: catalog must contain the starter weapon %q", domain.ErrInvalidInput, domain.StarterWeapon)
	}
	return nil
}
