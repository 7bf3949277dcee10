package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/netitem/internal/validation"
)

var (
	ErrDuplicateNetID = errors.New("duplicate net_id")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

//go:embed schemas/items.schema.json
var itemsSchema []byte

// Config is the JSON item catalog.
type Config struct {
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Items       []Def       `json:"items"`
	Prefixes    []PrefixDef `json:"prefixes"`
}

// Def is a single item definition.
type Def struct {
	NetID    int    `json:"net_id"`
	Name     string `json:"name"`
	MaxStack int    `json:"max_stack"`
	Value    int    `json:"value"`
}

// PrefixDef names a prefix id.
type PrefixDef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Loader reads and validates catalog files.
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the embedded catalog schema.
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(map[string][]byte{SchemaName: itemsSchema}),
	}
}

// Load reads, schema-checks and parses a catalog file.
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	cfg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (l *loader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks what the schema cannot: uniqueness of ids.
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[int]bool, len(config.Items))
	for i := range config.Items {
		if err := validateDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}

	prefixes := make(map[int]bool, len(config.Prefixes))
	for _, p := range config.Prefixes {
		if p.ID < 1 || p.ID > 255 {
			return fmt.Errorf("%w: %s: %d", ErrInvalidConfig, ErrMsgPrefixOutOfRange, p.ID)
		}
		if prefixes[p.ID] {
			return fmt.Errorf(ErrFmtDuplicatePrefix, ErrInvalidConfig, p.ID)
		}
		prefixes[p.ID] = true
	}
	return nil
}

func validateDef(index int, def *Def, seen map[int]bool) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	if def.NetID == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgZeroNetID)
	}
	if seen[def.NetID] {
		return fmt.Errorf(ErrFmtDuplicateNetID, ErrDuplicateNetID, def.NetID)
	}
	seen[def.NetID] = true

	if def.MaxStack < 0 {
		return fmt.Errorf(ErrFmtItemNegativeMaxStack, ErrInvalidConfig, def.NetID)
	}
	if def.Value < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, def.NetID)
	}
	return nil
}
