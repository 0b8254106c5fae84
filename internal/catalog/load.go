package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// ErrInvalidCatalog is matched by every ValidationError.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ValidationError describes the first malformed record found while loading.
type ValidationError struct {
	Category string
	Item     string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	where := "category " + quoteOrIndex(e.Category)
	if e.Item != "" {
		where += " item " + quoteOrIndex(e.Item)
	}
	return fmt.Sprintf("catalog error: %s: %s %s", where, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

func quoteOrIndex(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s
	}
	return fmt.Sprintf("%q", s)
}

type document struct {
	Palette    Palette    `yaml:"palette"`
	Categories []Category `yaml:"categories"`
}

// Default decodes the compiled-in sample table.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalogYAML))
}

// MustDefault is Default for program start; the embedded table is trusted.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadOrDefault reads the catalog at path, or the compiled-in table when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := Validate(doc.Categories); err != nil {
		return nil, err
	}
	return New(doc.Palette, doc.Categories), nil
}

// Validate checks that every category and item carries the fields the screens need.
func Validate(categories []Category) error {
	if len(categories) == 0 {
		return &ValidationError{Category: "#0", Field: "categories", Message: "must not be empty"}
	}
	for ci, cat := range categories {
		if cat.Name == "" {
			return &ValidationError{Category: fmt.Sprintf("#%d", ci), Field: "name", Message: "must not be empty"}
		}
		if cat.Image == "" {
			return &ValidationError{Category: cat.Name, Field: "image", Message: "must not be empty"}
		}
		for ii, it := range cat.Items {
			if it.Name == "" {
				return &ValidationError{Category: cat.Name, Item: fmt.Sprintf("#%d", ii), Field: "name", Message: "must not be empty"}
			}
			if err := validateItem(it); err != nil {
				err.Category = cat.Name
				err.Item = it.Name
				return err
			}
		}
	}
	return nil
}

func validateItem(it Item) *ValidationError {
	switch {
	case it.Price < 0:
		return &ValidationError{Field: "price", Message: "must not be negative"}
	case it.Delivery <= 0:
		return &ValidationError{Field: "delivery", Message: "must be positive"}
	case it.Size == "":
		return &ValidationError{Field: "size", Message: "must not be empty"}
	case it.Crust == "":
		return &ValidationError{Field: "crust", Message: "must not be empty"}
	case it.Image == "":
		return &ValidationError{Field: "image", Message: "must not be empty"}
	case len(it.Ingredients) == 0:
		return &ValidationError{Field: "ingredients", Message: "must not be empty"}
	}
	return nil
}
