package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpupo63/portfolio/errs"
	"github.com/rpupo63/portfolio/models"
)

//go:embed catalog.yaml
var embedded []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Projects []models.Project `yaml:"projects"`
	Blogs    []models.Blog    `yaml:"blogs"`
	Photos   []models.Photo   `yaml:"photos"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(embedded))
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", errs.ErrCatalogLoad, path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog. Unknown fields are rejected so typos in
// hand-edited files surface at startup.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: decoding yaml: %v", errs.ErrCatalogLoad, err)
	}
	return New(doc.Projects, doc.Blogs, doc.Photos), nil
}
