// Package dataset reads and writes catalog datasets in YAML form. The
// reference dataset ships inside the binary.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/you-humble/knowledge-archive/internal/model"
)

//go:embed dataset.yaml
var embedded []byte

// Embedded decodes the dataset compiled into the binary.
func Embedded() (model.Dataset, error) {
	const op = "dataset.Embedded"

	ds, err := Decode(bytes.NewReader(embedded))
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}

// LoadFile decodes the dataset stored at path.
func LoadFile(path string) (model.Dataset, error) {
	const op = "dataset.LoadFile"

	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return ds, nil
}

// Decode reads one YAML document. Unknown keys are rejected.
func Decode(r io.Reader) (model.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Dataset{}, nil
		}
		return model.Dataset{}, errors.Join(model.ErrInvalidDataset, err)
	}

	return documentToModel(doc), nil
}

// Encode writes ds as YAML.
func Encode(w io.Writer, ds model.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documentFromModel(ds)); err != nil {
		return err
	}
	return enc.Close()
}
