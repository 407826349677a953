package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rmohr/reductor/pkg/api/reductor"
	"sigs.k8s.io/yaml"
)

type DatasetInit struct {
	CSV       string
	Decision  string
	Separator string
	File      string
}

// Init writes a dataset descriptor for a local CSV file. The decision column
// must exist in the header of the CSV file.
func (d *DatasetInit) Init() error {
	_, err := os.Stat(d.File)
	if !os.IsNotExist(err) {
		return fmt.Errorf("dataset file %s already exists", d.File)
	}
	f, err := Open(context.Background(), d.CSV)
	if err != nil {
		return err
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	if d.Separator != "" {
		reader.Comma, _ = utf8.DecodeRuneInString(d.Separator)
	}
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %v", d.CSV, err)
	}
	decision := d.Decision
	if decision == "" {
		decision = strings.TrimSpace(header[len(header)-1])
	}
	found := false
	for _, h := range header {
		if strings.TrimSpace(h) == decision {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("decision column %q not found in header %v", decision, header)
	}

	// paths in dataset files are relative to the dataset file
	path := d.CSV
	if abs, err := filepath.Abs(d.CSV); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(d.File)); err == nil {
			if rel, err := filepath.Rel(dir, abs); err == nil {
				path = rel
			}
		}
	}
	ds := &reductor.Dataset{
		Name:      strings.TrimSuffix(filepath.Base(d.CSV), filepath.Ext(d.CSV)),
		Path:      path,
		Decision:  decision,
		Missing:   []string{"?", ""},
		Separator: d.Separator,
	}
	data, err := yaml.Marshal(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(d.File, data, 0660)
}

func NewDatasetInit(csvFile string, decision string, separator string, file string) *DatasetInit {
	return &DatasetInit{
		CSV:       csvFile,
		Decision:  decision,
		Separator: separator,
		File:      file,
	}
}

func LoadDatasetFile(file string) (*reductor.Dataset, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ds := &reductor.Dataset{}
	if err := yaml.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %v", file, err)
	}
	if ds.Path == "" && ds.URL == "" {
		return nil, fmt.Errorf("dataset file %s has neither a path nor an url", file)
	}
	if ds.Path != "" && !filepath.IsAbs(ds.Path) {
		ds.Path = filepath.Join(filepath.Dir(file), ds.Path)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return ds, nil
}
