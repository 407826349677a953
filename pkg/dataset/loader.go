package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mholt/archives"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/api/reductor"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Table is a loaded universe together with the dictionaries which map the
// integer codes back to the original values.
type Table struct {
	*api.Universe
	// Values[a][code] is the original value of code in column a.
	Values [][]string
}

// Label returns the original value behind a code of an attribute.
func (t *Table) Label(attribute, code int) string {
	if code == api.Missing {
		return "?"
	}
	if attribute < len(t.Values) && code >= 0 && code < len(t.Values[attribute]) {
		return t.Values[attribute][code]
	}
	return strconv.Itoa(code)
}

type TableLoader interface {
	Load(ctx context.Context) (*Table, error)
}

type CSVLoader struct {
	dataset     *reductor.Dataset
	cacheHelper *CacheHelper
}

func NewCSVLoader(ds *reductor.Dataset, cacheHelper *CacheHelper) *CSVLoader {
	return &CSVLoader{dataset: ds, cacheHelper: cacheHelper}
}

func (l *CSVLoader) Load(ctx context.Context) (*Table, error) {
	file := l.dataset.Path
	if file == "" {
		if l.cacheHelper == nil {
			return nil, fmt.Errorf("dataset %s has no local path and no cache is configured", l.dataset.Name)
		}
		file = l.cacheHelper.Path(l.dataset)
	}
	r, err := Open(ctx, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Decode(r, l.dataset)
}

// Open opens a possibly compressed file. Any compression format known to
// archives is decompressed transparently, archive formats are rejected.
func Open(ctx context.Context, file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	format, stream, err := archives.Identify(ctx, file, f)
	if errors.Is(err, archives.NoMatch) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	} else if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to identify format of %s: %v", file, err)
	}
	if _, ok := format.(archives.Extractor); ok {
		f.Close()
		return nil, fmt.Errorf("%s is an archive, only plain or compressed CSV files are supported", file)
	}
	decompressor, ok := format.(archives.Decompressor)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("format %s of %s is not supported", format.Extension(), file)
	}
	rc, err := decompressor.OpenReader(stream)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decompress %s: %v", file, err)
	}
	logrus.Debugf("Decompressing %s as %s.", file, format.Extension())
	return &closers{ReadCloser: rc, file: f}, nil
}

type closers struct {
	io.ReadCloser
	file *os.File
}

func (c *closers) Close() error {
	err := c.ReadCloser.Close()
	if ferr := c.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Decode reads a CSV table and codes every column with a dictionary of its
// sorted distinct values. The decision column becomes attribute 0, the other
// columns keep their relative order.
func Decode(r io.Reader, ds *reductor.Dataset) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	if ds.Separator != "" {
		sep, _ := utf8.DecodeRuneInString(ds.Separator)
		reader.Comma = sep
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %v", ds.Name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty: %w", ds.Name, api.ErrInvalidInput)
	}

	var header []string
	if ds.NoHeader {
		for i := range rows[0] {
			header = append(header, "c"+strconv.Itoa(i+1))
		}
	} else {
		header, rows = rows[0], rows[1:]
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}

	decision, err := decisionColumn(header, ds.Decision)
	if err != nil {
		return nil, err
	}
	columns := []int{decision}
	for i, h := range header {
		if i == decision {
			continue
		}
		if slices.Contains(ds.Ignore, h) {
			logrus.Infof("Ignoring column %s.", h)
			continue
		}
		columns = append(columns, i)
	}

	missing := ds.Missing
	if missing == nil {
		missing = []string{"?", ""}
	}
	isMissing := func(v string) bool {
		return slices.Contains(missing, v)
	}

	values := make([][]string, len(columns))
	codes := make([]map[string]int, len(columns))
	for a, col := range columns {
		distinct := map[string]struct{}{}
		for i, row := range rows {
			if len(row) != len(header) {
				return nil, fmt.Errorf("row %d of %s has %d fields, expected %d: %w", i+1, ds.Name, len(row), len(header), api.ErrInvalidInput)
			}
			if v := strings.TrimSpace(row[col]); !isMissing(v) {
				distinct[v] = struct{}{}
			}
		}
		keys := maps.Keys(distinct)
		slices.Sort(keys)
		values[a] = keys
		codes[a] = make(map[string]int, len(keys))
		for code, v := range keys {
			codes[a][v] = code
		}
	}

	instances := make([]api.Instance, 0, len(rows))
	for _, row := range rows {
		inst := make(api.Instance, len(columns))
		for a, col := range columns {
			v := strings.TrimSpace(row[col])
			if isMissing(v) {
				inst[a] = api.Missing
			} else {
				inst[a] = codes[a][v]
			}
		}
		instances = append(instances, inst)
	}

	names := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, header[col])
	}
	u, err := api.NewUniverse(ds.Name, names, instances)
	if err != nil {
		return nil, err
	}
	return &Table{Universe: u, Values: values}, nil
}

func decisionColumn(header []string, decision string) (int, error) {
	if decision == "" {
		return len(header) - 1, nil
	}
	for i, h := range header {
		if h == decision {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(decision); err == nil && n >= 1 && n <= len(header) {
		return n - 1, nil
	}
	return -1, fmt.Errorf("decision column %q not found in %v: %w", decision, header, api.ErrIllegalAttribute)
}

// UsableAttributes filters out attributes which are missing on every
// instance. The result is empty when no attribute is usable.
func UsableAttributes(u *api.Universe, attributes api.AttributeSet) api.AttributeSet {
	attributes, err := u.Resolve(attributes)
	if err != nil {
		return api.AttributeSet{}
	}
	usable := api.AttributeSet{}
	for _, a := range attributes {
		for _, inst := range u.Instances {
			if inst.Value(a) != api.Missing {
				usable = append(usable, a)
				break
			}
		}
		if !usable.Contains(a) {
			logrus.Warnf("Attribute %s is missing on every instance.", u.AttributeName(a))
		}
	}
	return usable
}
