package dataset

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rmohr/reductor/pkg/api/reductor"
	"github.com/spf13/cobra"
)

type CacheHelper struct {
	CacheDir string
}

var cacheDir string

func AddCacheHelperFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cacheDir, "cache-dir", DefaultCacheDir(), "directory for fetched datasets")
}

func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, "reductor")
}

// NewCacheHelper uses the directory configured on the command line.
func NewCacheHelper() *CacheHelper {
	if cacheDir == "" {
		return &CacheHelper{CacheDir: DefaultCacheDir()}
	}
	return &CacheHelper{CacheDir: cacheDir}
}

// Path is the location of a fetched dataset inside the cache. The file keeps
// the base name of the URL, so that compressed files keep their extension.
func (r *CacheHelper) Path(ds *reductor.Dataset) string {
	name := "data.csv"
	if u, err := url.Parse(ds.URL); err == nil && path.Base(u.Path) != "." && path.Base(u.Path) != "/" {
		name = path.Base(u.Path)
	}
	return filepath.Join(r.CacheDir, ds.Name, name)
}

func (r *CacheHelper) Write(ds *reductor.Dataset, body io.Reader) error {
	file := r.Path(ds)
	dir := filepath.Dir(file)

	err := os.MkdirAll(dir, 0770)
	if err != nil && !os.IsExist(err) {
		return fmt.Errorf("failed to create cache directory for %s: %v", ds.Name, err)
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %v", file, err)
	}
	defer f.Close()
	_, err = io.Copy(f, body)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %v", file, err)
	}
	return nil
}

func (r *CacheHelper) Exists(ds *reductor.Dataset) bool {
	_, err := os.Stat(r.Path(ds))
	return err == nil
}
