package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rmohr/reductor/pkg/api/reductor"
	log "github.com/sirupsen/logrus"
)

type Fetcher interface {
	Fetch(ds *reductor.Dataset) error
}

type FetcherImpl struct {
	Getter      Getter
	CacheHelper *CacheHelper
}

func NewRemoteFetcher(cacheHelper *CacheHelper) Fetcher {
	return &FetcherImpl{
		Getter:      NewGetter(),
		CacheHelper: cacheHelper,
	}
}

// Fetch downloads the dataset into the cache and verifies its checksum if
// the dataset declares one. A partially written file is removed again.
func (r *FetcherImpl) Fetch(ds *reductor.Dataset) error {
	if ds.URL == "" {
		return fmt.Errorf("dataset %s has no url to fetch from", ds.Name)
	}
	log.Infof("Fetching dataset %s from %s", ds.Name, ds.URL)
	resp, err := r.Getter.Get(ds.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %v", ds.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to download %s: %v", ds.URL, fmt.Errorf("status : %v", resp.StatusCode))
	}
	sha := sha256.New()
	body := io.TeeReader(resp.Body, sha)
	if err := r.CacheHelper.Write(ds, body); err != nil {
		return err
	}
	if ds.SHA256 != "" && ds.SHA256 != toHex(sha) {
		os.Remove(r.CacheHelper.Path(ds))
		return fmt.Errorf("expected sha256 sum %s, but got %s", ds.SHA256, toHex(sha))
	}
	log.Infof("Stored %s as %s", ds.Name, r.CacheHelper.Path(ds))
	return nil
}

type Getter interface {
	Get(url string) (resp *http.Response, err error)
}

type getterImpl struct {
	client *retryablehttp.Client
}

func NewGetter() Getter {
	client := retryablehttp.NewClient()
	client.RetryMax = 5
	client.RetryWaitMin = 500 * time.Millisecond
	client.Logger = nil
	return &getterImpl{client: client}
}

func fileGet(filename string) (*http.Response, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err // skipped wrapping the error since the error already begins with "open: "
	}

	resp := &http.Response{
		Status:     "OK",
		StatusCode: http.StatusOK,
		Body:       fp,
	}
	return resp, nil
}

func (g *getterImpl) Get(rawURL string) (*http.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse URL: %w", err)
	}
	if u.Scheme == "file" {
		return fileGet(u.Path)
	}
	return g.client.Get(rawURL)
}

func toHex(hasher hash.Hash) string {
	return hex.EncodeToString(hasher.Sum(nil))
}
