package reductor

// Dataset describes where a decision table lives and how its columns are
// read.
type Dataset struct {
	Name string `json:"name"`
	// Path of a local CSV file, optionally compressed.
	Path string `json:"path,omitempty"`
	// URL of a remote CSV file, fetched into the cache directory.
	URL    string `json:"url,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
	// Decision names the decision column, or gives its 1-based column number.
	// Defaults to the last column.
	Decision  string   `json:"decision,omitempty"`
	Ignore    []string `json:"ignore,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	Separator string   `json:"separator,omitempty"`
	NoHeader  bool     `json:"noHeader,omitempty"`
}
