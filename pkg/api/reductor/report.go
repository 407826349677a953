package reductor

type Step struct {
	Attribute    string  `json:"attribute"`
	Significance float64 `json:"significance"`
	Boundary     int     `json:"boundary"`
}

// Report is the outcome of one reduct computation as written by the reduct
// command.
type Report struct {
	Dataset      string   `json:"dataset"`
	Measure      string   `json:"measure"`
	Instances    int      `json:"instances"`
	Attributes   []string `json:"attributes"`
	Core         []string `json:"core"`
	Candidate    []string `json:"candidate,omitempty"`
	Reduct       []string `json:"reduct"`
	Significance float64  `json:"significance"`
	Steps        []Step   `json:"steps,omitempty"`
	Minimum      []string `json:"minimum,omitempty"`
	Duration     string   `json:"duration,omitempty"`
}
