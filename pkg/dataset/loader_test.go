package dataset

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/api/reductor"
)

const weather = `outlook,temperature,windy,play
sunny,hot,false,no
sunny,hot,true,no
overcast,hot,false,yes
rainy,mild,?,yes
rainy,cool,false,yes
`

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		csv        string
		dataset    reductor.Dataset
		attributes []string
		instances  []api.Instance
		err        error
	}{
		{name: "should move the last column to the decision",
			csv:        weather,
			dataset:    reductor.Dataset{Name: "weather"},
			attributes: []string{"play", "outlook", "temperature", "windy"},
			instances: []api.Instance{
				{0, 2, 1, 0},
				{0, 2, 1, 1},
				{1, 0, 1, 0},
				{1, 1, 2, api.Missing},
				{1, 1, 0, 0},
			},
		},
		{name: "should use the named decision column and ignore columns",
			csv:        weather,
			dataset:    reductor.Dataset{Name: "weather", Decision: "outlook", Ignore: []string{"temperature"}},
			attributes: []string{"outlook", "windy", "play"},
			instances: []api.Instance{
				{2, 0, 0},
				{2, 1, 0},
				{0, 0, 1},
				{1, api.Missing, 1},
				{1, 0, 1},
			},
		},
		{name: "should honor custom missing markers and separators",
			csv:        "a;b;d\nx;NA;1\ny;z;2\n",
			dataset:    reductor.Dataset{Name: "custom", Separator: ";", Missing: []string{"NA"}},
			attributes: []string{"d", "a", "b"},
			instances: []api.Instance{
				{0, 0, api.Missing},
				{1, 1, 0},
			},
		},
		{name: "should name columns without header",
			csv:        "1,2\n3,4\n",
			dataset:    reductor.Dataset{Name: "raw", NoHeader: true},
			attributes: []string{"c2", "c1"},
			instances: []api.Instance{
				{0, 0},
				{1, 1},
			},
		},
		{name: "should fail on an unknown decision column",
			csv:     weather,
			dataset: reductor.Dataset{Name: "weather", Decision: "humidity"},
			err:     api.ErrIllegalAttribute,
		},
		{name: "should fail on an empty file",
			csv:     "",
			dataset: reductor.Dataset{Name: "empty"},
			err:     api.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			table, err := Decode(strings.NewReader(tt.csv), &tt.dataset)
			if tt.err != nil {
				g.Expect(err).To(MatchError(tt.err))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(table.Attributes).To(Equal(tt.attributes))
			g.Expect(table.Instances).To(Equal(tt.instances))
		})
	}
}

func TestLabel(t *testing.T) {
	g := NewGomegaWithT(t)
	table, err := Decode(strings.NewReader(weather), &reductor.Dataset{Name: "weather"})
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(table.Label(0, 1)).To(Equal("yes"))
	g.Expect(table.Label(1, 0)).To(Equal("overcast"))
	g.Expect(table.Label(3, api.Missing)).To(Equal("?"))
	g.Expect(table.Label(3, 17)).To(Equal("17"))
}

func TestUsableAttributes(t *testing.T) {
	g := NewGomegaWithT(t)
	u := api.MustUniverse(
		api.Instance{0, 1, api.Missing, 0},
		api.Instance{1, 2, api.Missing, api.Missing},
	)
	g.Expect(UsableAttributes(u, nil)).To(Equal(api.AttributeSet{1, 3}))
	g.Expect(UsableAttributes(u, api.AttributeSet{2})).To(BeEmpty())
	g.Expect(UsableAttributes(u, api.AttributeSet{4})).To(BeEmpty())
}

func TestCSVLoader(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()

	plain := filepath.Join(dir, "weather.csv")
	g.Expect(os.WriteFile(plain, []byte(weather), 0600)).To(Succeed())

	compressed := filepath.Join(dir, "weather.csv.gz")
	f, err := os.Create(compressed)
	g.Expect(err).ToNot(HaveOccurred())
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(weather))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(w.Close()).To(Succeed())
	g.Expect(f.Close()).To(Succeed())

	expected, err := NewCSVLoader(&reductor.Dataset{Name: "weather", Path: plain}, nil).Load(context.Background())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(expected.Size()).To(Equal(5))

	table, err := NewCSVLoader(&reductor.Dataset{Name: "weather", Path: compressed}, nil).Load(context.Background())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(table.Instances).To(Equal(expected.Instances))
	g.Expect(table.Values).To(Equal(expected.Values))
}

func TestCSVLoaderFromCache(t *testing.T) {
	g := NewGomegaWithT(t)
	cache := &CacheHelper{CacheDir: t.TempDir()}
	ds := &reductor.Dataset{Name: "weather", URL: "https://example.com/data/weather.csv"}
	g.Expect(cache.Write(ds, strings.NewReader(weather))).To(Succeed())
	g.Expect(cache.Path(ds)).To(HaveSuffix(filepath.Join("weather", "weather.csv")))

	table, err := NewCSVLoader(ds, cache).Load(context.Background())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(table.ConditionalCount()).To(Equal(3))

	_, err = NewCSVLoader(&reductor.Dataset{Name: "remote"}, nil).Load(context.Background())
	g.Expect(err).To(HaveOccurred())
}
