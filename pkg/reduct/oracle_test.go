package reduct

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
)

func TestScoreAll(t *testing.T) {
	u := randomUniverse(7, 300, 6, 3)
	candidates := []api.AttributeSet{{}, {1}, {2}, {1, 2}, {1, 2, 6}, {6, 2, 1}, {3, 4, 5}, nil}

	tests := []struct {
		name    string
		workers int
		measure significance.Measure
	}{
		{name: "should score sequentially", workers: 1, measure: significance.PositiveRegion},
		{name: "should score in parallel", workers: 4, measure: significance.PositiveRegion},
		{name: "should default to GOMAXPROCS workers", workers: 0, measure: significance.Dependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			scores, err := ScoreAll(context.Background(), u, candidates, tt.measure, tt.workers)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(scores).To(HaveLen(len(candidates)))
			for i, c := range candidates {
				expected, err := significance.Significance(u, c, tt.measure)
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(scores[i]).To(Equal(expected))
			}
			g.Expect(scores[4]).To(Equal(scores[5]))
		})
	}
}

func TestScoreAllIllegalAttribute(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := ScoreAll(context.Background(), exampleUniverse(), []api.AttributeSet{{1}, {5}, {2}}, nil, 2)
	g.Expect(err).To(MatchError(api.ErrIllegalAttribute))
}

func TestScoreAllCanceled(t *testing.T) {
	g := NewGomegaWithT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScoreAll(ctx, exampleUniverse(), []api.AttributeSet{{1}, {2}}, nil, 1)
	g.Expect(err).To(MatchError(context.Canceled))
}
