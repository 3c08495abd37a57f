package gwaskit

import (
	"math"
	"sort"
)

// QQ pairs observed scores with the scores expected under a uniform
// null, both ascending.
type QQ struct {
	Expected []float64
	Observed []float64
	Max      float64 // largest value on either axis
}

// expectedScores is -log10(i/n) for i = 1..n, ascending.
func expectedScores(n int) []float64 {
	uni := make([]float64, n)
	for i := 0; i < n; i++ {
		// i counts down from n so the slice comes out ascending
		uni[i] = -math.Log10(float64(n-i) / float64(n))
	}
	return uni
}

// thin keeps every stride-th value of the first cut entries and all
// entries from cut on.
func thin(v []float64, cut, stride int) []float64 {
	out := make([]float64, 0, cut/stride+len(v)-cut+1)
	for i := 0; i < cut; i += stride {
		out = append(out, v[i])
	}
	return append(out, v[cut:]...)
}

// BuildQQ sorts scores and subsamples the bulk of the distribution
// (lower 90%) by stride, leaving the significant tail untouched.
func BuildQQ(scores []float64, stride int) *QQ {
	if stride < 1 {
		stride = 1
	}

	n := len(scores)

	obs := make([]float64, n)
	copy(obs, scores)
	sort.Float64s(obs)

	uni := expectedScores(n)

	cut := int(float64(n) * 0.9)

	qq := &QQ{
		Expected: thin(uni, cut, stride),
		Observed: thin(obs, cut, stride),
	}

	if n > 0 {
		qq.Max = math.Max(obs[n-1], uni[n-1])
	}

	return qq
}
