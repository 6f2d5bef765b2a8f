// Package scoring reduces normalized signals to the display score, risk tier,
// and ranked explanation shown to the user.
package scoring

import "math"

// Weighting of the two score sources. Job-content risk is the primary signal;
// company verification is corroborating evidence.
const (
	jobWeight     = 0.6
	companyWeight = 0.4
)

// Combine merges a job score with an optional company score into the display
// score. With no company score the job score passes through unchanged. The
// result is clamped to [0,100].
func Combine(jobScore int, companyScore *int) int {
	if companyScore == nil {
		return clamp(jobScore)
	}
	blended := jobWeight*float64(jobScore) + companyWeight*float64(*companyScore)
	return clamp(int(math.Round(blended)))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
