package figures

import "time"

// tickPlan pairs tick positions with their display labels. Positions are
// zero-based sequential integers, matching the trace convention of plotting
// against sequential x rather than raw dates so that calendar gaps do not
// distort bar spacing.
type tickPlan struct {
	Values []int
	Labels []string
}

// planTicks derives the tick plan for a time index. Indexes up to
// XAxisLengthThreshold get one tick per entry; longer indexes keep every
// second entry to hold label density readable at chart width.
func planTicks(index []time.Time, period Period) tickPlan {
	stride := 1
	if len(index) > XAxisLengthThreshold {
		stride = 2
	}

	plan := tickPlan{
		Values: make([]int, 0, (len(index)+stride-1)/stride),
		Labels: make([]string, 0, (len(index)+stride-1)/stride),
	}
	for i := 0; i < len(index); i += stride {
		plan.Values = append(plan.Values, i)
		plan.Labels = append(plan.Labels, period.Label(index[i]))
	}
	return plan
}

// sequence returns 0..n-1 as float64 x positions.
func sequence(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
