package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tarun-vijay/examseat/core/model"
)

// Utilization summarises room occupancy across capacity snapshots.
type Utilization struct {
	Rooms        int
	Mean         float64
	StdDev       float64
	MinimumRatio float64
	MaximumRatio float64
}

// Utilize computes occupancy ratio statistics (allotted over nominal
// capacity) for the given snapshots. Rooms without a positive capacity
// are ignored.
func Utilize(usage []model.CapacityUsage) Utilization {
	var ratios []float64
	for _, u := range usage {
		if u.Capacity <= 0 {
			continue
		}
		ratios = append(ratios, float64(u.Allotted)/float64(u.Capacity))
	}
	if len(ratios) == 0 {
		return Utilization{}
	}
	out := Utilization{
		Rooms:        len(ratios),
		Mean:         stat.Mean(ratios, nil),
		MinimumRatio: ratios[0],
		MaximumRatio: ratios[0],
	}
	if len(ratios) > 1 {
		out.StdDev = stat.StdDev(ratios, nil)
	}
	for _, r := range ratios[1:] {
		if r < out.MinimumRatio {
			out.MinimumRatio = r
		}
		if r > out.MaximumRatio {
			out.MaximumRatio = r
		}
	}
	return out
}
