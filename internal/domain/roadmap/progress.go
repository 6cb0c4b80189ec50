package roadmap

import "math"

// CountItems tallies every leaf progress unit: topics, resources, each
// present hands-on project, and the capstone if present.
func CountItems(r *Roadmap) (total, completed int) {
	for _, phase := range r.Phases {
		for _, topic := range phase.Topics {
			total++
			if topic.Completed {
				completed++
			}
		}
		for _, res := range phase.Resources {
			total++
			if res.Completed {
				completed++
			}
		}
		if phase.HandsOnProject != nil {
			total++
			if phase.HandsOnProject.Completed {
				completed++
			}
		}
	}
	if capstone := r.Capstone(); capstone != nil {
		total++
		if capstone.Completed {
			completed++
		}
	}
	return total, completed
}

// ProgressPercent is round(100*completed/total); an empty roadmap is 0.
func ProgressPercent(r *Roadmap) int {
	total, completed := CountItems(r)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// AllComplete reports whether every leaf item is completed. An empty roadmap
// is not complete.
func AllComplete(r *Roadmap) bool {
	total, completed := CountItems(r)
	return total > 0 && completed == total
}

// RecomputeCompletion re-derives IsCompleted from the leaf flags. Idempotent:
// recomputing on an unchanged document never flips the result.
func RecomputeCompletion(r *Roadmap) {
	r.IsCompleted = AllComplete(r)
}
