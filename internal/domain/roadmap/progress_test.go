package roadmap

import "testing"

func buildRoadmap() *Roadmap {
	r := &Roadmap{
		Skill: "Go",
		Phases: []Phase{
			{
				PhaseName: "Beginner",
				Topics: []Topic{
					{TopicName: "Syntax"},
					{TopicName: "Slices"},
				},
				Resources: []Resource{
					{Title: "Tour of Go", URL: "https://go.dev/tour", Type: "website"},
				},
			},
		},
	}
	r.SetCapstone(&Task{Title: "CLI tool", Description: "Build a CLI"})
	return r
}

func TestProgressPercentEmptyRoadmap(t *testing.T) {
	r := &Roadmap{Skill: "Go"}
	if got := ProgressPercent(r); got != 0 {
		t.Fatalf("expected 0 percent for empty roadmap, got %d", got)
	}
	if AllComplete(r) {
		t.Fatalf("empty roadmap must not be complete")
	}
}

func TestProgressPercentPartial(t *testing.T) {
	r := buildRoadmap()
	// 2 topics + 1 resource + 1 capstone = 4 items; complete 3.
	r.Phases[0].Topics[0].Completed = true
	r.Phases[0].Topics[1].Completed = true
	r.Phases[0].Resources[0].Completed = true

	total, completed := CountItems(r)
	if total != 4 || completed != 3 {
		t.Fatalf("expected 3/4 items, got %d/%d", completed, total)
	}
	if got := ProgressPercent(r); got != 75 {
		t.Fatalf("expected 75 percent, got %d", got)
	}
	if AllComplete(r) {
		t.Fatalf("roadmap with an incomplete capstone must not be complete")
	}
}

func TestProgressPercentCountsHandsOnProject(t *testing.T) {
	r := buildRoadmap()
	r.Phases[0].HandsOnProject = &Task{Title: "Mini project"}

	total, _ := CountItems(r)
	if total != 5 {
		t.Fatalf("expected hands-on project to count as an item, got total %d", total)
	}
}

func TestRecomputeCompletion(t *testing.T) {
	r := buildRoadmap()
	r.Phases[0].Topics[0].Completed = true
	r.Phases[0].Topics[1].Completed = true
	r.Phases[0].Resources[0].Completed = true
	capstone := r.Capstone()
	capstone.Completed = true
	r.SetCapstone(capstone)

	RecomputeCompletion(r)
	if !r.IsCompleted {
		t.Fatalf("expected roadmap to be marked completed")
	}

	// Idempotent on an unchanged document.
	RecomputeCompletion(r)
	if !r.IsCompleted {
		t.Fatalf("recompute flipped a completed roadmap")
	}

	r.Phases[0].Topics[1].Completed = false
	RecomputeCompletion(r)
	if r.IsCompleted {
		t.Fatalf("expected roadmap to be marked incomplete after a topic reverted")
	}
}
