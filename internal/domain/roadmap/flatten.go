package roadmap

import "strconv"

// TopicRef pins one incomplete topic to its position in the phase document.
// The flat index (position within the slice returned by
// FlattenIncompleteTopics) is the only addressing the scheduling model sees;
// TopicRef carries the nested position back for reconciliation. The mapping is
// only valid against the same document it was flattened from.
type TopicRef struct {
	Name       string
	PhaseIndex int
	TopicIndex int
}

// FlattenIncompleteTopics walks phases in order and collects every topic not
// yet completed, preserving document order.
func FlattenIncompleteTopics(r *Roadmap) []TopicRef {
	var refs []TopicRef
	for pIdx, phase := range r.Phases {
		for tIdx, topic := range phase.Topics {
			if topic.Completed {
				continue
			}
			refs = append(refs, TopicRef{
				Name:       topic.TopicName,
				PhaseIndex: pIdx,
				TopicIndex: tIdx,
			})
		}
	}
	return refs
}

// ApplySchedule writes due dates keyed by stringified flat index back into the
// phase document. Keys that do not parse as integers, or that point outside
// the flattened list or the current document, are skipped; partial schedules
// are acceptable. Returns the number of topics updated.
func ApplySchedule(r *Roadmap, refs []TopicRef, schedule map[string]string) int {
	updated := 0
	for key, dueDate := range schedule {
		flatIdx, err := strconv.Atoi(key)
		if err != nil || flatIdx < 0 || flatIdx >= len(refs) {
			continue
		}
		ref := refs[flatIdx]
		if ref.PhaseIndex >= len(r.Phases) {
			continue
		}
		if ref.TopicIndex >= len(r.Phases[ref.PhaseIndex].Topics) {
			continue
		}
		r.Phases[ref.PhaseIndex].Topics[ref.TopicIndex].DueDate = dueDate
		updated++
	}
	return updated
}
