package usecase

import (
	"personal-timeline/internal/model"
	"personal-timeline/internal/timeline"
)

// summarize computes the headline counts over the whole collection.
// Undated items count here even though no grid will place them; the
// summary is global and ignores the rendered window.
func summarize(coll model.Collection) timeline.Summary {
	sum := timeline.Summary{
		TotalTasks: len(coll.Tasks),
		Milestones: len(coll.Milestones),
	}
	for _, t := range coll.Tasks {
		switch t.Status {
		case model.StatusInProgress:
			sum.InProgress++
		case model.StatusDone:
			sum.Done++
		}
	}
	return sum
}
