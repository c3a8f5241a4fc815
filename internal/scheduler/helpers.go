package scheduler

import (
	"sort"

	"github.com/rhyrak/class-scheduler/pkg/model"
)

// sortByLoad returns a copy of teachers ordered by ascending assignment count.
// Teachers with equal counts keep their input order.
func sortByLoad(teachers []*model.Teacher) []*model.Teacher {
	sorted := make([]*model.Teacher, len(teachers))
	copy(sorted, teachers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count < sorted[j].Count
	})
	return sorted
}

func containsString(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
