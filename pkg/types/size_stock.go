package types

import (
	"sort"

	"github.com/uniformworks/portal-backend/pkg/enums"
)

// SizeStock is a sparse mapping from size label to per-size stock count.
type SizeStock map[string]int

// Total returns the aggregate stock derived from the per-size counts. The
// stored aggregate on a product is seed-time legacy; this derivation is the
// authoritative value whenever per-size counts are present.
func (s SizeStock) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// Labels returns the size labels in display order.
func (s SizeStock) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, rj := enums.Size(labels[i]).DisplayOrder(), enums.Size(labels[j]).DisplayOrder()
		if ri != rj {
			return ri < rj
		}
		return labels[i] < labels[j]
	})
	return labels
}
