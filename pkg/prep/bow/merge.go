package bow

import (
	"fmt"
	"sort"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
)

// MergeByDocID regroups a corpus by external document ID: rows are stably
// reordered by ascending ID, and rows sharing the same ID are summed per
// term into one row. Returns the deduplicated ID list and the merged
// corpus, positionally aligned. ids must have one entry per corpus row.
func MergeByDocID(c Corpus, ids []int) ([]int, Corpus, error) {
	if len(c) != len(ids) {
		return nil, nil, fmt.Errorf("%w: corpus has %d docs, ids has %d",
			internalerr.ErrLengthMismatch, len(c), len(ids))
	}

	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ids[order[i]] < ids[order[j]]
	})

	var mergedIDs []int
	var merged Corpus
	for i := 0; i < len(order); {
		id := ids[order[i]]
		counts := make(map[int]int)
		for ; i < len(order) && ids[order[i]] == id; i++ {
			for _, e := range c[order[i]] {
				counts[e.ID] += e.Count
			}
		}

		row := make(Document, 0, len(counts))
		for termID, count := range counts {
			row = append(row, Entry{ID: termID, Count: count})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].ID < row[b].ID })

		mergedIDs = append(mergedIDs, id)
		merged = append(merged, row)
	}

	return mergedIDs, merged, nil
}
