package reconcile

import (
	"sort"
	"strings"
)

// Node describes one record for dependency ordering.
type Node struct {
	ID string
	// Parent is the raw parent reference of the record.
	Parent string
}

// OrderByParent returns the indices of nodes in an order where every node whose
// parent is batch-internal (isInternal(parent) is true) comes after that parent.
// Nodes with an external parent are ready immediately. Among ready nodes the input
// order is kept.
//
// An internal parent that is not part of the batch, or a reference cycle, is a
// fatal ordering error.
func OrderByParent(nodes []Node, isInternal func(parent string) bool) ([]int, error) {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	indegree := make([]int, len(nodes))
	children := make(map[int][]int)
	var orphans []string

	for i, n := range nodes {
		if !isInternal(n.Parent) {
			continue
		}
		p, ok := index[n.Parent]
		if !ok {
			orphans = append(orphans, n.ID)
			continue
		}
		indegree[i]++
		children[p] = append(children[p], i)
	}

	if len(orphans) > 0 {
		return nil, Fatal(KindOrdering, "parent organization is not part of the batch", map[string]string{
			"ids": strings.Join(orphans, ","),
		})
	}

	// queue holds ready indices; kept sorted so output follows input order.
	var queue []int
	for i := range nodes {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(nodes))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, child := range children[cur] {
			indegree[child]--
			if indegree[child] == 0 {
				queue = append(queue, child)
				sort.Ints(queue)
			}
		}
	}

	if len(order) != len(nodes) {
		var stuck []string
		for i, d := range indegree {
			if d > 0 {
				stuck = append(stuck, nodes[i].ID)
			}
		}
		return nil, Fatal(KindOrdering, "organization parent references form a cycle", map[string]string{
			"ids": strings.Join(stuck, ","),
		})
	}
	return order, nil
}
