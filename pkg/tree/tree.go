// Package tree assembles a flat list of goal nodes into a sorted forest.
package tree

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nkaz/questline/pkg/entity"
)

type Node struct {
	*entity.GoalNode
	Children []*Node `json:"children"`
}

// AssembleForest builds a multi-root forest from a flat node list. A node
// becomes a root when it has no parent or when its parent is absent from the
// input set; partially fetched subtrees therefore surface at the top level
// instead of disappearing. Siblings are ordered by Order when both define it,
// otherwise by CreatedAt, recursively on every level. The input is not
// modified.
func AssembleForest(goals []*entity.GoalNode) []*Node {
	index := make(map[uuid.UUID]*Node, len(goals))
	for _, g := range goals {
		index[g.ID] = &Node{GoalNode: g, Children: []*Node{}}
	}
	roots := make([]*Node, 0)
	for _, g := range goals {
		node := index[g.ID]
		if g.ParentID != nil {
			if parent, ok := index[*g.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	sortSiblings(roots)
	return roots
}

func sortSiblings(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Order != nil && b.Order != nil {
			return *a.Order < *b.Order
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	for _, n := range nodes {
		sortSiblings(n.Children)
	}
}
