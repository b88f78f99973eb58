package organization

import (
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

// Node is one department in the rooted view of the organization. Children
// keep the input order of the flat list; nothing is sorted by name.
type Node struct {
	Department masterdata.Department `json:"department"`
	Children   []*Node               `json:"children,omitempty"`

	// Matched and Expanded are presentation state set by Search. Matched
	// marks a node hit by the predicate; Expanded marks every ancestor of a
	// match so the UI can open the chain.
	Matched  bool `json:"matched,omitempty"`
	Expanded bool `json:"expanded,omitempty"`
}

// BuildTree converts the flat department list into a forest. A department
// whose parent id does not resolve to any department in the list is treated
// as a root; orphaned records are tolerated, not errors. The resulting
// structure is independent of input order, while child ordering within a node
// follows input order.
func BuildTree(departments []masterdata.Department) []*Node {
	nodes := make(map[string]*Node, len(departments))
	for _, d := range departments {
		nodes[d.ID] = &Node{Department: d}
	}

	var roots []*Node
	for _, d := range departments {
		node := nodes[d.ID]
		if d.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*d.ParentID]
		if !ok {
			// orphaned record, promote to root
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}

// FindHead returns the department's head: the first employee in stored order
// assigned to the department whose job title has the head flag and whose
// resolved managed-department set includes the department. Returns nil when
// no head is configured. The first-match tie-break is deliberate; when
// multiple heads qualify the pick follows store order, nothing smarter.
func FindHead(departmentID string, snap *masterdata.Snapshot, employees []*employee.Employee) *employee.Employee {
	for _, emp := range employees {
		if emp.DepartmentID != departmentID {
			continue
		}
		title, ok := snap.JobTitleByID(emp.JobTitleID)
		if !ok || !title.IsHeadOfDepartment {
			continue
		}
		if snap.ManagedDepartmentIDs(title)[departmentID] {
			return emp
		}
	}
	return nil
}

// Search marks nodes matching the predicate and, when any match exists,
// expands every ancestor chain leading to a match. Returns the number of
// matches. Purely presentation state; the tree structure is untouched.
func Search(roots []*Node, predicate func(masterdata.Department) bool) int {
	matches := 0
	for _, root := range roots {
		if searchNode(root, predicate) {
			matches += countMatches(root)
		}
	}
	return matches
}

// searchNode reports whether the subtree contains a match, setting Matched on
// hits and Expanded on ancestors of hits.
func searchNode(node *Node, predicate func(masterdata.Department) bool) bool {
	node.Matched = predicate(node.Department)

	childHit := false
	for _, child := range node.Children {
		if searchNode(child, predicate) {
			childHit = true
		}
	}
	node.Expanded = childHit

	return node.Matched || childHit
}

func countMatches(node *Node) int {
	n := 0
	if node.Matched {
		n = 1
	}
	for _, child := range node.Children {
		n += countMatches(child)
	}
	return n
}
