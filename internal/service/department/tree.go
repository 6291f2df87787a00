package department

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
)

// FlattenEmployees walks the forest depth-first, pre-order: a node's own
// employees come before its children's. An employee reachable from several
// nodes is listed once, at its first position.
func FlattenEmployees(forest []department.Department) ([]department.EmployeeRef, error) {
	w := walker{
		visited: make(map[int64]bool),
		seen:    make(map[int64]bool),
	}
	for i := range forest {
		if err := w.collect(&forest[i]); err != nil {
			return nil, err
		}
	}
	return w.refs, nil
}

type walker struct {
	visited map[int64]bool
	seen    map[int64]bool
	refs    []department.EmployeeRef
}

func (w *walker) collect(d *department.Department) error {
	if w.visited[d.ID] {
		return fmt.Errorf("%w: department %d reached twice", department.ErrCyclicHierarchy, d.ID)
	}
	w.visited[d.ID] = true

	for _, e := range d.Employees {
		if w.seen[e.ID] {
			continue
		}
		w.seen[e.ID] = true
		w.refs = append(w.refs, department.EmployeeRef{
			ID:          e.ID,
			HikvisionID: e.HikvisionID,
			Name:        e.Name,
		})
	}

	for i := range d.Children {
		if err := w.collect(&d.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// SearchEmployees keeps refs whose name or external identifier contains
// query, case-insensitively, and sorts the result by name. A blank query
// keeps everything. refs is not modified.
func SearchEmployees(refs []department.EmployeeRef, query string, cmp collation.Compare) []department.EmployeeRef {
	out := make([]department.EmployeeRef, 0, len(refs))
	if strings.TrimSpace(query) == "" {
		out = append(out, refs...)
	} else {
		q := strings.ToLower(query)
		for _, r := range refs {
			if strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.HikvisionID), q) {
				out = append(out, r)
			}
		}
	}

	slices.SortStableFunc(out, func(a, b department.EmployeeRef) int {
		return cmp(a.Name, b.Name)
	})
	return out
}

// FilterTree renders the forest for the multi-select picker. Each level is
// filtered on its own: a department stays when its display path contains
// query, and a department that does not match is dropped with its subtree.
func FilterTree(forest []department.Department, query string, selected map[int64]bool) ([]department.TreeNode, error) {
	f := treeFilter{
		query:    strings.ToLower(query),
		blank:    strings.TrimSpace(query) == "",
		selected: selected,
		visited:  make(map[int64]bool),
	}
	return f.level(forest, 0)
}

type treeFilter struct {
	query    string
	blank    bool
	selected map[int64]bool
	visited  map[int64]bool
}

func (f *treeFilter) level(depts []department.Department, depth int) ([]department.TreeNode, error) {
	nodes := make([]department.TreeNode, 0, len(depts))
	for i := range depts {
		d := &depts[i]
		if f.visited[d.ID] {
			return nil, fmt.Errorf("%w: department %d reached twice", department.ErrCyclicHierarchy, d.ID)
		}
		f.visited[d.ID] = true

		path := d.DisplayPath()
		if !f.blank && !strings.Contains(strings.ToLower(path), f.query) {
			continue
		}

		children, err := f.level(d.Children, depth+1)
		if err != nil {
			return nil, err
		}
		node := department.TreeNode{
			ID:       d.ID,
			Name:     d.Name,
			FullPath: path,
			Level:    depth,
			Selected: f.selected[d.ID],
		}
		if len(children) > 0 {
			node.Children = children
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ToggleSelection adds id when absent and removes it when present. The
// remaining ids keep their order; selected is not modified.
func ToggleSelection(selected []int64, id int64) []int64 {
	if i := slices.Index(selected, id); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), id)
}

// SelectionSet indexes ids for FilterTree.
func SelectionSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
