// Package chain maintains the doubly-linked ordering of task
// templates within a (stage, creator) partition. All functions are
// pure: they operate on snapshots of partition records and never
// touch the store, so a rejected mutation leaves nothing to undo.
package chain

import "github.com/richcrm/richcrm/internal/models"

// node is the linkage view of a record inside the scratch graph.
// Pointer values are copied out of the records so speculative
// edits never alias persisted state.
type node struct {
	ttid string
	prev *string
	next *string
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// WouldCreateCycle reports whether applying the candidate's
// desired linkage on top of the given partition snapshot would
// produce a cycle. For updates the candidate's current record is
// first spliced out of the hypothetical list, then the new linkage
// is applied; detection is Floyd's slow/fast walk following next
// pointers from the candidate.
func WouldCreateCycle(partition models.TaskTemplates, candidate *models.TaskTemplate, isUpdate bool) bool {
	scratch := make(map[string]*node, len(partition)+1)
	for _, t := range partition {
		scratch[t.TTID] = &node{
			ttid: t.TTID,
			prev: clone(t.PrevTTID),
			next: clone(t.NextTTID),
		}
	}

	if isUpdate {
		spliceOut(scratch, candidate.TTID)
	}

	cand := &node{
		ttid: candidate.TTID,
		prev: clone(candidate.PrevTTID),
		next: clone(candidate.NextTTID),
	}
	scratch[cand.ttid] = cand

	// A prev pointer naming the candidate itself must still apply
	// its reverse edge, so a self-referential record walks into
	// itself and is rejected like any other loop.
	if cand.prev != nil {
		if p, ok := scratch[*cand.prev]; ok {
			p.next = &cand.ttid
		}
	}
	if cand.next != nil {
		if n, ok := scratch[*cand.next]; ok {
			n.prev = &cand.ttid
		}
	}

	slow, fast := cand, cand
	for {
		slow = step(scratch, slow)
		fast = step(scratch, step(scratch, fast))
		if slow == nil || fast == nil {
			return false
		}
		if slow.ttid == fast.ttid {
			return true
		}
	}
}

// spliceOut connects the neighbors of the named node directly to
// each other inside the scratch graph, producing the hypothetical
// "list without this node".
func spliceOut(scratch map[string]*node, ttid string) {
	cur, ok := scratch[ttid]
	if !ok {
		return
	}

	if cur.prev != nil {
		if p, ok := scratch[*cur.prev]; ok {
			p.next = clone(cur.next)
		}
	}
	if cur.next != nil {
		if n, ok := scratch[*cur.next]; ok {
			n.prev = clone(cur.prev)
		}
	}
}

func step(scratch map[string]*node, n *node) *node {
	if n == nil || n.next == nil {
		return nil
	}
	return scratch[*n.next]
}

// Ordered arranges an unordered partition snapshot into traversal
// order. The head is the record with a null prev pointer; when a
// seeded default head and a user-inserted head coexist, the
// non-default one wins. A dangling next pointer terminates the
// walk rather than failing it, and every record is visited at most
// once even if the stored pointers are corrupt.
func Ordered(partition models.TaskTemplates) models.TaskTemplates {
	ordered := make(models.TaskTemplates, 0, len(partition))
	if len(partition) == 0 {
		return ordered
	}

	index := make(map[string]*models.TaskTemplate, len(partition))
	for _, t := range partition {
		index[t.TTID] = t
	}

	var head *models.TaskTemplate
	for _, t := range partition {
		if t.PrevTTID != nil {
			continue
		}
		if head == nil || (head.IsDefault && !t.IsDefault) {
			head = t
		}
	}
	if head == nil {
		return ordered
	}

	visited := make(map[string]bool, len(partition))
	for cur := head; cur != nil && !visited[cur.TTID]; {
		visited[cur.TTID] = true
		ordered = append(ordered, cur)

		if cur.NextTTID == nil {
			break
		}
		cur = index[*cur.NextTTID]
	}

	return ordered
}
