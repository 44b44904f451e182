package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/splay/memo"
)

type nodeids[N comparable] struct {
	table map[N]string
	next  int
}

func newNodeIDs[N comparable]() *nodeids[N] {
	return &nodeids[N]{table: make(map[N]string)}
}

func (ids *nodeids[N]) alloc(n N) string {
	return memo.Vivify(ids.table, n, func() string {
		id := "o" + strconv.Itoa(ids.next)
		ids.next++
		return id
	})
}

// WriteDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled key:leftCount,rightCount, edges
// P, L and R for parent, left and right links.
//
// A corrupted tree does not make WriteDot loop: a node reached twice is
// written as a "CYCLE" node, and a faulting traversal as a "CYCLE" node
// labelled INVALID TREE.
func (t *Tree[N, K]) WriteDot(w io.Writer) error {
	var b strings.Builder
	ids := newNodeIDs[N]()
	b.WriteString("digraph t {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if absent(t.root) {
		b.WriteString("\t\"Root\" -> \"null\";\n")
	} else {
		fmt.Fprintf(&b, "\t\"Root\" -> \"%s\";\n", ids.alloc(t.root))
		t.dotNodes(&b, ids)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Tree[N, K]) dotNodes(b *strings.Builder, ids *nodeids[N]) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, ErrInvalidTree) {
				panic(r)
			}
			tracer().Errorf("splay DOT: %s", e.Error())
			b.WriteString("\t\"CYCLE\" [label=\"INVALID TREE\"];\n")
		}
	}()
	seen := make(map[N]struct{})
	nulls := 0
	nullEdge := func(id, side string) {
		fmt.Fprintf(b, "\t\"n%d\" [label=\"null\"];\n", nulls)
		fmt.Fprintf(b, "\t\"%s\" -> \"n%d\" [label=\"%s\"];\n", id, nulls, side)
		nulls++
	}
	t.Walk(func(n N) bool {
		if _, ok := seen[n]; ok {
			fmt.Fprintf(b, "\t\"CYCLE\" [label=%q];\n", fmt.Sprint(t.cfg.Key(n)))
			return false
		}
		seen[n] = struct{}{}
		h := hook(n)
		id := ids.alloc(n)
		label := fmt.Sprintf("%v:%d,%d", t.cfg.Key(n), h.leftCount, h.rightCount)
		fmt.Fprintf(b, "\t\"%s\" [label=%q];\n", id, label)
		if !absent(h.parent) {
			fmt.Fprintf(b, "\t\"%s\" -> \"%s\" [label=\"P\"];\n", id, ids.alloc(h.parent))
		}
		if absent(h.left) && absent(h.right) {
			return true
		}
		if absent(h.left) {
			nullEdge(id, "L")
		} else {
			fmt.Fprintf(b, "\t\"%s\" -> \"%s\" [label=\"L\"];\n", id, ids.alloc(h.left))
		}
		if absent(h.right) {
			nullEdge(id, "R")
		} else {
			fmt.Fprintf(b, "\t\"%s\" -> \"%s\" [label=\"R\"];\n", id, ids.alloc(h.right))
		}
		return true
	})
}
