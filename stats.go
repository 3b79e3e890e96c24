// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Stats returns diagnostic information about a store: its variable count,
// the total number of nodes ever allocated, and the number of entries in its
// unique table. It reports no cache hit rates, in any build. This package
// has no Graphviz export; use PrintSet for a plain textual dump of a BDD's
// reachable nodes.
func (s *Store) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", s.order.Len())
	res += fmt.Sprintf("Allocated:  %d\n", len(s.nodes))
	res += fmt.Sprintf("Unique:     %d\n", len(s.unique))
	return res
}

// PrintSet writes a textual representation of the nodes reachable from b's
// root to stdout, one line per internal node: id, level, low child, high
// child.
func (b *BDD) PrintSet() {
	b.printSet(os.Stdout)
}

func (b *BDD) printSet(w io.Writer) {
	if b.store.isTerminal(b.root) {
		if b.store.terminalValue(b.root) {
			fmt.Fprintln(w, "True")
		} else {
			fmt.Fprintln(w, "False")
		}
		return
	}
	type row struct{ id, level, low, high int }
	var rows []row
	_ = AllNodes(func(ref Ref, level int, low, high Ref) error {
		id := int(ref)
		i := sort.Search(len(rows), func(i int) bool { return rows[i].id >= id })
		rows = append(rows, row{})
		copy(rows[i+1:], rows[i:])
		rows[i] = row{id, level, int(low), int(high)}
		return nil
	}, b)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		if r.id > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", r.id, r.level, r.low, r.high)
		}
	}
	tw.Flush()
}
