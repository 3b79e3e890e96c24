// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// huddsize-style terminal handles: the convention, kept from rudd, that 0
// always addresses the constant False and 1 always addresses the constant
// True.
const (
	// FalseRef is the reserved handle for the bottom terminal (⊥).
	FalseRef Ref = 0
	// TrueRef is the reserved handle for the top terminal (⊤).
	TrueRef Ref = 1
)

// Ref is a stable handle to a node within a Store's arena. Two handles are
// equal iff they address the same node; a Ref is only meaningful relative to
// the Store that produced it.
type Ref int

// node is the internal representation of one non-terminal vertex: a
// variable and its two cofactor children.
type node struct {
	v         Variable
	low, high Ref
}

type triple struct {
	v         Variable
	low, high Ref
}

// Store is an arena of BDD nodes plus a unique table that hash-conses
// (variable, low, high) triples, in the spirit of rudd's tables type
// (hudd.go) but without its freelist/garbage-collection machinery: this
// arena only ever grows, since the resource model carries no reclamation
// within the core (see doc.go).
type Store struct {
	order  *VarOrder
	cfg    *configs
	nodes  []node
	unique map[triple]Ref

	persistentApply map[applyKey]Ref
}

// NewStore creates an empty node store ordered by order.
func NewStore(order *VarOrder, opts ...Option) *Store {
	cfg := makeconfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	s := &Store{
		order:  order,
		cfg:    cfg,
		nodes:  make([]node, 2, cfg.nodesize),
		unique: make(map[triple]Ref, cfg.nodesize),
	}
	if cfg.persistentCache {
		s.persistentApply = make(map[applyKey]Ref, cfg.cachesize)
	}
	return s
}

// Order returns the variable order this store was built against.
func (s *Store) Order() *VarOrder {
	return s.order
}

// isTerminal reports whether r addresses one of the two reserved terminals.
func (s *Store) isTerminal(r Ref) bool {
	return r == FalseRef || r == TrueRef
}

// terminal returns the handle for the terminal encoding value.
func (s *Store) terminal(value bool) Ref {
	if value {
		return TrueRef
	}
	return FalseRef
}

// terminalValue returns the Boolean value of a terminal handle. It must only
// be called with a Ref for which isTerminal is true.
func (s *Store) terminalValue(r Ref) bool {
	return r == TrueRef
}

// makeRaw allocates a node for (v, low, high), applying only the redundancy
// rule (invariant 3: low == high never allocates) but skipping the
// hash-consing unique-table lookup (invariant 4). It is used exclusively by
// Build: the resulting decision structure is "quasi-reduced", matching the
// Builder's documented guarantee that invariants (1) and (3) hold while (4)
// may not, until a Reduce pass restores it.
func (s *Store) makeRaw(v Variable, low, high Ref) Ref {
	if low == high {
		return low
	}
	r := Ref(len(s.nodes))
	s.nodes = append(s.nodes, node{v: v, low: low, high: high})
	return r
}

// make allocates a node for (v, low, high), enforcing both the redundancy
// rule and store-wide uniqueness via the unique table: this is the
// constructor used by Reduce and Apply, whose output must be genuinely
// canonical. Hashing the triple by the identity of low/high (plain Ref
// equality, not structural recursion) keeps make amortized O(1), as
// required for Apply's memoized recursion to stay efficient.
func (s *Store) make(v Variable, low, high Ref) Ref {
	if low == high {
		return low
	}
	key := triple{v: v, low: low, high: high}
	if r, ok := s.unique[key]; ok {
		return r
	}
	r := Ref(len(s.nodes))
	s.nodes = append(s.nodes, node{v: v, low: low, high: high})
	s.unique[key] = r
	debugLogf("store: new node %d = (%v, %d, %d)", r, v, low, high)
	return r
}

// lookup returns the existing handle for (v, low, high) in the unique table,
// if any, without allocating. It is used by Reduce to test whether a node
// already has a canonical representative at its level.
func (s *Store) lookup(v Variable, low, high Ref) (Ref, bool) {
	if low == high {
		return low, true
	}
	r, ok := s.unique[triple{v: v, low: low, high: high}]
	return r, ok
}

// NodeInfo is an inspection view of one node, used by diagnostics and by
// callers that want to walk a BDD's structure directly.
type NodeInfo struct {
	Ref        Ref
	IsTerminal bool
	Value      bool // meaningful iff IsTerminal
	Var        Variable
	Low, High  Ref // meaningful iff !IsTerminal
}

// Inspect returns a NodeInfo view of r.
func (s *Store) Inspect(r Ref) NodeInfo {
	if s.isTerminal(r) {
		return NodeInfo{Ref: r, IsTerminal: true, Value: s.terminalValue(r)}
	}
	n := s.nodes[r]
	return NodeInfo{Ref: r, Var: n.v, Low: n.low, High: n.high}
}

// NodeCount returns the total number of nodes ever allocated in s (including
// the two terminals), regardless of reachability from any particular BDD
// root. It is a diagnostic, not CountNodes (see query.go).
func (s *Store) NodeCount() int {
	return len(s.nodes)
}
