// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// level returns r's position in store's variable order, or store.order.Len()
// as a sentinel "infinity" level for a terminal. Comparing these integers,
// rather than comparing Variable values directly, is what lets Apply/Ite
// find the earliest variable and cofactor cheaply, mirroring rudd's own
// apply/ite (operations.go), which compares b.level(n) int32 values.
func (s *Store) level(r Ref) int {
	if s.isTerminal(r) {
		return s.order.Len()
	}
	return mustIndex(s.order, s.nodes[r].v)
}

func mustIndex(order *VarOrder, v Variable) int {
	i, ok := order.Index(v)
	if !ok {
		panic("robdd: node variable absent from its own store's order")
	}
	return i
}

// cofactorLow/cofactorHigh return the low/high cofactor of r at the given
// level: r's own low/high child if r is labeled with that level, r itself
// otherwise (r is "above" that level in the decision structure).
func (s *Store) cofactorLow(r Ref, lvl int) Ref {
	if s.isTerminal(r) || s.level(r) != lvl {
		return r
	}
	return s.nodes[r].low
}

func (s *Store) cofactorHigh(r Ref, lvl int) Ref {
	if s.isTerminal(r) || s.level(r) != lvl {
		return r
	}
	return s.nodes[r].high
}

func checkOperands(a, b *BDD) error {
	if !a.Order().Equal(b.Order()) {
		return newError(OrderMismatch, "Apply operands were built against different variable orders")
	}
	if !sameStore(a, b) {
		return newError(StoreMismatch, "Apply operands belong to different node stores")
	}
	return nil
}

// Apply computes a ⊕ b for the binary Boolean operator op, via memoized
// Shannon expansion: at every pair of nodes, cofactor both operands at the
// earliest variable between them, recurse, and rebuild through the store's
// hash-consing constructor so the result is canonical whenever the operands
// are. a and b must share a store and variable order.
func Apply(op Operator, a, b *BDD) (*BDD, error) {
	if !op.isValid() {
		return nil, newError(InvalidOperator, "operator %s is not a valid binary Apply operator", op)
	}
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	store := a.store
	cache := newApplyCache(store)
	root := applyRec(store, cache, op, a.root, b.root)
	return newBDD(store, root), nil
}

func applyRec(store *Store, cache *applyCache, op Operator, left, right Ref) Ref {
	if store.isTerminal(left) && store.isTerminal(right) {
		l := boolToInt(store.terminalValue(left))
		r := boolToInt(store.terminalValue(right))
		return store.terminal(opres[op][l][r] == 1)
	}
	if res, ok := cache.get(op, left, right); ok {
		return res
	}
	leftLvl := store.level(left)
	rightLvl := store.level(right)
	lvl := leftLvl
	if rightLvl < lvl {
		lvl = rightLvl
	}
	lo := applyRec(store, cache, op, store.cofactorLow(left, lvl), store.cofactorLow(right, lvl))
	hi := applyRec(store, cache, op, store.cofactorHigh(left, lvl), store.cofactorHigh(right, lvl))
	v := store.order.At(lvl)
	res := store.make(v, lo, hi)
	cache.set(op, left, right, res)
	return res
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Not returns the negation of a: the BDD obtained by exchanging all
// references to the False terminal with references to the True terminal and
// vice versa.
func Not(a *BDD) (*BDD, error) {
	cache := newApplyCache(a.store)
	root := notRec(a.store, cache, a.root)
	return newBDD(a.store, root), nil
}

func notRec(store *Store, cache *applyCache, n Ref) Ref {
	if n == FalseRef {
		return TrueRef
	}
	if n == TrueRef {
		return FalseRef
	}
	if res, ok := cache.get(opnot, n, n); ok {
		return res
	}
	node := store.nodes[n]
	lo := notRec(store, cache, node.low)
	hi := notRec(store, cache, node.high)
	res := store.make(node.v, lo, hi)
	cache.set(opnot, n, n, res)
	return res
}

// Xor returns the exclusive-or of a and b.
func Xor(a, b *BDD) (*BDD, error) { return Apply(OPxor, a, b) }

// Implies returns the material implication a -> b.
func Implies(a, b *BDD) (*BDD, error) { return Apply(OPimp, a, b) }

// Iff returns the bi-implication (equivalence) of a and b.
func Iff(a, b *BDD) (*BDD, error) { return Apply(OPbiimp, a, b) }

// Nand returns the negated conjunction of a and b.
func Nand(a, b *BDD) (*BDD, error) { return Apply(OPnand, a, b) }

// Nor returns the negated disjunction of a and b.
func Nor(a, b *BDD) (*BDD, error) { return Apply(OPnor, a, b) }

// Ite (if-then-else) computes the BDD for (f & g) | (!f & h) more
// efficiently than the three Apply calls that would otherwise be needed.
func Ite(f, g, h *BDD) (*BDD, error) {
	if err := checkOperands(f, g); err != nil {
		return nil, err
	}
	if err := checkOperands(f, h); err != nil {
		return nil, err
	}
	store := f.store
	cache := newIteCache(store.cfg.cachesize)
	applyc := newApplyCache(store)
	root := iteRec(store, cache, applyc, f.root, g.root, h.root)
	return newBDD(store, root), nil
}

func iteRec(store *Store, cache *iteCache, applyc *applyCache, f, g, h Ref) Ref {
	switch {
	case f == TrueRef:
		return g
	case f == FalseRef:
		return h
	case g == h:
		return g
	case g == TrueRef && h == FalseRef:
		return f
	case g == FalseRef && h == TrueRef:
		return notRec(store, applyc, f)
	}
	if res, ok := cache.get(f, g, h); ok {
		return res
	}
	p := store.level(f)
	q := store.level(g)
	r := store.level(h)
	lvl := min3(p, q, r)
	lo := iteRec(store, cache, applyc,
		iteBranch(store, f, p, lvl, false),
		iteBranch(store, g, q, lvl, false),
		iteBranch(store, h, r, lvl, false))
	hi := iteRec(store, cache, applyc,
		iteBranch(store, f, p, lvl, true),
		iteBranch(store, g, q, lvl, true),
		iteBranch(store, h, r, lvl, true))
	v := store.order.At(lvl)
	res := store.make(v, lo, hi)
	cache.set(f, g, h, res)
	return res
}

func iteBranch(store *Store, n Ref, nlvl, lvl int, high bool) Ref {
	if nlvl != lvl {
		return n
	}
	if high {
		return store.cofactorHigh(n, lvl)
	}
	return store.cofactorLow(n, lvl)
}

func min3(p, q, r int) int {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}

// Makeset returns the BDD for the conjunction (the cube) of all the
// variables in vars, in their positive form: the set-encoding used by Exist
// and AppEx.
func Makeset(store *Store, vars []Variable) (*BDD, error) {
	root := TrueRef
	for _, v := range vars {
		idx, ok := store.order.Index(v)
		if !ok {
			return nil, newError(UnknownVariable, "variable %q not present in store's variable order", v)
		}
		root = store.make(store.order.At(idx), FalseRef, root)
	}
	return newBDD(store, root), nil
}

// Exist returns the existential quantification of a over the variables in
// varset, where varset is a BDD built by Makeset.
func Exist(a, varset *BDD) (*BDD, error) {
	if err := checkOperands(a, varset); err != nil {
		return nil, err
	}
	store := a.store
	quantlast := quantsetLast(store, varset.root)
	qcache := newQuantCache(store.cfg.cachesize)
	applyc := newApplyCache(store)
	quantset := quantsetMembership(store, varset.root)
	root := existRec(store, qcache, applyc, quantset, quantlast, a.root, varset.root)
	return newBDD(store, root), nil
}

// quantsetMembership marks, by level, which variables appear in the
// quantification set rooted at varset.
func quantsetMembership(store *Store, varset Ref) map[int]bool {
	set := make(map[int]bool)
	for r := varset; r != TrueRef && r != FalseRef; {
		n := store.nodes[r]
		set[mustIndex(store.order, n.v)] = true
		r = n.high
	}
	return set
}

func quantsetLast(store *Store, varset Ref) int {
	last := -1
	for r := varset; r != TrueRef && r != FalseRef; {
		n := store.nodes[r]
		if l := mustIndex(store.order, n.v); l > last {
			last = l
		}
		r = n.high
	}
	return last
}

func existRec(store *Store, cache *quantCache, applyc *applyCache, quantset map[int]bool, quantlast int, n, varset Ref) Ref {
	if store.isTerminal(n) || store.level(n) > quantlast {
		return n
	}
	if res, ok := cache.get(n, varset); ok {
		return res
	}
	node := store.nodes[n]
	lo := existRec(store, cache, applyc, quantset, quantlast, node.low, varset)
	hi := existRec(store, cache, applyc, quantset, quantlast, node.high, varset)
	var res Ref
	if quantset[mustIndex(store.order, node.v)] {
		res = applyRec(store, applyc, OPor, lo, hi)
	} else {
		res = store.make(node.v, lo, hi)
	}
	cache.set(n, varset, res)
	return res
}

// AndExist computes the existential quantification of (a & b) over varset
// in one fused pass: ∃ varset . (a ∧ b). This is the relational product used
// to compose transition relations.
func AndExist(a, b, varset *BDD) (*BDD, error) {
	return AppEx(OPand, a, b, varset)
}

// AppEx applies op to a and b, then existentially quantifies the variables
// in varset, done bottom-up in a single fused traversal rather than an
// Apply followed by a separate Exist. Only the operators OPand, OPxor,
// OPor and OPnand are supported (the same restriction rudd's AppEx
// documents).
func AppEx(op Operator, a, b, varset *BDD) (*BDD, error) {
	if op > OPnand {
		return nil, newError(InvalidOperator, "operator %s is not supported in AppEx", op)
	}
	if err := checkOperands(a, varset); err != nil {
		return nil, err
	}
	if err := checkOperands(b, varset); err != nil {
		return nil, err
	}
	store := a.store
	if varset.root == TrueRef || varset.root == FalseRef {
		return Apply(op, a, b)
	}
	quantlast := quantsetLast(store, varset.root)
	quantset := quantsetMembership(store, varset.root)
	qcache := newQuantCache(store.cfg.cachesize)
	applyc := newApplyCache(store)
	appexc := newAppexCache(store.cfg.cachesize)
	root := appquant(store, appexc, qcache, applyc, op, quantset, quantlast, a.root, b.root, varset.root)
	return newBDD(store, root), nil
}

func appquant(store *Store, cache *appexCache, qcache *quantCache, applyc *applyCache, op Operator, quantset map[int]bool, quantlast int, left, right, varset Ref) Ref {
	if store.isTerminal(left) && store.isTerminal(right) {
		l := boolToInt(store.terminalValue(left))
		r := boolToInt(store.terminalValue(right))
		return store.terminal(opres[op][l][r] == 1)
	}
	if store.level(left) > quantlast && store.level(right) > quantlast {
		return applyRec(store, applyc, op, left, right)
	}
	if res, ok := cache.get(op, left, right, varset); ok {
		return res
	}
	leftLvl := store.level(left)
	rightLvl := store.level(right)
	lvl := leftLvl
	if rightLvl < lvl {
		lvl = rightLvl
	}
	lo := appquant(store, cache, qcache, applyc, op, quantset, quantlast,
		store.cofactorLow(left, lvl), store.cofactorLow(right, lvl), varset)
	hi := appquant(store, cache, qcache, applyc, op, quantset, quantlast,
		store.cofactorHigh(left, lvl), store.cofactorHigh(right, lvl), varset)
	var res Ref
	if quantset[lvl] {
		res = applyRec(store, applyc, OPor, lo, hi)
	} else {
		res = store.make(store.order.At(lvl), lo, hi)
	}
	cache.set(op, left, right, varset, res)
	return res
}

// Replace renames variables in a according to r (see NewReplacer). It
// reports InvalidReplacement if the renaming would place a variable at a
// level that collides with a level already present below it in a (see
// correctify).
func Replace(a *BDD, r Replacer) (*BDD, error) {
	store := a.store
	cache := newReplaceCache(store.cfg.cachesize)
	root, err := replaceRec(store, cache, r, a.root)
	if err != nil {
		return nil, err
	}
	return newBDD(store, root), nil
}

func replaceRec(store *Store, cache *replaceCache, r Replacer, n Ref) (Ref, error) {
	if store.isTerminal(n) {
		return n, nil
	}
	node := store.nodes[n]
	image, ok := r.Replace(node.v)
	if !ok {
		image = node.v
	}
	if res, ok := cache.get(n, r.Id()); ok {
		return res, nil
	}
	lo, err := replaceRec(store, cache, r, node.low)
	if err != nil {
		return 0, err
	}
	hi, err := replaceRec(store, cache, r, node.high)
	if err != nil {
		return 0, err
	}
	res, err := correctify(store, image, lo, hi)
	if err != nil {
		return 0, err
	}
	cache.set(n, r.Id(), res)
	return res, nil
}

// correctify rebuilds a node labeled image whose children low/high may
// themselves be labeled at or before image's new level (the renaming may
// have moved image earlier than a child it used to dominate), restoring
// ordering by pushing the substitution through the affected levels. If
// image's level collides exactly with low's or high's level, the renaming
// is ambiguous (matching rudd's correctify, which flags this with
// seterror rather than silently building a mislabeled node) and
// InvalidReplacement is reported.
func correctify(store *Store, image Variable, low, high Ref) (Ref, error) {
	if low == high {
		return low, nil
	}
	imgLvl := mustIndex(store.order, image)
	lowLvl := store.level(low)
	highLvl := store.level(high)
	if imgLvl < lowLvl && imgLvl < highLvl {
		return store.make(image, low, high), nil
	}
	if imgLvl == lowLvl || imgLvl == highLvl {
		return 0, newError(InvalidReplacement,
			"replace: renamed level %d collides with an existing level (low=%d, high=%d)",
			imgLvl, lowLvl, highLvl)
	}
	if lowLvl == highLvl {
		lowNode := store.nodes[low]
		highNode := store.nodes[high]
		lo, err := correctify(store, image, lowNode.low, highNode.low)
		if err != nil {
			return 0, err
		}
		hi, err := correctify(store, image, lowNode.high, highNode.high)
		if err != nil {
			return 0, err
		}
		return store.make(lowNode.v, lo, hi), nil
	}
	if lowLvl < highLvl {
		lowNode := store.nodes[low]
		lo, err := correctify(store, image, lowNode.low, high)
		if err != nil {
			return 0, err
		}
		hi, err := correctify(store, image, lowNode.high, high)
		if err != nil {
			return 0, err
		}
		return store.make(lowNode.v, lo, hi), nil
	}
	highNode := store.nodes[high]
	lo, err := correctify(store, image, low, highNode.low)
	if err != nil {
		return 0, err
	}
	hi, err := correctify(store, image, low, highNode.high)
	if err != nil {
		return 0, err
	}
	return store.make(highNode.v, lo, hi), nil
}
