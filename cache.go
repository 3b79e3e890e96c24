// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Memoization for Apply and its relatives. rudd's cache.go hashes fixed-size
// arrays (data3ncache/data4ncache) sized by primeGte, because its node store
// can resize and garbage-collect, which would strand stale array slots. This
// store only grows (see store.go), so a plain Go map keyed by the operand
// tuple is both simpler and exact: no collisions, no eviction bookkeeping.

type applyKey struct {
	op    Operator
	left  Ref
	right Ref
}

// applyCache memoizes Apply (and Not, under the unary opnot key). Per
// spec the memo table is valid for a single top-level Apply call tree by
// default; Store.persistentApply (populated when WithPersistentCache was
// used) keeps one alive across calls on the same store instead.
type applyCache struct {
	table         map[applyKey]Ref
	opHit, opMiss int
}

func newApplyCache(store *Store) *applyCache {
	if store.persistentApply != nil {
		return &applyCache{table: store.persistentApply}
	}
	return &applyCache{table: make(map[applyKey]Ref, store.cfg.cachesize)}
}

func (c *applyCache) get(op Operator, left, right Ref) (Ref, bool) {
	r, ok := c.table[applyKey{op, left, right}]
	if ok {
		c.opHit++
	} else {
		c.opMiss++
	}
	return r, ok
}

func (c *applyCache) set(op Operator, left, right Ref, result Ref) {
	c.table[applyKey{op, left, right}] = result
}

type iteKey struct {
	f, g, h Ref
}

// iteCache memoizes Ite, always local to one top-level call: three-operand
// keys are not worth promoting to the persistent cache applyCache uses.
type iteCache struct {
	table map[iteKey]Ref
}

func newIteCache(size int) *iteCache {
	return &iteCache{table: make(map[iteKey]Ref, size)}
}

func (c *iteCache) get(f, g, h Ref) (Ref, bool) {
	r, ok := c.table[iteKey{f, g, h}]
	return r, ok
}

func (c *iteCache) set(f, g, h Ref, result Ref) {
	c.table[iteKey{f, g, h}] = result
}

type quantKey struct {
	n, varset Ref
}

// quantCache memoizes Exist.
type quantCache struct {
	table map[quantKey]Ref
}

func newQuantCache(size int) *quantCache {
	return &quantCache{table: make(map[quantKey]Ref, size)}
}

func (c *quantCache) get(n, varset Ref) (Ref, bool) {
	r, ok := c.table[quantKey{n, varset}]
	return r, ok
}

func (c *quantCache) set(n, varset Ref, result Ref) {
	c.table[quantKey{n, varset}] = result
}

type appexKey struct {
	op          Operator
	left, right Ref
	varset      Ref
}

// appexCache memoizes AppEx, the fused Apply-then-Exist relational product.
type appexCache struct {
	table map[appexKey]Ref
}

func newAppexCache(size int) *appexCache {
	return &appexCache{table: make(map[appexKey]Ref, size)}
}

func (c *appexCache) get(op Operator, left, right, varset Ref) (Ref, bool) {
	r, ok := c.table[appexKey{op, left, right, varset}]
	return r, ok
}

func (c *appexCache) set(op Operator, left, right, varset Ref, result Ref) {
	c.table[appexKey{op, left, right, varset}] = result
}

type replaceKey struct {
	n          Ref
	replacerID int
}

// replaceCache memoizes Replace, keyed by the Replacer's identity
// (Replacer.Id) since two distinct renamings applied to the same node must
// not collide.
type replaceCache struct {
	table map[replaceKey]Ref
}

func newReplaceCache(size int) *replaceCache {
	return &replaceCache{table: make(map[replaceKey]Ref, size)}
}

func (c *replaceCache) get(n Ref, replacerID int) (Ref, bool) {
	r, ok := c.table[replaceKey{n, replacerID}]
	return r, ok
}

func (c *replaceCache) set(n Ref, replacerID int, result Ref) {
	c.table[replaceKey{n, replacerID}] = result
}
