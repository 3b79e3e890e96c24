// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// configs stores the values of the different parameters of a Store.
type configs struct {
	nodesize        int  // initial capacity of the node arena
	cachesize       int  // initial capacity of every memoization table
	persistentCache bool // whether the Apply cache survives across calls on this store
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  64,
		cachesize: 1000,
	}
}

// Option configures a Store at construction time (see NewStore).
type Option func(*configs)

// WithInitialCapacity is a configuration option. It sets a preferred initial
// capacity for the node arena. The arena grows automatically as needed; this
// only avoids early reallocation when the approximate final size is known.
func WithInitialCapacity(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.nodesize = size
		}
	}
}

// WithCacheSize is a configuration option. It sets the initial number of
// entries reserved in each memoization table: the Apply cache, persistent
// (see WithPersistentCache) or not, and the Ite, Exist, AppEx and Replace
// tables. It is a capacity hint only; every table grows as needed.
func WithCacheSize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// WithPersistentCache makes the Apply memoization cache (used by Apply, Not,
// and the Apply steps inside Ite, Exist and AppEx) persist across calls on
// the same Store, rather than the default of a fresh cache per top-level
// call. The Ite, Exist, AppEx and Replace tables stay local to one call.
// This trades memory for speed when a caller issues many Apply operations
// against the same store.
func WithPersistentCache() Option {
	return func(c *configs) {
		c.persistentCache = true
	}
}
