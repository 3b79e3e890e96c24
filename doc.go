// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd implements Reduced Ordered Binary Decision Diagrams, a
canonical graph representation of Boolean functions over a fixed variable
order.

Basics

A BDD is built in two stages. Build performs a full Shannon decomposition
of a formula (package formula) into a decision structure that is merely
"quasi-reduced": it never allocates a redundant node, but it may still
contain duplicate subgraphs reachable via different recursion paths.
Reduce runs the classical bottom-up collapsing pass (Bryant's Algorithm
5.3) that removes redundant nodes and merges isomorphic subgraphs,
producing a canonical BDD in which two nodes compute the same Boolean
function if and only if they are the same handle.

Handles, called Ref in this package, are plain integer indices into a
Store's node arena; the reserved values FalseRef and TrueRef always denote
the two terminals. A Ref is only meaningful relative to the Store that
produced it: mixing refs from different stores is a programming error
(see Error, kind StoreMismatch).

Once a BDD is canonical, Apply combines two of them under any of the
binary Boolean operators in this package (And, Or, Xor, Implies, Iff, Nand,
Nor, and a few supplemental operators carried over from the same closed
operator table) via memoized Shannon expansion, always producing another
canonical BDD.

Use of build tags

Compiling with the build tag `debug` unlocks diagnostic logging, via the
stdlib log package, of every new node the unique table allocates; it
changes no semantics.

Automatic memory management

The library is written in pure Go. A Store only ever grows: there is no
internal garbage collector and no notion of reclaiming unreachable nodes,
so handles remain valid for as long as the Store itself is reachable and
the usual Go garbage collector takes care of the rest.
*/
package robdd
