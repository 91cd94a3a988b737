// Package repository is a generic in-memory record store.
//
// A MemoryRepository keeps entities of one type in insertion order, keyed by a primary key field
// (`ID` unless set with WithIDField). It offers point lookup, filtered listing with Conditions,
// partial updates via Modify and deletion. Every method either succeeds completely or leaves
// the collection untouched.
//
// The data is lost on restart. LoadYAML fills a repository from a seed file.
//
// A Repository offers a whole set of methods already out of the box. That might not be enough, though.
// It is possible to overwrite an existing method to change the behaviour as well as extend the Repository
// with new methods. There are examples for both.
package repository
