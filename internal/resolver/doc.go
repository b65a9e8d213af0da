// Package resolver turns a partial or misspelled cd argument into a path.
// Existing paths pass through; anything else is matched against the
// sibling directories of its parent, prefix matches first, then substring
// matches, both case-insensitive and in collation order.
package resolver
