// Package pasteparser turns text pasted into a calculator into a tree of
// numeric values that can be loaded onto the calculator's stack.
//
// Pasted text may be a plain number ("-123.456E2"), a fraction ("3/4",
// "-1 3/4"), a complex number in cartesian ("2 - 3i", "-i") or polar
// ("2 ∠ 32°") form, or a matrix ("[1  2\n3  4]"). A Session runs a Grammar
// over the text; the grammar builds the tree bottom-up with a Builder and
// reports exactly one outcome, either a root node or an error message.
//
// Trees have a single owner. A node passed to a constructor belongs to the
// new parent, and Builder.Free releases a whole tree at once. Storage comes
// from an Allocator so that hosts and tests can account for every node.
package pasteparser
