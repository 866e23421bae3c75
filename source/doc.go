// Package source provides sequence sources and sinks that are not available with just the core lookahead package.
// Splitting these out into their own, independent (except what's provided in pkg) packages means that they can be omitted in favor of a smaller build size if the functionality isn't needed.
//
// "Source" functions should take input and return a lookahead.Source and potentially an error.
// Sources should close any resources, like file handles or database rows, when they have reached the end of their input.
//
// "Sink" functions should take a lookahead.Source - and optionally other parameters - and operate synchronously (the user may decide to call a Sink function in a goroutine).
// Sink functions should use lookahead.Drain on a source if they encounter an error to prevent upstream blocking.
//
//	Current packages:
//	- file provides source and sink for files, including tail support.
//	- store provides SQLite spool and replay of line sequences.
package source
