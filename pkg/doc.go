// Package pkg provides the core functionality of the lookahead library.
// This package (and subpackages) is a dependency of anything in the source package.
//   - The lookahead package contains the Buffer itself, along with functions for creating and altering the behavior of a lookahead.Source.
package pkg
