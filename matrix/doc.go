// Package matrix provides a minimal Matrix abstraction and a Dense, row-major
// implementation backed by a flat float64 slice.
//
// Dense is the storage layer underneath the cost matrices used throughout
// this module: O(1) At/Set with bounds checking, O(1) Rows/Cols, and O(r*c)
// Clone for callers that need an independent copy.
package matrix
