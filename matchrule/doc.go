// Package matchrule implements the matching rule tagged variant, ordered
// rule lists, and the per-category "best matcher" selection algorithm
// that picks the most specific rule for a given document path.
package matchrule
