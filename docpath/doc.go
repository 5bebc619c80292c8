// Package docpath implements the tokenised document path used to locate
// a value inside a request, response, or JSON body, and the weighting
// algorithm used to pick the most specific matching rule for a given
// path.
package docpath
