// Package viz renders value-function and policy arrays to image files.
//
// It is a pure consumer of the arrays the growth package returns: the
// numerical core never imports it, and skipping it changes nothing but
// the pictures. The policy plot overlays the closed-form optimal policy
// (1 − alpha·beta)·y, which is the quickest visual check that a solve
// went right.
//
// Output format follows the file extension (.png, .svg, .pdf, ...),
// as supported by gonum/plot.
package viz
