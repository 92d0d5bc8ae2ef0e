// Package problem describes rook-graph instances and reads them from text.
//
// A Problem is an n×n grid plus a list of inclusive rectangles. Two input
// formats are supported:
//
//   - the token stream "side count r0 c0 r1 c1 ...", read by Parse;
//   - a TOML document with "side" and [[rect]] tables, read by LoadTOML.
//
// Random generates instances for benchmarks and the gen command.
//
// Parsing and validation are separate steps: Parse only checks that the
// stream is well formed, Validate checks the rectangles against the grid.
package problem
