// Package calc is a worked example grammar: a four-function arithmetic
// calculator built on the peg engine and the ast construction core. It
// demonstrates the full binding pattern (typed nodes with declared
// slots, one factory per bound rule) including operator precedence,
// parenthesized grouping and unary minus.
//
// The pegctl command and the examples tree both drive this package; it
// doubles as an end-to-end exercise of the library.
package calc
