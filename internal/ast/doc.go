// Package ast models VHDL design files at the granularity the semantic
// frontend needs: design units with their declarative and statement
// parts, the declaration variants a package can contain, and a visitor
// over region ranges for cursor classification.
package ast
