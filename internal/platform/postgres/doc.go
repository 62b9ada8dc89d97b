// Package postgres contains the PostgreSQL implementations of the
// store interfaces. All SQL lives here; parameters are always passed
// as placeholders, and sort identifiers only ever come from the
// allow-list validated in the store package.
package postgres
