// Package store provides abstractions for data persistence: the store
// interfaces implemented by the postgres platform layer, the DBTX
// database abstraction, validated query parameters for article
// listings, and the sentinel errors shared by all implementations.
package store
