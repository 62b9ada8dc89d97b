// Package domain defines the core entities of the news service
// (topics, articles, comments, users) along with their validation
// rules and sentinel errors.
package domain
