// Package api implements the HTTP handlers for the news service and
// the mapping from domain/store errors to HTTP status codes and safe
// client messages. Handlers extract and validate request parameters,
// call the matching store operation, and wrap the result under the
// resource's named key; errors are forwarded untouched to
// HandleAPIError, which owns the final status-code decision.
package api
