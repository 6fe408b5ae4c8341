// Package summaries contains the domain entities and service contracts for
// the summaries resource: the Summary entity, list query options and the
// interfaces implemented by the application services and the persistence
// layer.
package summaries
