// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, so business rules stay independent of where tasks live.
package store
