// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// It also provides RunInTransaction, the single place where transaction
// boundaries are opened, committed and rolled back.
package store
