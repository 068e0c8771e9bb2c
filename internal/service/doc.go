// Package service implements the transactional user repository on top of
// the store layer.
//
// Each UserService method maps to exactly one database transaction. Writes
// run through store.RunInTransaction and reads through
// store.RunInReadOnlyTransaction, with a transaction-bound store obtained
// from store.UserStore.WithTx. Callers classify failures with errors.Is
// against domain.ErrInvalidArgument, domain.ErrNotFound and
// domain.ErrPersistence.
package service
