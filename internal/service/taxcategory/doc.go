// Package taxcategory implements tax-category management.
//
// The service owns the singleton-default invariant: at most one TaxCategory
// has IsDefault=true at any time. Setting a new default demotes every other
// row first, inside the same transaction as the promoting write, so the
// invariant holds under concurrent callers and rolls back atomically.
//
// Deletion is dependency-safe: a category referenced by tax rates is not
// deleted, and the refusal is reported as a DeletionResult value rather than
// an error. The service depends on the repository interface defined in this
// package and on an event publisher; it never imports storage details.
package taxcategory
