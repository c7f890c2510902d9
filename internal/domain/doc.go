// Package domain defines the core business types for the commerce back office.
//
// Types in this package are pure value objects with no behavior beyond pure
// functions on the type itself. They are the shared language between the
// rule-evaluation packages, services, and repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON/DB tags are allowed (they're metadata, not behavior)
//   - Validation and comparison methods are allowed (pure functions)
//   - Constants and enums belong here
package domain
