// Package operation implements the configurable-operation framework: typed,
// named units of business logic (promotion conditions, shipping eligibility
// checkers, shipping calculators) that operators configure at runtime.
//
// Each operation kind publishes a Definition: a unique code, localized
// description, and a typed argument schema. Raw operator input of the shape
// {code, arguments: [{name, value}]} is validated and coerced against the
// matching Definition by Bind, producing a ConfigurableOperation value that
// downstream evaluators run against live order data.
//
// Registries are built once at process start and are read-only afterwards,
// so they are shared across concurrent evaluations without locking.
package operation
