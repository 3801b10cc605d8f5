// Package bill holds the in-memory domain model for a single shared bill:
// the participants splitting it, the line items on it, and the bill-wide
// surcharge configuration.
//
// A Bill is mutated through discrete caller actions (add/remove/rename) and
// read through Snapshot, which produces a detached copy for the calculator
// and the export renderer. The model performs no I/O and is not safe for
// concurrent use; there is a single logical actor per bill.
//
// Validation follows a rejection model rather than an error model: an invalid
// AddItem or surcharge update simply leaves the bill unchanged and reports
// false. Callers are expected to gate those actions on the same checks (for
// example by disabling a submit button), so a rejection here is a fallback,
// not a user-facing failure.
package bill
