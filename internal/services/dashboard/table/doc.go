// Package table derives the visible user table from the record store.
//
// The pipeline is filter, sort, then paginate. Each stage is a pure function
// over a record slice so it can be exercised on its own; State bundles the
// inputs and exposes the transitions the dashboard controls trigger.
package table
