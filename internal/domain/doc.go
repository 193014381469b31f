// Package domain contains the records served by the storefront API (cars,
// orders, products and users) together with their partial-input types.
//
// Records are plain values. Input types use pointer fields so that a field
// absent from a request can be told apart from one explicitly set to its zero
// value; ApplyTo performs the shallow merge used by both create and update.
package domain
