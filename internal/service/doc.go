// Package service contains the CRUD use cases of the four resources (cars,
// orders, products, users). Each service owns one repository (defined in
// internal/store), received through constructor injection.
//
// Key conventions shared by every service:
//
//   - A missing record is not an error: GetX and UpdateX return a nil record,
//     DeleteX returns false.
//   - Create copies only the fields present in the input and lets the store
//     assign the id.
//   - Update shallow-merges the present fields over the stored record; the id
//     (and an order's createdAt) survive any merge.
//   - Every successful mutation publishes an events.RecordChangedEvent. A
//     failing handler is logged and never fails the request.
//   - Unexpected store faults are wrapped in a ServiceError and returned.
package service
