// Package metrics exposes Prometheus metrics for the HTTP API and the
// record stores.
//
// A Metrics value owns a private registry, so several servers (or tests) can
// run in one process without colliding on the global default registry.
//
// # Metrics
//
//   - storefront_http_requests_total{method,route,status}
//   - storefront_http_request_duration_seconds{method,route}
//   - storefront_records{resource}
//
// plus the standard Go runtime and process collectors.
//
// The route label is the chi route pattern (e.g. /cars/{id}), never the raw
// request path, which keeps label cardinality bounded.
package metrics
