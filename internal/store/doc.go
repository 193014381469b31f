// Package store defines the repository contract used by the services.
// Each resource type (cars, orders, products, users) gets its own repository
// instance; implementations live under internal/platform.
package store
