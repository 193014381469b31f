// Package fixtures provides the records every store is seeded with at
// start-up, either the built-in defaults or a YAML fixture file.
package fixtures

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFixture is returned when a fixture file cannot be parsed.
var ErrInvalidFixture = errors.New("invalid fixture file")

// Set holds the seed records of every resource type.
type Set struct {
	Cars     []domain.Car     `yaml:"cars"`
	Orders   []domain.Order   `yaml:"orders"`
	Products []domain.Product `yaml:"products"`
	Users    []domain.User    `yaml:"users"`
}

// seededAt is the creation time shared by the default orders.
var seededAt = time.Date(2025, time.November, 7, 18, 18, 8, 792000000, time.UTC)

// Default returns a fresh copy of the built-in seed data.
func Default() Set {
	return Set{
		Cars: []domain.Car{
			{ID: "1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: "White", Price: 85000},
			{ID: "2", Brand: "Honda", Model: "Civic", Year: 2021, Color: "Black", Price: 92000},
			{ID: "3", Brand: "Ford", Model: "Focus", Year: 2019, Color: "Red", Price: 75000},
		},
		Orders: []domain.Order{
			{
				ID:        "1",
				UserID:    "1",
				Items:     []domain.OrderItem{{ProductID: "1", Quantity: 2, Price: 3500}},
				Total:     7000,
				Status:    domain.OrderStatusPending,
				CreatedAt: seededAt,
			},
			{
				ID:        "2",
				UserID:    "2",
				Items:     []domain.OrderItem{{ProductID: "2", Quantity: 1, Price: 150}},
				Total:     150,
				Status:    domain.OrderStatusCompleted,
				CreatedAt: seededAt,
			},
			{
				ID:        "3",
				UserID:    "1",
				Items:     []domain.OrderItem{{ProductID: "3", Quantity: 1, Price: 450}},
				Total:     450,
				Status:    domain.OrderStatusProcessing,
				CreatedAt: seededAt,
			},
		},
		Products: []domain.Product{
			{ID: "1", Name: "Notebook", Description: "Notebook Dell Inspiron", Price: 3500, Stock: 10, Category: "Electronics"},
			{ID: "2", Name: "Mouse", Description: "Mouse Logitech Wireless", Price: 150, Stock: 50, Category: "Electronics"},
			{ID: "3", Name: "Teclado", Description: "Teclado Mecânico RGB", Price: 450, Stock: 25, Category: "Electronics"},
		},
		Users: []domain.User{
			{ID: "1", Name: "João Silva", Email: "joao@example.com", Age: 30},
			{ID: "2", Name: "Maria Santos", Email: "maria@example.com", Age: 25},
			{ID: "3", Name: "Pedro Oliveira", Email: "pedro@example.com", Age: 35},
		},
	}
}

// fileSet mirrors Set with pointers so that a resource key missing from the
// file can be told apart from an explicitly empty list.
type fileSet struct {
	Cars     *[]domain.Car     `yaml:"cars"`
	Orders   *[]domain.Order   `yaml:"orders"`
	Products *[]domain.Product `yaml:"products"`
	Users    *[]domain.User    `yaml:"users"`
}

// Load returns the default seed when path is empty, otherwise the defaults
// overlaid with the fixture file at path.
func Load(path string) (Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML fixture file. Each resource key present in the file
// replaces that resource's default seed; absent keys keep the defaults.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML and overlays it on the defaults.
func Parse(data []byte) (Set, error) {
	var file fileSet
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	set := Default()
	if file.Cars != nil {
		set.Cars = *file.Cars
	}
	if file.Orders != nil {
		set.Orders = *file.Orders
		for i := range set.Orders {
			if set.Orders[i].Items == nil {
				set.Orders[i].Items = []domain.OrderItem{}
			}
			if set.Orders[i].Status == "" {
				set.Orders[i].Status = domain.OrderStatusPending
			}
		}
	}
	if file.Products != nil {
		set.Products = *file.Products
	}
	if file.Users != nil {
		set.Users = *file.Users
	}
	return set, nil
}
