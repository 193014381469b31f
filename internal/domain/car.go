package domain

// Car is a vehicle listed for sale.
type Car struct {
	ID    string  `json:"id"    yaml:"id"`
	Brand string  `json:"brand" yaml:"brand"`
	Model string  `json:"model" yaml:"model"`
	Year  int     `json:"year"  yaml:"year"`
	Color string  `json:"color" yaml:"color"`
	Price float64 `json:"price" yaml:"price"`
}

// RecordID returns the store-assigned id.
func (c *Car) RecordID() string { return c.ID }

// SetRecordID sets the store-assigned id.
func (c *Car) SetRecordID(id string) { c.ID = id }

// CarInput carries the fields of a create or update request.
// Nil fields were not supplied by the caller.
type CarInput struct {
	Brand *string  `json:"brand"`
	Model *string  `json:"model"`
	Year  *int     `json:"year"`
	Color *string  `json:"color"`
	Price *float64 `json:"price"`
}

// NewCar builds a car with the given id from the supplied fields only.
// Missing fields keep their zero value.
func NewCar(id string, in CarInput) Car {
	car := Car{ID: id}
	in.ApplyTo(&car)
	return car
}

// ApplyTo overwrites the fields of car that are present in the input.
func (in CarInput) ApplyTo(car *Car) {
	if in.Brand != nil {
		car.Brand = *in.Brand
	}
	if in.Model != nil {
		car.Model = *in.Model
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Color != nil {
		car.Color = *in.Color
	}
	if in.Price != nil {
		car.Price = *in.Price
	}
}
