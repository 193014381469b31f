package domain

import "testing"

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestNewCar(t *testing.T) {
	car := NewCar("4", CarInput{
		Brand: strPtr("Nissan"),
		Model: strPtr("Altima"),
		Year:  intPtr(2022),
		Color: strPtr("Blue"),
		Price: floatPtr(95000),
	})

	want := Car{ID: "4", Brand: "Nissan", Model: "Altima", Year: 2022, Color: "Blue", Price: 95000}
	if car != want {
		t.Errorf("Expected %+v, got %+v", want, car)
	}
}

func TestNewCarMissingFields(t *testing.T) {
	car := NewCar("7", CarInput{Brand: strPtr("Fiat")})

	if car.ID != "7" {
		t.Errorf("Expected id 7, got %s", car.ID)
	}
	if car.Model != "" || car.Year != 0 || car.Color != "" || car.Price != 0 {
		t.Errorf("Expected missing fields to stay zero, got %+v", car)
	}
}

func TestCarInputApplyTo(t *testing.T) {
	car := Car{ID: "1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: "White", Price: 85000}

	CarInput{Color: strPtr("Silver"), Price: floatPtr(80000)}.ApplyTo(&car)

	want := Car{ID: "1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: "Silver", Price: 80000}
	if car != want {
		t.Errorf("Expected %+v, got %+v", want, car)
	}
}

func TestCarRecordID(t *testing.T) {
	car := Car{ID: "1"}
	car.SetRecordID("9")
	if car.RecordID() != "9" {
		t.Errorf("Expected id 9, got %s", car.RecordID())
	}
}
