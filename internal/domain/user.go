package domain

// User is a customer account. Email is stored as given; no format check is
// performed.
type User struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   int    `json:"age"   yaml:"age"`
}

// RecordID returns the store-assigned id.
func (u *User) RecordID() string { return u.ID }

// SetRecordID sets the store-assigned id.
func (u *User) SetRecordID(id string) { u.ID = id }

// UserInput carries the fields of a create or update request.
type UserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// NewUser builds a user with the given id from the supplied fields only.
func NewUser(id string, in UserInput) User {
	user := User{ID: id}
	in.ApplyTo(&user)
	return user
}

// ApplyTo overwrites the fields of user that are present in the input.
func (in UserInput) ApplyTo(user *User) {
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
}
