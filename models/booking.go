package models

// Booking is a request a visitor files against a Service.
type Booking struct {
	ServiceID     string `bson:"service_id" json:"service_id" validate:"required"`
	FullName      string `bson:"full_name" json:"full_name" validate:"required"`
	Email         string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	PreferredDate string `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
	// Status is pending/confirmed/cancelled by convention, but any
	// string is accepted and stored as-is.
	Status string `bson:"status" json:"status"`
}

// BookingInput is the inbound payload for creating a Booking.
type BookingInput struct {
	ServiceID     string `json:"service_id" validate:"required"`
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
}

// Validate checks every field constraint and, on success, returns the
// typed entity with the status defaulted to "pending" when absent.
func (in *BookingInput) Validate() (*Booking, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	b := &Booking{
		ServiceID:     in.ServiceID,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		PreferredDate: in.PreferredDate,
		Notes:         in.Notes,
		Status:        in.Status,
	}
	if b.Status == "" {
		b.Status = "pending"
	}
	return b, nil
}
