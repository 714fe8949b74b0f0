package models

// Service is a community service offering, e.g. a food pantry pickup
// or a free tutoring program.
type Service struct {
	Title           string   `bson:"title" json:"title" validate:"required"`
	Description     string   `bson:"description" json:"description" validate:"required"`
	Category        string   `bson:"category" json:"category" validate:"required"`
	Location        string   `bson:"location" json:"location" validate:"required"`
	Address         string   `bson:"address,omitempty" json:"address,omitempty"`
	ProviderName    string   `bson:"provider_name" json:"provider_name" validate:"required"`
	ContactEmail    string   `bson:"contact_email,omitempty" json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    string   `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Tags            []string `bson:"tags" json:"tags"`
	BookingRequired bool     `bson:"booking_required" json:"booking_required"`
}

// ServiceInput is the inbound payload for creating a Service. Optional
// fields with non-zero defaults are pointers so an absent field can be
// told apart from an explicit value.
type ServiceInput struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Address         string   `json:"address"`
	ProviderName    string   `json:"provider_name" validate:"required"`
	ContactEmail    string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string   `json:"contact_phone"`
	Tags            []string `json:"tags"`
	BookingRequired *bool    `json:"booking_required"`
}

// Validate checks every field constraint and, on success, returns the
// typed entity with defaults applied (tags -> empty list,
// booking_required -> true).
func (in *ServiceInput) Validate() (*Service, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	svc := &Service{
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		Location:        in.Location,
		Address:         in.Address,
		ProviderName:    in.ProviderName,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		Tags:            in.Tags,
		BookingRequired: true,
	}
	if svc.Tags == nil {
		svc.Tags = []string{}
	}
	if in.BookingRequired != nil {
		svc.BookingRequired = *in.BookingRequired
	}
	return svc, nil
}
