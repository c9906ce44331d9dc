package dto

// UpdateProfileRequest is a role-dependent partial update. Seeker fields and
// employer fields are mutually exclusive in practice; the service applies
// only those matching the actor's role.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`

	// Job seeker fields
	Skills     *[]string `json:"skills,omitempty"`
	Resume     *string   `json:"resume,omitempty"`
	Experience *int      `json:"experience,omitempty"`

	// Employer fields
	CompanyName *string `json:"company_name,omitempty"`
	Website     *string `json:"website,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// ProfileDTO combines user fields with the role-specific profile record.
type ProfileDTO struct {
	UserDTO

	// Job seeker fields
	Skills     []string `json:"skills,omitempty"`
	Resume     string   `json:"resume,omitempty"`
	Experience *int     `json:"experience,omitempty"`

	// Employer fields
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Bio         string `json:"bio,omitempty"`
}
