package dtos

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=SUPER_ADMIN MANAGER ACCOUNTANT CONCIERGE TENANT"`
}

type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type TenantProfileRequest struct {
	FirstName        string  `json:"first_name" validate:"required"`
	LastName         string  `json:"last_name" validate:"required"`
	Phone            string  `json:"phone" validate:"required"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	IDCardNumber     *string `json:"id_card_number,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}
