package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name      string  `json:"name"      validate:"required,min=1,max=200"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Company   *string `json:"company"`
	TaxNumber *string `json:"taxNumber"`
}

type UpdateCustomerRequest struct {
	Name      *string `json:"name"      validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Company   *string `json:"company"`
	TaxNumber *string `json:"taxNumber"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Company   *string `json:"company"`
	TaxNumber *string `json:"taxNumber"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
