package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateMovementRequest records a manual inventory movement.
// "in" receives stock, "out" removes stock, "adjustment" sets a signed delta.
type CreateMovementRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Quantity  int     `json:"quantity"  validate:"required"`
	Type      string  `json:"type"      validate:"required,oneof=in out adjustment"`
	Reference *string `json:"reference"`
	Notes     *string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovementResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Type      string           `json:"type"`
	Reference *string          `json:"reference"`
	Notes     *string          `json:"notes"`
	CreatedAt string           `json:"createdAt"`
}

// LowStockAlert flags a product at or below its minimum stock level.
type LowStockAlert struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	Stock         int    `json:"stock"`
	MinStockLevel int    `json:"minStockLevel"`
}
