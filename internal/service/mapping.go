package service

// Model → DTO mappers shared across services. Timestamps are formatted as
// RFC 3339 strings; nested relations map only when the row was hydrated.

import (
	"time"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/google/uuid"
)

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func uuidStr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   fmtTime(c.CreatedAt),
		UpdatedAt:   fmtTime(c.UpdatedAt),
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		CategoryID:    uuidStr(p.CategoryID),
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Weight:        p.Weight,
		Dimensions:    p.Dimensions,
		Supplier:      p.Supplier,
		CostPrice:     p.CostPrice,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		CreatedAt:     fmtTime(p.CreatedAt),
		UpdatedAt:     fmtTime(p.UpdatedAt),
	}
	if p.Category != nil {
		cat := mapCategory(*p.Category)
		resp.Category = &cat
	}
	return resp
}

func mapCustomer(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Company:   c.Company,
		TaxNumber: c.TaxNumber,
		CreatedAt: fmtTime(c.CreatedAt),
		UpdatedAt: fmtTime(c.UpdatedAt),
	}
}

func mapSaleItem(item model.SaleItem) dto.SaleItemResponse {
	resp := dto.SaleItemResponse{
		ID:        item.ID.String(),
		SaleID:    item.SaleID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
		Price:     item.Price,
		Total:     item.Total,
		CreatedAt: fmtTime(item.CreatedAt),
	}
	if item.Product != nil {
		p := mapProduct(*item.Product)
		resp.Product = &p
	}
	return resp
}

func mapSale(s model.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, mapSaleItem(item))
	}
	resp := dto.SaleResponse{
		ID:            s.ID.String(),
		CustomerID:    s.CustomerID.String(),
		Total:         s.Total,
		Discount:      s.Discount,
		FinalTotal:    s.FinalTotal,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Notes:         s.Notes,
		Items:         items,
		CreatedAt:     fmtTime(s.CreatedAt),
		UpdatedAt:     fmtTime(s.UpdatedAt),
	}
	if s.Customer != nil {
		c := mapCustomer(*s.Customer)
		resp.Customer = &c
	}
	return resp
}

func mapInvoice(inv model.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		SaleID:        inv.SaleID.String(),
		CustomerID:    inv.CustomerID.String(),
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		Status:        inv.Status,
		DueDate:       inv.DueDate.UTC().Format("2006-01-02"),
		Notes:         inv.Notes,
		CreatedAt:     fmtTime(inv.CreatedAt),
		UpdatedAt:     fmtTime(inv.UpdatedAt),
	}
	if inv.Sale != nil {
		s := mapSale(*inv.Sale)
		resp.Sale = &s
	}
	if inv.Customer != nil {
		c := mapCustomer(*inv.Customer)
		resp.Customer = &c
	}
	return resp
}

func mapPayment(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID.String(),
		InvoiceID:     p.InvoiceID.String(),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate.UTC().Format("2006-01-02"),
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     fmtTime(p.CreatedAt),
	}
}

func mapMovement(m model.StockMovement) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:        m.ID.String(),
		ProductID: m.ProductID.String(),
		Quantity:  m.Quantity,
		Type:      m.Type,
		Reference: m.Reference,
		Notes:     m.Notes,
		CreatedAt: fmtTime(m.CreatedAt),
	}
	if m.Product != nil {
		p := mapProduct(*m.Product)
		resp.Product = &p
	}
	return resp
}
