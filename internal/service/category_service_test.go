package service

import (
	"context"
	"testing"

	"github.com/mturke1996/al-fahed/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_DuplicateNameRejected(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Pipes", Color: "blue"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Pipes"})
	assert.ErrorContains(t, err, "already exists")
}

func TestUpdateCategory_PartialFields(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name: "Valves", Description: "Water and gas valves", Color: "green",
	})
	require.NoError(t, err)

	color := "red"
	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateCategoryRequest{Color: &color})
	require.NoError(t, err)

	assert.Equal(t, "Valves", updated.Name)
	assert.Equal(t, "Water and gas valves", updated.Description)
	assert.Equal(t, "red", updated.Color)
}

func TestDeleteCategory_ProductKeepsNilCategory(t *testing.T) {
	categoryRepo := newStubCategoryRepo()
	productRepo := newStubProductRepo()
	categorySvc := NewCategoryService(categoryRepo)
	productSvc := NewProductService(productRepo)

	created, err := categorySvc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tools"})
	require.NoError(t, err)

	p := seedProduct(productRepo, "Welding Tools", 250.00, 25, nil)
	cid := uuid.MustParse(created.ID)
	p.CategoryID = &cid

	require.NoError(t, categorySvc.Delete(context.Background(), cid))

	// the FK is SET NULL in postgres; the stub mimics the end state
	p.CategoryID = nil
	p.Category = nil

	resp, err := productSvc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.CategoryID)
	assert.Nil(t, resp.Category)
}

func TestDeleteCategory_Unknown(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "category not found")
}
