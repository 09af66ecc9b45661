package service

import (
	"context"
	"testing"

	"github.com/mturke1996/al-fahed/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInventorySvc() (InventoryService, *stubMovementRepo, *stubProductRepo) {
	movementRepo := &stubMovementRepo{}
	productRepo := newStubProductRepo()
	svc := NewInventoryService(movementRepo, productRepo)
	return svc, movementRepo, productRepo
}

func TestRecordMovement_In(t *testing.T) {
	svc, movementRepo, productRepo := buildInventorySvc()
	p := seedProduct(productRepo, "PVC Pipes", 150.00, 10, nil)

	resp, err := svc.RecordMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: p.ID.String(),
		Quantity:  15,
		Type:      "in",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, productRepo.products[p.ID].Stock)
	assert.Equal(t, "in", resp.Type)
	require.Len(t, movementRepo.movements, 1)
}

func TestRecordMovement_OutCannotGoNegative(t *testing.T) {
	svc, movementRepo, productRepo := buildInventorySvc()
	p := seedProduct(productRepo, "Brass Valves", 85.50, 5, nil)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: p.ID.String(),
		Quantity:  8,
		Type:      "out",
	})
	assert.ErrorContains(t, err, "negative stock")
	assert.Equal(t, 5, productRepo.products[p.ID].Stock)
	assert.Empty(t, movementRepo.movements)
}

func TestRecordMovement_AdjustmentSignedDelta(t *testing.T) {
	svc, _, productRepo := buildInventorySvc()
	p := seedProduct(productRepo, "Tiles", 30.00, 100, nil)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: p.ID.String(),
		Quantity:  -30,
		Type:      "adjustment",
	})
	require.NoError(t, err)
	assert.Equal(t, 70, productRepo.products[p.ID].Stock)
}

func TestRecordMovement_InRequiresPositiveQuantity(t *testing.T) {
	svc, _, productRepo := buildInventorySvc()
	p := seedProduct(productRepo, "Paints", 45.00, 10, nil)

	_, err := svc.RecordMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: p.ID.String(),
		Quantity:  -3,
		Type:      "in",
	})
	assert.ErrorContains(t, err, "positive")
}

func TestLowStockAlerts(t *testing.T) {
	svc, _, productRepo := buildInventorySvc()

	// explicit minimum, at the threshold: alerted
	seedProduct(productRepo, "Welding Tools", 250.00, 5, intPtr(5))
	// explicit minimum, above the threshold: not alerted
	seedProduct(productRepo, "Thermal Insulation", 180.00, 40, intPtr(12))
	// no minimum: default threshold of 10 applies
	seedProduct(productRepo, "Galvanized Taps", 120.00, 9, nil)
	seedProduct(productRepo, "PVC Pipes", 150.00, 11, nil)

	alerts, err := svc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	names := []string{alerts[0].Name, alerts[1].Name}
	assert.ElementsMatch(t, []string{"Welding Tools", "Galvanized Taps"}, names)
}
