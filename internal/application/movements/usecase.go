package movements

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// MovementsUseCase consulta el log de actividad reciente de una bodega.
// El log es de solo lectura aquí; las entradas las produce el caso de uso de
// operaciones de stock.
type MovementsUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementsUseCase construye el caso de uso.
func NewMovementsUseCase(movementRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementsUseCase {
	return &MovementsUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// ListRecent devuelve la actividad de la bodega, más reciente primero,
// opcionalmente filtrada por producto, tipo y período.
func (uc *MovementsUseCase) ListRecent(ctx context.Context, warehouseID string, filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	records, err := uc.movementRepo.ListByWarehouse(ctx, warehouseID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementDTO, 0, len(records))
	for _, m := range records {
		item := dto.MovementDTO{
			ID:             m.ID,
			WarehouseID:    m.WarehouseID,
			ProductID:      m.ProductID,
			Type:           m.Type,
			Quantity:       m.Quantity,
			UserID:         m.UserID,
			Recipient:      m.Recipient,
			Destination:    m.Destination,
			Comment:        m.Comment,
			RemainingStock: m.RemainingStock,
			CreatedAt:      m.CreatedAt,
		}
		if p, err := uc.productRepo.GetByID(ctx, m.ProductID); err == nil && p != nil {
			item.ProductName = p.Name
		}
		items = append(items, item)
	}

	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}
