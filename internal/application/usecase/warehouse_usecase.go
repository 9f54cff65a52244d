package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// WarehouseUseCase casos de uso del selector de bodegas: listado, alta y selección.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create da de alta una bodega. Se crea activa; no existe eliminación.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	fields := domain.ValidationErrors{}
	if in.Name == "" {
		fields["name"] = "ingrese el nombre de la bodega"
	}
	if in.Location == "" {
		fields["location"] = "ingrese la ubicación"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		Address:     in.Address,
		Description: in.Description,
		Active:      true,
		Capacity:    in.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// Select valida la selección de bodega para la identidad dada: la bodega debe
// existir y la identidad debe tener acceso a ella.
func (uc *WarehouseUseCase) Select(ctx context.Context, identity *auth.Identity, warehouseID string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !identity.HasWarehouseAccess(warehouseID) {
		return nil, domain.ErrForbidden
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Location:    w.Location,
		Address:     w.Address,
		Description: w.Description,
		Active:      w.Active,
		Capacity:    w.Capacity,
		Stats: dto.WarehouseStatsDTO{
			TotalProducts:  w.Stats.TotalProducts,
			MovementsToday: w.Stats.MovementsToday,
			CriticalStock:  w.Stats.CriticalStock,
			LastActivity:   w.Stats.LastActivity,
		},
		CreatedAt: w.CreatedAt,
	}
}
