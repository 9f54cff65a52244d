package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// ReportsUseCase arma los datasets de reporte y los entrega a los exportadores.
type ReportsUseCase struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	movementRepo  repository.MovementRepository
	exporters     map[string]Exporter
}

// NewReportsUseCase construye el caso de uso con los exportadores por formato.
func NewReportsUseCase(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	movementRepo repository.MovementRepository,
	exporters map[string]Exporter,
) *ReportsUseCase {
	return &ReportsUseCase{
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		exporters:     exporters,
	}
}

// Formats devuelve los formatos de exportación disponibles.
func (uc *ReportsUseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	return out
}

// BuildStockReport arma el reporte de remanentes. warehouseID vacío consolida
// todas las bodegas a las que la identidad tiene acceso; una bodega explícita
// fuera de su alcance es ErrForbidden.
func (uc *ReportsUseCase) BuildStockReport(ctx context.Context, identity *auth.Identity, warehouseID string) (*dto.StockReport, error) {
	warehouses, err := uc.targetWarehouses(ctx, identity, warehouseID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	report := &dto.StockReport{GeneratedAt: time.Now()}
	for _, w := range warehouses {
		records, err := uc.inventoryRepo.ListByWarehouse(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			p := byID[rec.ProductID]
			if p == nil {
				continue
			}
			available := rec.Available()
			report.Rows = append(report.Rows, dto.StockReportRow{
				WarehouseName: w.Name,
				ProductName:   p.Name,
				SKU:           p.SKU,
				Unit:          p.Unit,
				OnHand:        rec.OnHand,
				Reserved:      rec.Reserved,
				Available:     available,
				IsCritical:    p.IsCritical(available),
			})
		}
	}
	return report, nil
}

// BuildMovementReport arma el reporte de movimientos de una bodega en un período.
func (uc *ReportsUseCase) BuildMovementReport(ctx context.Context, identity *auth.Identity, warehouseID string, from, to time.Time) (*dto.MovementReport, error) {
	if !identity.HasWarehouseAccess(warehouseID) {
		return nil, domain.ErrForbidden
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	records, err := uc.movementRepo.ListByWarehouse(ctx, warehouseID, repository.MovementFilter{
		From: &from,
		To:   &to,
	})
	if err != nil {
		return nil, err
	}

	report := &dto.MovementReport{
		WarehouseName: warehouse.Name,
		From:          from,
		To:            to,
		GeneratedAt:   time.Now(),
	}
	for _, m := range records {
		row := dto.MovementReportRow{
			Date:      m.CreatedAt,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Recipient: m.Recipient,
			Remaining: m.RemainingStock,
		}
		if p, err := uc.productRepo.GetByID(ctx, m.ProductID); err == nil && p != nil {
			row.ProductName = p.Name
			row.SKU = p.SKU
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// ExportStock serializa el reporte de remanentes en el formato pedido.
func (uc *ReportsUseCase) ExportStock(ctx context.Context, identity *auth.Identity, warehouseID, format string) ([]byte, string, error) {
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, "", domain.ErrInvalidInput
	}
	report, err := uc.BuildStockReport(ctx, identity, warehouseID)
	if err != nil {
		return nil, "", err
	}
	data, err := exp.ExportStockReport(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return data, exp.ContentType(), nil
}

// ExportMovements serializa el reporte de movimientos en el formato pedido.
func (uc *ReportsUseCase) ExportMovements(ctx context.Context, identity *auth.Identity, warehouseID, format string, from, to time.Time) ([]byte, string, error) {
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, "", domain.ErrInvalidInput
	}
	report, err := uc.BuildMovementReport(ctx, identity, warehouseID, from, to)
	if err != nil {
		return nil, "", err
	}
	data, err := exp.ExportMovementReport(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return data, exp.ContentType(), nil
}

// targetWarehouses resuelve las bodegas del reporte acotadas al acceso de la
// identidad: el consolidado solo abarca sus bodegas (un admin las abarca
// todas) y una bodega explícita inaccesible es ErrForbidden.
func (uc *ReportsUseCase) targetWarehouses(ctx context.Context, identity *auth.Identity, warehouseID string) ([]*entity.Warehouse, error) {
	if warehouseID == "" {
		all, err := uc.warehouseRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		accessible := make([]*entity.Warehouse, 0, len(all))
		for _, w := range all {
			if identity.HasWarehouseAccess(w.ID) {
				accessible = append(accessible, w)
			}
		}
		return accessible, nil
	}
	if !identity.HasWarehouseAccess(warehouseID) {
		return nil, domain.ErrForbidden
	}
	w, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return []*entity.Warehouse{w}, nil
}
