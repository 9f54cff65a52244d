package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// Tipos de operación de stock sobre un producto.
const (
	OperationAdd      = "add"      // поступление: suma al stock en bodega
	OperationSubtract = "subtract" // списание: resta del stock disponible
)

// RegisterOperationUseCase registra operaciones de stock de forma atómica:
// valida, muta el registro de inventario y agrega la entrada inmutable al log
// de movimientos dentro de la misma unidad transaccional.
type RegisterOperationUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterOperationUseCase construye el caso de uso.
func NewRegisterOperationUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterOperationUseCase {
	return &RegisterOperationUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterOperation valida y aplica una operación add/subtract.
//
// Reglas:
//   - cantidad entera positiva;
//   - subtract exige destinatario no vacío y cantidad ≤ disponible;
//   - en fallo de validación no se muta nada (todo-o-nada);
//   - un add sobre un producto sin registro crea el registro con reservado=0;
//   - cada éxito agrega un MovementRecord con el disponible resultante.
//
// La verificación de disponibilidad corre dentro de la transacción, sobre la
// fila bloqueada, para que un subtract nunca deje el disponible negativo.
func (uc *RegisterOperationUseCase) RegisterOperation(
	ctx context.Context,
	warehouseID, userID, productID string,
	in dto.RegisterOperationRequest,
) (*dto.OperationResultDTO, error) {
	if warehouseID == "" || userID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}

	fields := domain.ValidationErrors{}
	if in.Type != OperationAdd && in.Type != OperationSubtract {
		fields["type"] = "tipo de operación desconocido"
	}
	if !in.Quantity.IsInteger() || !in.Quantity.GreaterThan(decimal.Zero) {
		fields["quantity"] = "ingrese una cantidad entera positiva"
	}
	if in.Type == OperationSubtract && in.Recipient == "" {
		fields["recipient"] = "indique el destinatario"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var result *dto.OperationResultDTO

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		rec, err := invRepo.GetForUpdate(ctx, productID, warehouseID)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &entity.InventoryRecord{
				ProductID:   productID,
				WarehouseID: warehouseID,
				OnHand:      decimal.Zero,
				Reserved:    decimal.Zero,
			}
		}

		movementType := entity.MovementTypeIn
		switch in.Type {
		case OperationAdd:
			rec.OnHand = rec.OnHand.Add(in.Quantity)
		case OperationSubtract:
			if rec.Available().LessThan(in.Quantity) {
				return fmt.Errorf("disponible %s: %w", rec.Available(), domain.ErrInsufficientStock)
			}
			rec.OnHand = rec.OnHand.Sub(in.Quantity)
			movementType = entity.MovementTypeOut
		}
		rec.UpdatedAt = now

		if err := invRepo.Upsert(ctx, rec); err != nil {
			return err
		}

		mov := &entity.MovementRecord{
			ID:             uuid.New().String(),
			WarehouseID:    warehouseID,
			ProductID:      productID,
			Type:           movementType,
			Quantity:       in.Quantity,
			UserID:         userID,
			Recipient:      in.Recipient,
			Destination:    in.Destination,
			Comment:        in.Comment,
			RemainingStock: rec.Available(),
			CreatedAt:      now,
		}
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}

		result = &dto.OperationResultDTO{
			MovementID: mov.ID,
			ProductID:  productID,
			Type:       in.Type,
			Quantity:   in.Quantity,
			OnHand:     rec.OnHand,
			Available:  rec.Available(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
