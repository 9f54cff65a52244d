package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// DemoPassword es la contraseña de los usuarios de la semilla demo.
const DemoPassword = "demo123"

// Seed carga el conjunto de datos demo en el Store: catálogo de equipamiento
// solar, dos bodegas, ocho registros de stock y tres usuarios (uno por rol).
func Seed(store *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash de contraseña demo: %w", err)
	}
	now := time.Now().UTC()

	store.mu.Lock()
	defer store.mu.Unlock()

	store.categories = []*entity.Category{
		{ID: "solar_panels", Name: "Солнечные панели", Icon: "fas fa-solar-panel", Color: "#007AFF", Description: "Фотоэлектрические модули различной мощности", SortOrder: 1},
		{ID: "inverters", Name: "Инверторы", Icon: "fas fa-microchip", Color: "#00C896", Description: "Преобразователи постоянного тока в переменный", SortOrder: 2},
		{ID: "batteries", Name: "АКБ / BMS", Icon: "fas fa-battery-half", Color: "#FF9500", Description: "Аккумуляторные батареи и системы управления", SortOrder: 3},
		{ID: "cables", Name: "Солнечный кабель", Icon: "fas fa-plug", Color: "#DC3545", Description: "Специализированные кабели для солнечных установок", SortOrder: 4},
	}

	store.products = []*entity.Product{
		{
			ID: "trina_620w", CategoryID: "solar_panels",
			Name: "Trina 620Вт", Brand: "Trina Solar", Model: "TSM-620W",
			Specifications: "620Вт, монокристалл, 166мм ячейки",
			Description:    "Высокоэффективная солнечная панель с мощностью 620Вт",
			Unit:           "шт", SKU: "TS-620-MONO",
			CriticalStock: decimal.NewFromInt(50), Active: true,
		},
		{
			ID: "jinko_615w", CategoryID: "solar_panels",
			Name: "Jinko 615Вт", Brand: "Jinko Solar", Model: "JKM-615W",
			Specifications: "615Вт, монокристалл, Tiger Pro серия",
			Description:    "Солнечная панель премиум класса Tiger Pro",
			Unit:           "шт", SKU: "JK-615-TIGER",
			CriticalStock: decimal.NewFromInt(50), Active: true,
		},
		{
			ID: "huawei_10ktl", CategoryID: "inverters",
			Name: "Huawei Sun2000-10KTL", Brand: "Huawei", Model: "SUN2000-10KTL-M1",
			Specifications: "10кВт, 3-фазный, с оптимизаторами",
			Description:    "Трехфазный сетевой инвертор с встроенными оптимизаторами",
			Unit:           "шт", SKU: "HW-10K-M1",
			CriticalStock: decimal.NewFromInt(10), Active: true,
		},
		{
			ID: "solis_8k", CategoryID: "inverters",
			Name: "Solis 8K-5G", Brand: "Solis", Model: "8K-5G",
			Specifications: "8кВт, 3-фазный, Wi-Fi мониторинг",
			Description:    "Компактный трехфазный инвертор с Wi-Fi",
			Unit:           "шт", SKU: "SOL-8K-5G",
			CriticalStock: decimal.NewFromInt(10), Active: true,
		},
		{
			ID: "pylontech_us3000", CategoryID: "batteries",
			Name: "Pylontech US3000", Brand: "Pylontech", Model: "US3000C",
			Specifications: "3.5кВт*ч, LiFePO4, 48В",
			Description:    "Литий-железо-фосфатная батарея для домашних систем",
			Unit:           "шт", SKU: "PT-US3000C",
			CriticalStock: decimal.NewFromInt(5), Active: true,
		},
		{
			ID: "pylontech_us5000", CategoryID: "batteries",
			Name: "Pylontech US5000", Brand: "Pylontech", Model: "US5000",
			Specifications: "4.8кВт*ч, LiFePO4, 48В",
			Description:    "Увеличенная емкость батареи US серии",
			Unit:           "шт", SKU: "PT-US5000",
			CriticalStock: decimal.NewFromInt(5), Active: true,
		},
		{
			ID: "pv1f_6mm_black", CategoryID: "cables",
			Name: "Кабель PV1-F 6мм² черный", Brand: "Generic", Model: "PV1-F 6mm²",
			Specifications: "6мм², медь, UV стойкий, -40°C до +90°C",
			Description:    "Специализированный кабель для солнечных панелей",
			Unit:           "м", SKU: "PV1F-6-BLK",
			CriticalStock: decimal.NewFromInt(100), Active: true,
		},
		{
			ID: "pv1f_4mm_red", CategoryID: "cables",
			Name: "Кабель PV1-F 4мм² красный", Brand: "Generic", Model: "PV1-F 4mm²",
			Specifications: "4мм², медь, UV стойкий, -40°C до +90°C",
			Description:    "Кабель для подключения солнечных панелей",
			Unit:           "м", SKU: "PV1F-4-RED",
			CriticalStock: decimal.NewFromInt(100), Active: true,
		},
	}

	store.warehouses = []*entity.Warehouse{
		{
			ID: "warehouse_1", Name: "Склад Белая Церковь", Location: "Белая Церковь",
			Address:     "ул. Складская, 15, Белая Церковь, Киевская обл.",
			Description: "Основной склад солнечного оборудования",
			Active:      true, Capacity: 10000, ManagerID: "manager_1",
			Stats: entity.WarehouseStats{
				TotalProducts: 245, MovementsToday: 12, CriticalStock: 3,
				LastActivity: now.Add(-2 * time.Hour),
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "warehouse_2", Name: "Склад Киев", Location: "Киев",
			Address:     "пр. Промышленный, 42, Киев",
			Description: "Распределительный склад для Киевского региона",
			Active:      true, Capacity: 7500, ManagerID: "manager_2",
			Stats: entity.WarehouseStats{
				TotalProducts: 189, MovementsToday: 8, CriticalStock: 1,
				LastActivity: now.Add(-45 * time.Minute),
			},
			CreatedAt: now, UpdatedAt: now,
		},
	}

	// Registros de stock de la bodega principal.
	seedStock := []struct {
		productID string
		onHand    int64
		reserved  int64
	}{
		{"trina_620w", 150, 20},
		{"jinko_615w", 85, 15},
		{"huawei_10ktl", 25, 3},
		{"solis_8k", 18, 2},
		{"pylontech_us3000", 32, 8},
		{"pylontech_us5000", 28, 5},
		{"pv1f_6mm_black", 2500, 200},
		{"pv1f_4mm_red", 1800, 150},
	}
	for _, s := range seedStock {
		rec := &entity.InventoryRecord{
			ProductID:   s.productID,
			WarehouseID: "warehouse_1",
			OnHand:      decimal.NewFromInt(s.onHand),
			Reserved:    decimal.NewFromInt(s.reserved),
			UpdatedAt:   now,
		}
		store.records[recordKey(rec.ProductID, rec.WarehouseID)] = rec
	}

	store.users = []*entity.User{
		{
			ID: "admin_1", Username: "admin", Email: "admin@warehouse.com",
			FullName: "Системный администратор", Role: entity.RoleAdmin,
			Warehouses: []string{"warehouse_1", "warehouse_2"},
			Active:     true, PasswordHash: string(hash),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "manager_1", Username: "manager", Email: "manager@warehouse.com",
			FullName: "Менеджер склада", Role: entity.RoleManager,
			Warehouses: []string{"warehouse_1"},
			Active:     true, PasswordHash: string(hash),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "keeper_1", Username: "keeper", Email: "keeper@warehouse.com",
			FullName: "Кладовщик", Role: entity.RoleWarehouseKeeper,
			Warehouses: []string{"warehouse_1", "warehouse_2"},
			Active:     true, PasswordHash: string(hash),
			CreatedAt: now, UpdatedAt: now,
		},
	}

	return nil
}
