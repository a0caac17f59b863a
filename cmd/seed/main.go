// Command seed carga datos de demostración en PostgreSQL dentro de una sola transacción.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

type seedProduct struct {
	name     string
	category int
	cost     int64
	price    int64
	stock    int
}

var (
	seedCategories = []string{"Bebidas", "Panadería", "Lácteos", "Limpieza"}
	seedProducts   = []seedProduct{
		{"Café molido 500g", 0, 9000, 14500, 40},
		{"Agua 600ml", 0, 900, 2000, 120},
		{"Jugo de naranja 1L", 0, 3200, 5200, 8},
		{"Pan tajado", 1, 3500, 5600, 25},
		{"Croissant", 1, 1200, 2800, 6},
		{"Leche entera 1L", 2, 2900, 4300, 60},
		{"Queso campesino 250g", 2, 5200, 8200, 15},
		{"Detergente 1kg", 3, 7800, 11900, 30},
		{"Jabón de loza", 3, 2100, 3900, 0},
	}
	seedClients = []string{"Ana Gómez", "Carlos Ruiz", "Lucía Pérez", "Mateo Díaz", "Sofía Herrera"}
)

func main() {
	days := flag.Int("days", 120, "días de historial de ventas a generar")
	salesPerDay := flag.Int("sales-per-day", 6, "ventas promedio por día")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var sales int
	err = postgres.NewTxRunner(pool).Run(ctx, func(repos postgres.Repositories) error {
		sales, err = seed(ctx, repos, time.Now(), *days, *salesPerDay)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Int("categories", len(seedCategories)).
		Int("products", len(seedProducts)).
		Int("clients", len(seedClients)).
		Int("sales", sales).
		Msg("datos de demostración cargados")
}

func seed(ctx context.Context, repos postgres.Repositories, now time.Time, days, perDay int) (int, error) {
	rng := rand.New(rand.NewPCG(42, uint64(days)))

	categoryIDs := make([]string, 0, len(seedCategories))
	for _, name := range seedCategories {
		c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := repos.Categories.Create(ctx, c); err != nil {
			return 0, fmt.Errorf("categoría %s: %w", name, err)
		}
		categoryIDs = append(categoryIDs, c.ID)
	}

	products := make([]*entity.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		p := &entity.Product{
			ID:            uuid.New().String(),
			Name:          sp.name,
			CategoryID:    categoryIDs[sp.category],
			PurchasePrice: decimal.NewFromInt(sp.cost),
			SalePrice:     decimal.NewFromInt(sp.price),
			Stock:         sp.stock,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repos.Products.Create(ctx, p); err != nil {
			return 0, fmt.Errorf("producto %s: %w", sp.name, err)
		}
		products = append(products, p)
	}

	clientIDs := make([]string, 0, len(seedClients))
	for i, name := range seedClients {
		c := &entity.Client{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     fmt.Sprintf("cliente%d@example.com", i+1),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Clients.Create(ctx, c); err != nil {
			return 0, fmt.Errorf("cliente %s: %w", name, err)
		}
		clientIDs = append(clientIDs, c.ID)
	}

	if err := repos.Suppliers.Create(ctx, &entity.Supplier{
		ID: uuid.New().String(), Name: "Distribuidora Central", ContactName: "Laura Mejía",
		Email: "ventas@distcentral.example.com", CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		return 0, fmt.Errorf("proveedor: %w", err)
	}
	if err := repos.Catalogs.Create(ctx, &entity.Catalog{
		ID:         uuid.New().String(),
		Name:       "Desayuno",
		ProductIDs: []string{products[0].ID, products[3].ID, products[5].ID},
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return 0, fmt.Errorf("catálogo: %w", err)
	}
	if err := repos.Notifications.Create(ctx, &entity.Notification{
		ID: uuid.New().String(), Title: "Bienvenido", Message: "Datos de demostración cargados",
		Type: entity.NotificationInfo, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		return 0, fmt.Errorf("notificación: %w", err)
	}

	count := 0
	start := now.AddDate(0, 0, -days)
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		n := rng.IntN(perDay*2 + 1)
		for i := 0; i < n; i++ {
			sale := randomSale(rng, day, products, clientIDs)
			if err := repos.Sales.Create(ctx, sale); err != nil {
				return 0, fmt.Errorf("venta: %w", err)
			}
			count++
		}
	}
	return count, nil
}

// randomSale venta de 1 a 3 líneas entre las 8:00 y las 20:00 del día dado.
func randomSale(rng *rand.Rand, day time.Time, products []*entity.Product, clientIDs []string) *entity.Sale {
	date := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.IntN(12), rng.IntN(60), 0, 0, day.Location())
	lines := 1 + rng.IntN(3)
	items := make([]entity.SaleItem, 0, lines)
	var total decimal.Decimal
	for _, idx := range rng.Perm(len(products))[:lines] {
		p := products[idx]
		qty := 1 + rng.IntN(4)
		lineTotal := p.SalePrice.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, entity.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.SalePrice,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  clientIDs[rng.IntN(len(clientIDs))],
		Date:      date,
		Items:     items,
		Total:     total,
		CreatedAt: date,
		UpdatedAt: date,
	}
}
