package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/memory"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// repositories puertos que consumen los casos de uso, independientes del driver.
type repositories struct {
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	clients       repository.ClientRepository
	suppliers     repository.SupplierRepository
	catalogs      repository.CatalogRepository
	notifications repository.NotificationRepository
	sales         repository.SaleRepository
}

// openStore abre el almacenamiento según STORE_DRIVER. El cierre devuelto libera el pool.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repositories, func(), error) {
	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.New()
		return repositories{
			products:      s.Products(),
			categories:    s.Categories(),
			clients:       s.Clients(),
			suppliers:     s.Suppliers(),
			catalogs:      s.Catalogs(),
			notifications: s.Notifications(),
			sales:         s.Sales(),
		}, func() {}, nil

	case config.StoreDriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := migrateUp(cfg.DB.ConnectionString(), log); err != nil {
				return repositories{}, nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		r := postgres.NewRepositories(pool)
		return repositories{
			products:      r.Products,
			categories:    r.Categories,
			clients:       r.Clients,
			suppliers:     r.Suppliers,
			catalogs:      r.Catalogs,
			notifications: r.Notifications,
			sales:         r.Sales,
		}, pool.Close, nil
	}
	return repositories{}, nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.App.StoreDriver)
}

func migrateUp(dsn string, log *logger.Logger) error {
	m, err := postgres.NewMigrator(dsn, log.Zerolog())
	if err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	return nil
}
