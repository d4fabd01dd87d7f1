package pgsql

import (
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(db),
		ItemRepo:        newPgxItemRepository(db),
		SaleRepo:        newPgxSaleRepository(db),
		ClockedTimeRepo: newPgxClockedTimeRepository(db),
	}
}
