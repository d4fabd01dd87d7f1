package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	"github.com/mprs-garage/repair_shop_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxItemRepository struct {
	db *pgxpool.Pool
}

func newPgxItemRepository(db *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{db: db}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Helper to convert domain.CatalogItem to models.Item
func toModelItem(d domain.CatalogItem) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		Name:        string(d.Name),
		Price:       d.Price,
		StockPrice:  d.StockPrice,
		Category:    nullableString(string(d.Category)),
		DamageLevel: nullableString(string(d.DamageLevel)),
		Stock:       d.Stock,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Item to domain.CatalogItem
func toDomainItem(m models.Item) domain.CatalogItem {
	return domain.CatalogItem{
		ItemID:      m.ItemID,
		Name:        domain.ItemName(m.Name),
		Price:       m.Price,
		StockPrice:  m.StockPrice,
		Category:    domain.VehicleCategory(m.Category.String),
		DamageLevel: domain.DamageLevel(m.DamageLevel.String),
		Stock:       m.Stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const itemColumns = `item_id, name, price, stock_price, category, damage_level, stock,
		created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.Price,
		&m.StockPrice,
		&m.Category,
		&m.DamageLevel,
		&m.Stock,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.CatalogItem) error {
	m := toModelItem(item)
	query := `
        INSERT INTO items (item_id, name, price, stock_price, category, damage_level, stock,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Price,
		m.StockPrice,
		m.Category,
		m.DamageLevel,
		m.Stock,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE item_id = $1;`, itemColumns)
	m, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}
	d := toDomainItem(m)
	return &d, nil
}

func (r *PgxItemRepository) FindItems(ctx context.Context) ([]domain.CatalogItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM items ORDER BY name, category NULLS FIRST, damage_level NULLS FIRST;`, itemColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, toDomainItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}
	return items, nil
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.CatalogItem) error {
	m := toModelItem(item)
	query := `
        UPDATE items SET
            price = $2,
            stock_price = $3,
            category = $4,
            damage_level = $5,
            stock = $6,
            last_updated_at = $7,
            last_updated_by = $8
        WHERE item_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.Price,
		m.StockPrice,
		m.Category,
		m.DamageLevel,
		m.Stock,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxItemRepository) AdjustStock(ctx context.Context, itemID string, delta int64) error {
	query := `UPDATE items SET stock = stock + $2, last_updated_at = now() WHERE item_id = $1;`
	tag, err := r.db.Exec(ctx, query, itemID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
