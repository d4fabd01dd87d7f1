package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	"github.com/mprs-garage/repair_shop_app/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	db *pgxpool.Pool
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{db: db}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// Helper to convert domain.Sale to models.Sale
func toModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:             d.SaleID,
		Timestamp:          d.Timestamp,
		CustomerName:       d.Customer.Name,
		CustomerCID:        d.Customer.CID,
		CustomerDiscordID:  d.Customer.DiscordID,
		VehicleName:        nullableString(d.Customer.VehicleName),
		PlateNumber:        nullableString(d.Customer.PlateNumber),
		VehicleCategory:    string(d.Repair.VehicleCategory),
		EngineDamage:       nullableString(string(d.Repair.EngineDamage)),
		BodyDamage:         nullableString(string(d.Repair.BodyDamage)),
		NumberOfDoors:      d.Repair.NumberOfDoors,
		NumberOfWindows:    d.Repair.NumberOfWindows,
		NumberOfTyres:      d.Repair.NumberOfTyres,
		MotorOil:           d.Repair.MotorOil,
		NumberOfRepairKits: d.Repair.RepairKits,
		SoldBy:             d.SoldBy,
		SoldByDiscordID:    d.SoldByDiscordID,
		TotalBill:          d.TotalBill,
		TotalProfit:        d.TotalProfit,
		DiscountPercent:    d.DiscountPercent,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Sale plus its line rows to domain.Sale
func toDomainSale(m models.Sale, lines []models.SaleLineItem) domain.Sale {
	d := domain.Sale{
		SaleID:    m.SaleID,
		Timestamp: m.Timestamp,
		Customer: domain.CustomerDetails{
			Name:        m.CustomerName,
			CID:         m.CustomerCID,
			DiscordID:   m.CustomerDiscordID,
			VehicleName: m.VehicleName.String,
			PlateNumber: m.PlateNumber.String,
		},
		Repair: domain.RepairDetails{
			VehicleCategory: domain.VehicleCategory(m.VehicleCategory),
			EngineDamage:    domain.DamageLevel(m.EngineDamage.String),
			BodyDamage:      domain.DamageLevel(m.BodyDamage.String),
			NumberOfDoors:   m.NumberOfDoors,
			NumberOfWindows: m.NumberOfWindows,
			NumberOfTyres:   m.NumberOfTyres,
			MotorOil:        m.MotorOil,
			RepairKits:      m.NumberOfRepairKits,
			DiscountPercent: m.DiscountPercent,
		},
		SoldBy:          m.SoldBy,
		SoldByDiscordID: m.SoldByDiscordID,
		TotalBill:       m.TotalBill,
		TotalProfit:     m.TotalProfit,
		DiscountPercent: m.DiscountPercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	d.LineItems = make([]domain.SaleLineItem, len(lines))
	for i, line := range lines {
		d.LineItems[i] = domain.SaleLineItem{
			ItemID:      line.ItemID,
			Name:        line.Name,
			Category:    domain.VehicleCategory(line.Category.String),
			DamageLevel: domain.DamageLevel(line.DamageLevel.String),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			UnitCost:    line.UnitCost,
			TotalPrice:  line.TotalPrice,
			TotalProfit: line.TotalProfit,
		}
	}
	return d
}

const saleColumns = `sale_id, sale_timestamp, customer_name, customer_cid, customer_discord_id,
		vehicle_name, plate_number, vehicle_category, engine_damage, body_damage,
		number_of_doors, number_of_windows, number_of_tyres, motor_oil, number_of_repair_kits,
		sold_by, sold_by_discord_id, total_bill, total_profit, discount_percent,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.Timestamp,
		&m.CustomerName,
		&m.CustomerCID,
		&m.CustomerDiscordID,
		&m.VehicleName,
		&m.PlateNumber,
		&m.VehicleCategory,
		&m.EngineDamage,
		&m.BodyDamage,
		&m.NumberOfDoors,
		&m.NumberOfWindows,
		&m.NumberOfTyres,
		&m.MotorOil,
		&m.NumberOfRepairKits,
		&m.SoldBy,
		&m.SoldByDiscordID,
		&m.TotalBill,
		&m.TotalProfit,
		&m.DiscountPercent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for sale save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	m := toModelSale(sale)
	saleQuery := `
        INSERT INTO sales (sale_id, sale_timestamp, customer_name, customer_cid, customer_discord_id,
            vehicle_name, plate_number, vehicle_category, engine_damage, body_damage,
            number_of_doors, number_of_windows, number_of_tyres, motor_oil, number_of_repair_kits,
            sold_by, sold_by_discord_id, total_bill, total_profit, discount_percent,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
    `
	_, err = tx.Exec(ctx, saleQuery,
		m.SaleID, m.Timestamp, m.CustomerName, m.CustomerCID, m.CustomerDiscordID,
		m.VehicleName, m.PlateNumber, m.VehicleCategory, m.EngineDamage, m.BodyDamage,
		m.NumberOfDoors, m.NumberOfWindows, m.NumberOfTyres, m.MotorOil, m.NumberOfRepairKits,
		m.SoldBy, m.SoldByDiscordID, m.TotalBill, m.TotalProfit, m.DiscountPercent,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	lineQuery := `
        INSERT INTO sale_line_items (line_id, sale_id, item_id, name, category, damage_level,
            quantity, unit_price, unit_cost, total_price, total_profit, position)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	for i, line := range sale.LineItems {
		_, err = tx.Exec(ctx, lineQuery,
			uuid.NewString(),
			sale.SaleID,
			line.ItemID,
			line.Name,
			nullableString(string(line.Category)),
			nullableString(string(line.DamageLevel)),
			line.Quantity,
			line.UnitPrice,
			line.UnitCost,
			line.TotalPrice,
			line.TotalProfit,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale line item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale save: %w", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE sale_id = $1;`, saleColumns)
	m, err := scanSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	lines, err := r.findLineItems(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}
	d := toDomainSale(m, lines[saleID])
	return &d, nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context) ([]domain.Sale, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales ORDER BY sale_timestamp;`, saleColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var saleModels []models.Sale
	var saleIDs []string
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		saleModels = append(saleModels, m)
		saleIDs = append(saleIDs, m.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale rows: %w", err)
	}
	if len(saleModels) == 0 {
		return nil, nil
	}

	lines, err := r.findLineItems(ctx, saleIDs)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, len(saleModels))
	for i, m := range saleModels {
		sales[i] = toDomainSale(m, lines[m.SaleID])
	}
	return sales, nil
}

// findLineItems loads the line rows for a set of sales, keyed by sale ID and
// ordered by their position within each sale.
func (r *PgxSaleRepository) findLineItems(ctx context.Context, saleIDs []string) (map[string][]models.SaleLineItem, error) {
	query := `
        SELECT line_id, sale_id, item_id, name, category, damage_level,
            quantity, unit_price, unit_cost, total_price, total_profit, position
        FROM sale_line_items
        WHERE sale_id = ANY($1)
        ORDER BY sale_id, position;
    `
	rows, err := r.db.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale line items: %w", err)
	}
	defer rows.Close()

	lines := make(map[string][]models.SaleLineItem, len(saleIDs))
	for rows.Next() {
		var m models.SaleLineItem
		err := rows.Scan(
			&m.LineID,
			&m.SaleID,
			&m.ItemID,
			&m.Name,
			&m.Category,
			&m.DamageLevel,
			&m.Quantity,
			&m.UnitPrice,
			&m.UnitCost,
			&m.TotalPrice,
			&m.TotalProfit,
			&m.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale line item row: %w", err)
		}
		lines[m.SaleID] = append(lines[m.SaleID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale line item rows: %w", err)
	}
	return lines, nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	// sale_line_items rows go with the sale via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
