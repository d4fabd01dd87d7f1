package pgsql

import (
	"context"
	"fmt"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	"github.com/mprs-garage/repair_shop_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClockedTimeRepository struct {
	db *pgxpool.Pool
}

func newPgxClockedTimeRepository(db *pgxpool.Pool) portsrepo.ClockedTimeReader {
	return &PgxClockedTimeRepository{db: db}
}

var _ portsrepo.ClockedTimeReader = (*PgxClockedTimeRepository)(nil)

func toDomainClockedTime(m models.ClockedTime) domain.ClockedTime {
	return domain.ClockedTime{
		RecordID:      m.RecordID,
		UserID:        m.UserID,
		DepartmentID:  m.DepartmentID,
		CharacterName: m.CharacterName,
		TotalSeconds:  m.TotalSeconds,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PgxClockedTimeRepository) FindClockedTimesByDepartment(ctx context.Context, departmentID string) ([]domain.ClockedTime, error) {
	query := `
        SELECT record_id, user_id, department_id, character_name, total_seconds, created_at, updated_at
        FROM clocked_times
        WHERE department_id = $1
        ORDER BY total_seconds DESC;
    `
	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clocked times for department %s: %w", departmentID, err)
	}
	defer rows.Close()

	var times []domain.ClockedTime
	for rows.Next() {
		var m models.ClockedTime
		err := rows.Scan(
			&m.RecordID,
			&m.UserID,
			&m.DepartmentID,
			&m.CharacterName,
			&m.TotalSeconds,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clocked time row: %w", err)
		}
		times = append(times, toDomainClockedTime(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clocked time rows: %w", err)
	}
	return times, nil
}
