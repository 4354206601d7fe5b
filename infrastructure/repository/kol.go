// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

const (
	kolMasterTable     = "kol_master km"
	kolActivitiesTable = "kol_activities ka"
)

// As colunas são lidas como texto para passar pela mesma conversão das outras fontes
var (
	masterColumns = []string{
		domain.FieldKolID,
		domain.FieldName,
		domain.FieldCountry,
		domain.FieldKolType,
		domain.FieldContractEnd,
		domain.FieldBudgetUSD,
		domain.FieldSpentUSD,
	}
	activityColumns = []string{
		domain.FieldActivityID,
		domain.FieldKolID,
		domain.FieldActivityType,
		domain.FieldStatus,
		domain.FieldDueDate,
		domain.FieldFileLink,
	}
)

type KolRepository interface {
	GetMasterTable(ctx context.Context) (header []string, records [][]string, err error)
	GetActivitiesTable(ctx context.Context) (header []string, records [][]string, err error)
	SaveOrUpdateKols(ctx context.Context, kols []domain.KolRecord) error
	SaveOrUpdateActivities(ctx context.Context, activities []domain.ActivityRecord) error
}

type kolRepository struct {
	conn postgres.Conn
}

func NewKolRepository(conn postgres.Conn) KolRepository {
	return &kolRepository{
		conn: conn,
	}
}

func (r *kolRepository) GetMasterTable(ctx context.Context) ([]string, [][]string, error) {
	query, args, err := masterQuery()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	records, err := r.queryText(ctx, query, args, len(masterColumns))
	if err != nil {
		return nil, nil, err
	}

	return masterColumns, records, nil
}

func (r *kolRepository) GetActivitiesTable(ctx context.Context) ([]string, [][]string, error) {
	query, args, err := activitiesQuery()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	records, err := r.queryText(ctx, query, args, len(activityColumns))
	if err != nil {
		return nil, nil, err
	}

	return activityColumns, records, nil
}

func (r *kolRepository) queryText(ctx context.Context, query string, args []interface{}, width int) ([][]string, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([][]string, 0)
	for rows.Next() {
		record := make([]string, width)
		targets := make([]interface{}, width)
		for i := range record {
			targets[i] = &record[i]
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *kolRepository) SaveOrUpdateKols(ctx context.Context, kols []domain.KolRecord) error {
	if len(kols) == 0 {
		return nil
	}

	query, args, err := upsertKolsQuery(kols)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
		return nil
	})
}

func (r *kolRepository) SaveOrUpdateActivities(ctx context.Context, activities []domain.ActivityRecord) error {
	if len(activities) == 0 {
		return nil
	}

	query, args, err := upsertActivitiesQuery(activities)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
		return nil
	})
}

func masterQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"km.kol_id",
			"km.name",
			"km.country",
			"km.kol_type",
			"COALESCE(km.contract_end::text, '')",
			"km.budget_usd::text",
			"km.spent_usd::text",
		).
		From(kolMasterTable).
		OrderBy("km.created_at ASC", "km.kol_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func activitiesQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"ka.activity_id",
			"ka.kol_id",
			"ka.activity_type",
			"ka.status",
			"COALESCE(ka.due_date::text, '')",
			"ka.file_link",
		).
		From(kolActivitiesTable).
		OrderBy("ka.created_at ASC", "ka.activity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertKolsQuery(kols []domain.KolRecord) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("kol_master").
		Columns(masterColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, kol := range kols {
		query = query.Values(
			kol.KolID,
			kol.Name,
			kol.Country,
			kol.KolType,
			dateValue(kol.ContractEnd),
			kol.BudgetUSD,
			kol.SpentUSD,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (kol_id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			kol_type = EXCLUDED.kol_type,
			contract_end = EXCLUDED.contract_end,
			budget_usd = EXCLUDED.budget_usd,
			spent_usd = EXCLUDED.spent_usd,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

func upsertActivitiesQuery(activities []domain.ActivityRecord) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("kol_activities").
		Columns(activityColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, activity := range activities {
		query = query.Values(
			activity.ActivityID,
			activity.KolID,
			activity.ActivityType,
			activity.Status,
			dateValue(activity.DueDate),
			activity.FileLink,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (activity_id) DO UPDATE SET
			kol_id = EXCLUDED.kol_id,
			activity_type = EXCLUDED.activity_type,
			status = EXCLUDED.status,
			due_date = EXCLUDED.due_date,
			file_link = EXCLUDED.file_link,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

// dateValue grava apenas o dia civil; nil vira NULL
func dateValue(date *time.Time) interface{} {
	if date == nil {
		return nil
	}
	return date.Format(time.DateOnly)
}
