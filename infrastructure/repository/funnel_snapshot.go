package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/intelimob/painel-comercial-api/infrastructure/database/postgres"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

const (
	funnelSnapshotsTable = "funnel_snapshots fs"
)

// FunnelSnapshotRepository persiste as fotografias diárias do funil por mês
// comercial. A planilha perde histórico quando editada; os snapshots mantêm
// a série para comparação mês a mês.
type FunnelSnapshotRepository interface {
	GetByMonth(month time.Time) (*domain.FunnelSnapshot, error)
	ListByMonths(months []time.Time) ([]*domain.FunnelSnapshot, error)
	SaveOrUpdate(snapshot *domain.FunnelSnapshot) error
	DeleteOlderThan(months int) (int64, error)
}

type funnelSnapshotRepository struct {
	conn *postgres.Connection
}

func NewFunnelSnapshotRepository(conn *postgres.Connection) FunnelSnapshotRepository {
	return &funnelSnapshotRepository{
		conn: conn,
	}
}

// snapshotPeriod formata a âncora do mês comercial como mm-yyyy.
func snapshotPeriod(month time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(month.Month()), month.Year())
}

func (r *funnelSnapshotRepository) GetByMonth(month time.Time) (*domain.FunnelSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.period, fs.metrics, fs.created_at, fs.updated_at").
		From(funnelSnapshotsTable).
		Where(squirrel.Eq{"fs.period": snapshotPeriod(month)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot do funil: %w", err)
	}

	return snapshot, nil
}

func (r *funnelSnapshotRepository) ListByMonths(months []time.Time) ([]*domain.FunnelSnapshot, error) {
	periods := make([]string, 0, len(months))
	for _, month := range months {
		periods = append(periods, snapshotPeriod(month))
	}

	query, args, err := squirrel.
		Select("fs.id, fs.period, fs.metrics, fs.created_at, fs.updated_at").
		From(funnelSnapshotsTable).
		Where(squirrel.Eq{"fs.period": periods}).
		OrderBy("fs.month_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.FunnelSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots do funil: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *funnelSnapshotRepository) SaveOrUpdate(snapshot *domain.FunnelSnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("funnel_snapshots").
		Columns("id", "period", "month_start", "metrics").
		Values(
			snapshot.ID,
			snapshotPeriod(snapshot.Month),
			utils.TruncateToDay(snapshot.Month),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *funnelSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := utils.MonthStart(time.Now().AddDate(0, -months, 0))

	query := squirrel.Delete("funnel_snapshots").
		Where(squirrel.Lt{"month_start": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *funnelSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.FunnelSnapshot, error) {
	snapshot := &domain.FunnelSnapshot{}
	var period string
	var metricsJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.fillSnapshot(snapshot, period, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *funnelSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.FunnelSnapshot, error) {
	snapshot := &domain.FunnelSnapshot{}
	var period string
	var metricsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.fillSnapshot(snapshot, period, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *funnelSnapshotRepository) fillSnapshot(snapshot *domain.FunnelSnapshot, period string, metricsJSON []byte) error {
	month, err := time.Parse("01-2006", period)
	if err != nil {
		return fmt.Errorf("período inválido no banco: %s", period)
	}
	snapshot.Month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	return nil
}
