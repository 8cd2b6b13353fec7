package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lead-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

const pipelineRunsTable = "pipeline_runs"

type PipelineRunRepository interface {
	Create(run *domain.PipelineRun) error
	Finish(run *domain.PipelineRun) error
	ListRecent(limit int) ([]*domain.PipelineRun, error)
}

type pipelineRunRepository struct {
	conn *postgres.Connection
}

func NewPipelineRunRepository(conn *postgres.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

func (r *pipelineRunRepository) Create(run *domain.PipelineRun) error {
	runSQL, runArgs, err := squirrel.
		Insert(pipelineRunsTable).
		Columns("id", "status", "started_at").
		Values(run.ID, string(run.Status), run.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(runSQL, runArgs...)
	if err != nil {
		return fmt.Errorf("erro ao registrar execução do pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRunRepository) Finish(run *domain.PipelineRun) error {
	runSQL, runArgs, err := squirrel.
		Update(pipelineRunsTable).
		Set("status", string(run.Status)).
		Set("total_ads", run.TotalAds).
		Set("total_advertisers", run.TotalAdvertisers).
		Set("passed_gate", run.PassedGate).
		Set("uncategorized_share", run.UncategorizedShare).
		Set("junk_risk_in_top20", run.JunkRiskInTop20).
		Set("finished_at", run.FinishedAt).
		Set("error", run.Error).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(runSQL, runArgs...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar execução do pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRunRepository) ListRecent(limit int) ([]*domain.PipelineRun, error) {
	if limit <= 0 {
		limit = 20
	}

	runsSQL, runsArgs, err := squirrel.
		Select(
			"id",
			"status",
			"total_ads",
			"total_advertisers",
			"passed_gate",
			"uncategorized_share",
			"junk_risk_in_top20",
			"started_at",
			"finished_at",
			"error",
		).
		From(pipelineRunsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(runsSQL, runsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar execuções do pipeline: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.PipelineRun, 0)
	for rows.Next() {
		var run domain.PipelineRun
		var status string
		var errMsg sql.NullString

		if err := rows.Scan(
			&run.ID,
			&status,
			&run.TotalAds,
			&run.TotalAdvertisers,
			&run.PassedGate,
			&run.UncategorizedShare,
			&run.JunkRiskInTop20,
			&run.StartedAt,
			&run.FinishedAt,
			&errMsg,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}

		run.Status = domain.PipelineRunStatus(status)
		run.Error = errMsg.String
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
