package repositories

import (
	"context"
	"database/sql"
	"depot-route-service/internal/domain"
	"depot-route-service/internal/platform/obs"
	"depot-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect selects the bind-parameter syntax of the target database.
type Dialect int

const (
	DialectSqlite Dialect = iota
	DialectPostgres
)

// rebind rewrites ? placeholders to $n for Postgres.
func (d Dialect) rebind(q string) string {
	if d != DialectPostgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQL-backed implementation of the RunRepository port.
// The solution is stored as a JSON payload next to a few listing columns.
type SQLRunRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSqliteRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db, Dialect: DialectSqlite}
}

func NewPostgresRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db, Dialect: DialectPostgres}
}

type runPayload struct {
	Depots       []domain.Point   `json:"depots"`
	Destinations []domain.Point   `json:"destinations"`
	Solution     *domain.Solution `json:"solution"`
}

func encodeRun(run *domain.Run) ([]byte, error) {
	return json.Marshal(runPayload{
		Depots:       run.Depots,
		Destinations: run.Destinations,
		Solution:     run.Solution,
	})
}

func decodeRun(data []byte, run *domain.Run) error {
	var p runPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	run.Depots = p.Depots
	run.Destinations = p.Destinations
	run.Solution = p.Solution

	return nil
}

// Persist a completed run.
func (s *SQLRunRepository) SaveRun(ctx context.Context, run *domain.Run) (err error) {
	defer obs.Time(ctx, "runs.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("run repository: DB is nil")
	}
	if run == nil || strings.TrimSpace(run.ID) == "" {
		return errors.New("save run: run ID must not be empty")
	}

	payload, err := encodeRun(run)
	if err != nil {
		return fmt.Errorf("save run %q: encode payload: %w", run.ID, err)
	}

	var seed sql.NullInt64
	if run.Seed != nil {
		seed = sql.NullInt64{Int64: *run.Seed, Valid: true}
	}

	totalLength := 0.0
	if run.Solution != nil {
		totalLength = run.Solution.TotalLength()
	}

	q := s.Dialect.rebind(`
	INSERT INTO routing_runs (
		run_id,
		created_at_ms,
		seed,
		depot_count,
		destination_count,
		total_length,
		payload
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)

	if _, err := s.DB.ExecContext(ctx, q,
		run.ID,
		run.CreatedAt.UnixMilli(),
		seed,
		len(run.Depots),
		len(run.Destinations),
		totalLength,
		string(payload),
	); err != nil {
		return fmt.Errorf("save run %q: insert routing_runs: %w", run.ID, err)
	}

	return nil
}

// Retrieve a run by ID.
func (s *SQLRunRepository) GetRun(ctx context.Context, id string) (_ *domain.Run, err error) {
	defer obs.Time(ctx, "runs.GetRun")(&err)

	if s.DB == nil {
		return nil, errors.New("run repository: DB is nil")
	}

	q := s.Dialect.rebind(`
	SELECT
		run_id,
		created_at_ms,
		seed,
		payload
	FROM routing_runs
	WHERE run_id = ?;
	`)

	var (
		run       domain.Run
		createdMS int64
		seed      sql.NullInt64
		payload   string
	)
	err = s.DB.QueryRowContext(ctx, q, id).Scan(&run.ID, &createdMS, &seed, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %q: %w", id, ports.ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %q: query routing_runs: %w", id, err)
	}

	run.CreatedAt = time.UnixMilli(createdMS).UTC()
	if seed.Valid {
		v := seed.Int64
		run.Seed = &v
	}
	if err := decodeRun([]byte(payload), &run); err != nil {
		return nil, fmt.Errorf("get run %q: decode payload: %w", id, err)
	}

	return &run, nil
}

// List the most recent runs, newest first.
func (s *SQLRunRepository) ListRuns(ctx context.Context, limit int) (_ []domain.RunSummary, err error) {
	defer obs.Time(ctx, "runs.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("run repository: DB is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	q := s.Dialect.rebind(`
	SELECT
		run_id,
		created_at_ms,
		seed,
		depot_count,
		destination_count,
		total_length
	FROM routing_runs
	ORDER BY created_at_ms DESC, run_id DESC
	LIMIT ?;
	`)

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query routing_runs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RunSummary, 0, limit)
	for rows.Next() {
		var (
			sum       domain.RunSummary
			createdMS int64
			seed      sql.NullInt64
		)
		if err := rows.Scan(&sum.ID, &createdMS, &seed, &sum.DepotCount, &sum.DestinationCount, &sum.TotalLength); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}
		sum.CreatedAt = time.UnixMilli(createdMS).UTC()
		if seed.Valid {
			v := seed.Int64
			sum.Seed = &v
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}
