package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Traverser25/GetCoditer/internal/models"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS candidates (
	id BIGSERIAL PRIMARY KEY,
	author TEXT NOT NULL DEFAULT '',
	score INTEGER NOT NULL DEFAULT 0,
	location TEXT NOT NULL DEFAULT '',
	relocate TEXT NOT NULL DEFAULT '',
	job_type TEXT NOT NULL DEFAULT '',
	notice_period TEXT NOT NULL DEFAULT '',
	experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	cv_link TEXT NOT NULL DEFAULT '',
	cv_is_link BOOLEAN NOT NULL DEFAULT FALSE,
	blurb TEXT NOT NULL DEFAULT '',
	tech_stack TEXT NOT NULL DEFAULT ''
)`

const candidateColumns = `id, author, score, location, relocate, job_type, notice_period, experience_years, cv_link, cv_is_link, blurb, tech_stack`

// Repository is the Postgres-backed Store.
type Repository struct {
	db *pgxpool.Pool
}

// Connect opens the pool, verifies connectivity and ensures the candidates
// table exists. Any failure here is fatal for the caller — the pipeline
// does not retry or degrade without its store.
func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create candidates table: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// Insert appends one candidate and fills in its store-assigned ID.
func (r *Repository) Insert(ctx context.Context, c *models.Candidate) (int64, error) {
	query := `
		INSERT INTO candidates (author, score, location, relocate, job_type,
			notice_period, experience_years, cv_link, cv_is_link, blurb, tech_stack)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		c.Author, c.Score, c.Location, c.Relocate, c.JobType,
		c.NoticePeriod, c.ExperienceYears, c.CVLink, c.CVIsLink, c.Blurb,
		JoinStack(c.TechStack),
	).Scan(&c.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}

	return c.ID, nil
}

// Filter runs the multi-criteria scan described on the Store interface,
// built as parameterised LIKE clauses over the stored representation.
func (r *Repository) Filter(ctx context.Context, q models.Query) ([]models.Candidate, error) {
	query := "SELECT " + candidateColumns + " FROM candidates WHERE experience_years >= $1"
	args := []any{q.MinYOE}

	// Tech stack filters (AND match)
	for _, tech := range q.Techs {
		args = append(args, "%"+tech+"%")
		query += fmt.Sprintf(" AND tech_stack LIKE $%d", len(args))
	}

	// Location filters (OR match)
	if len(q.Locations) > 0 {
		clauses := make([]string, 0, len(q.Locations))
		for _, loc := range q.Locations {
			args = append(args, "%"+loc+"%")
			clauses = append(clauses, fmt.Sprintf("location LIKE $%d", len(args)))
		}
		query += " AND (" + strings.Join(clauses, " OR ") + ")"
	}

	query += " ORDER BY id"
	return r.scanMany(ctx, query, args...)
}

// SearchByAuthor matches the author display name by substring.
func (r *Repository) SearchByAuthor(ctx context.Context, name string) ([]models.Candidate, error) {
	query := "SELECT " + candidateColumns + " FROM candidates WHERE author LIKE $1 ORDER BY id"
	return r.scanMany(ctx, query, "%"+name+"%")
}

// GetAll returns every candidate in insertion order.
func (r *Repository) GetAll(ctx context.Context) ([]models.Candidate, error) {
	return r.scanMany(ctx, "SELECT "+candidateColumns+" FROM candidates ORDER BY id")
}

func (r *Repository) scanMany(ctx context.Context, query string, args ...any) ([]models.Candidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var out []models.Candidate
	for rows.Next() {
		var c models.Candidate
		var stack string
		if err := rows.Scan(
			&c.ID, &c.Author, &c.Score, &c.Location, &c.Relocate, &c.JobType,
			&c.NoticePeriod, &c.ExperienceYears, &c.CVLink, &c.CVIsLink, &c.Blurb, &stack,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.TechStack = SplitStack(stack)
		out = append(out, c)
	}

	return out, rows.Err()
}
