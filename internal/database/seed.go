package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type seedDepartment struct {
	name        string
	description string
}

type seedEmployee struct {
	code       string
	name       string
	email      string
	hiredSince time.Duration
	department string
}

var seedDepartments = []seedDepartment{
	{"HR", "Human Resources"},
	{"IT", "Information Technology"},
	{"Finance", "Financial Department"},
	{"Marketing", "Marketing Department"},
}

const month = 30 * 24 * time.Hour

var seedEmployees = []seedEmployee{
	{"E001", "Alice Johnson", "alice@example.com", 24 * month, "HR"},
	{"E002", "Bob Smith", "bob@example.com", 12 * month, "IT"},
	{"E003", "Charlie Brown", "charlie@example.com", 6 * month, "Finance"},
	{"E004", "David Wilson", "david@example.com", 8 * month, "HR"},
	{"E005", "Emma Davis", "emma@example.com", 36 * month, "Marketing"},
	{"E006", "Fiona Garcia", "fiona@example.com", 12 * month, "IT"},
	{"E007", "George Martinez", "george@example.com", 2 * month, "Finance"},
	{"E008", "Hannah Rodriguez", "hannah@example.com", 5 * month, "Marketing"},
	{"E009", "Ian Lee", "ian@example.com", 48 * month, "HR"},
	{"E010", "Julia Walker", "julia@example.com", 24 * month, "IT"},
}

// Seed inserts the fixed first-run dataset: four departments and ten
// employees E001-E010. It is a no-op when any department or employee row
// already exists, and runs inside a single transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	var populated bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments) OR EXISTS (SELECT 1 FROM employees)`,
	).Scan(&populated)
	if err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if populated {
		log.Debug().Msg("Seed skipped, data already present")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback(ctx)

	departmentIDs := make(map[string]int, len(seedDepartments))
	for _, d := range seedDepartments {
		var id int
		if err := tx.QueryRow(ctx,
			`INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id`,
			d.name, d.description,
		).Scan(&id); err != nil {
			return fmt.Errorf("seed department %q: %w", d.name, err)
		}
		departmentIDs[d.name] = id
	}

	now := time.Now()
	for _, e := range seedEmployees {
		if _, err := tx.Exec(ctx,
			`INSERT INTO employees (code, name, email, hire_date, department_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.code, e.name, e.email, now.Add(-e.hiredSince), departmentIDs[e.department],
		); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	log.Info().
		Int("departments", len(seedDepartments)).
		Int("employees", len(seedEmployees)).
		Msg("Seed data inserted")
	return nil
}
