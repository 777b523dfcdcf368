package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
)

// ErrNotFound is returned when no assessment matches the given id.
var ErrNotFound = errors.New("assessment not found")

// AssessmentRepo persists assessment records. Submit creates a record
// when the payload has no id yet and updates it otherwise; either way it
// returns the record's id. The engine never deletes through a session —
// Delete backs the explicit CLI/list operation.
type AssessmentRepo interface {
	Submit(ctx context.Context, p *assessment.Payload) (string, error)
	Get(ctx context.Context, id string) (*assessment.Record, error)
	List(ctx context.Context) ([]assessment.Summary, error)
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	db *sql.DB
}

func (r *assessmentRepo) Submit(ctx context.Context, p *assessment.Payload) (string, error) {
	questions, err := json.Marshal(p.Questions)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	now := time.Now().Unix()

	if p.ID == "" {
		id := uuid.NewString()
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO assessments
				(id, domain_id, title, description, full_name, status, questions, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, p.DomainID, p.Title, p.Description, p.FullName, string(p.Status), string(questions), now, now)
		if err != nil {
			return "", fmt.Errorf("insert assessment: %w", err)
		}
		return id, nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE assessments
		 SET domain_id = ?, title = ?, description = ?, full_name = ?, status = ?, questions = ?, updated_at = ?
		 WHERE id = ?`,
		p.DomainID, p.Title, p.Description, p.FullName, string(p.Status), string(questions), now, p.ID)
	if err != nil {
		return "", fmt.Errorf("update assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("update assessment: %w", err)
	}
	if n == 0 {
		return "", ErrNotFound
	}
	return p.ID, nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*assessment.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, domain_id, title, description, full_name, status, questions, created_at, updated_at
		 FROM assessments WHERE id = ?`, id)

	var rec assessment.Record
	var status, questions string
	var createdAt, updatedAt int64
	err := row.Scan(&rec.ID, &rec.DomainID, &rec.Title, &rec.Description,
		&rec.FullName, &status, &questions, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}

	rec.Status = assessment.Status(status)
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	if err := json.Unmarshal([]byte(questions), &rec.Questions); err != nil {
		return nil, fmt.Errorf("decode answers for %s: %w", id, err)
	}
	return &rec, nil
}

func (r *assessmentRepo) List(ctx context.Context) ([]assessment.Summary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, domain_id, status, updated_at
		 FROM assessments ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []assessment.Summary
	for rows.Next() {
		var s assessment.Summary
		var status string
		var updatedAt int64
		if err := rows.Scan(&s.ID, &s.Title, &s.DomainID, &status, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment row: %w", err)
		}
		s.Status = assessment.Status(status)
		s.UpdatedAt = time.Unix(updatedAt, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
