package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("personal record not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, pr strength.PersonalRecord) (_ strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", pr.UserID))
	span.SetAttributes(attribute.String("exercise", pr.Exercise))

	err = r.db.QueryRow(ctx, `
		INSERT INTO personal_record (user_id, exercise, weight, weight_unit, category, strength_level, achieved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		pr.UserID,
		pr.Exercise,
		pr.Weight,
		pr.WeightUnit,
		pr.Category,
		pr.StrengthLevel,
		pr.Date,
	).Scan(&pr.ID)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return strength.PersonalRecord{}, fmt.Errorf("invalid personal record: %w", err)
		}
		return strength.PersonalRecord{}, fmt.Errorf("insert personal record: %w", err)
	}

	return pr, nil
}

func (r *Repo) Get(ctx context.Context, userID string, id int) (_ strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	pr, err := scanRecord(r.db.QueryRow(ctx, `
		SELECT id, user_id, exercise, weight, weight_unit, category, strength_level, achieved_at
		FROM personal_record
		WHERE user_id = $1 AND id = $2
	`, userID, id))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return strength.PersonalRecord{}, ErrRecordNotFound
		}
		return strength.PersonalRecord{}, fmt.Errorf("personal record [query row]: %w", err)
	}
	return pr, nil
}

// ListAll returns the user's record history, oldest first. A non-empty
// exercise filters on the exact stored name; resolving aliases is up to
// the caller.
func (r *Repo) ListAll(ctx context.Context, userID, exercise string) (_ []strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, exercise, weight, weight_unit, category, strength_level, achieved_at
		FROM personal_record
		WHERE user_id = $1 AND ($2::text = '' OR exercise = $2)
		ORDER BY achieved_at, id
	`, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("personal records [query]: %w", err)
	}
	defer rows.Close()

	var records []strength.PersonalRecord
	for rows.Next() {
		pr, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("personal records [rows scan]: %w", err)
		}
		records = append(records, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("personal records [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM personal_record WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete personal record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (strength.PersonalRecord, error) {
	var pr strength.PersonalRecord
	err := row.Scan(
		&pr.ID,
		&pr.UserID,
		&pr.Exercise,
		&pr.Weight,
		&pr.WeightUnit,
		&pr.Category,
		&pr.StrengthLevel,
		&pr.Date,
	)
	return pr, err
}
