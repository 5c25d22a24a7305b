package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise with the same normalized name already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []strength.ExerciseDocument, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, normalized_name, legacy_names, category
		FROM exercise_library
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("exercise library [query]: %w", err)
	}
	defer rows.Close()

	var docs []strength.ExerciseDocument
	for rows.Next() {
		var doc strength.ExerciseDocument
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.NormalizedName, &doc.LegacyNames, &doc.Category); err != nil {
			return nil, fmt.Errorf("exercise library [rows scan]: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise library [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises", len(docs)))
	return docs, nil
}

func (r *Repo) Add(ctx context.Context, doc strength.ExerciseDocument) (_ strength.ExerciseDocument, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc = prepare(doc)
	span.SetAttributes(attribute.String("exercise", doc.NormalizedName))

	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise_library (name, normalized_name, legacy_names, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, doc.Name, doc.NormalizedName, doc.LegacyNames, doc.Category).Scan(&doc.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return strength.ExerciseDocument{}, ErrDuplicateExercise
		}
		return strength.ExerciseDocument{}, fmt.Errorf("insert exercise: %w", err)
	}

	return doc, nil
}

func (r *Repo) Update(ctx context.Context, doc strength.ExerciseDocument) (_ strength.ExerciseDocument, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", doc.ID))

	doc = prepare(doc)
	tag, err := r.db.Exec(ctx, `
		UPDATE exercise_library
		SET name = $1, normalized_name = $2, legacy_names = $3, category = $4
		WHERE id = $5
	`, doc.Name, doc.NormalizedName, doc.LegacyNames, doc.Category, doc.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return strength.ExerciseDocument{}, ErrDuplicateExercise
		}
		return strength.ExerciseDocument{}, fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return strength.ExerciseDocument{}, ErrExerciseNotFound
	}

	return doc, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_library WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// prepare recomputes the normalized name from the canonical name, whatever
// the client sent, and drops empty legacy names.
func prepare(doc strength.ExerciseDocument) strength.ExerciseDocument {
	doc.NormalizedName = strength.NormalizeName(doc.Name)
	legacy := make([]string, 0, len(doc.LegacyNames))
	for _, name := range doc.LegacyNames {
		if strength.NormalizeName(name) != "" {
			legacy = append(legacy, name)
		}
	}
	doc.LegacyNames = legacy
	return doc
}
