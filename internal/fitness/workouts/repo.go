package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutLogNotFound = errors.New("workout log not found")

type ListParams struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the log of a day, merging it into the existing one if the
// user already logged something on that date. Returns the stored log and
// whether it was newly created.
func (r *Repo) Upsert(ctx context.Context, log strength.WorkoutLog) (_ strength.WorkoutLog, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", log.UserID))
	span.SetAttributes(attribute.Int("exercises", len(log.Exercises)))

	log.Date = Day(log.Date)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return strength.WorkoutLog{}, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	existing, err := scanLog(tx.QueryRow(ctx, `
		SELECT id, user_id, log_date, exercises
		FROM workout_log
		WHERE user_id = $1 AND log_date = $2
		FOR UPDATE
	`, log.UserID, log.Date))
	switch {
	case err == nil:
		merged := MergeLogs(existing, log)
		exercisesJson, err := json.Marshal(merged.Exercises)
		if err != nil {
			return strength.WorkoutLog{}, false, fmt.Errorf("marshal exercises: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE workout_log SET exercises = $1, updated_at = now()
			WHERE id = $2
		`, exercisesJson, existing.ID); err != nil {
			return strength.WorkoutLog{}, false, fmt.Errorf("update workout log: %w", err)
		}
		return merged, false, nil
	case pkg.IsNoRowsError(err):
		// continue with insert
	default:
		return strength.WorkoutLog{}, false, fmt.Errorf("select workout log: %w", err)
	}

	exercisesJson, err := json.Marshal(log.Exercises)
	if err != nil {
		return strength.WorkoutLog{}, false, fmt.Errorf("marshal exercises: %w", err)
	}

	// a concurrent first entry for the same day may win the insert race,
	// in which case the exercises are appended to it
	stored, err := scanLog(tx.QueryRow(ctx, `
		INSERT INTO workout_log (user_id, log_date, exercises)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, log_date) DO UPDATE
			SET exercises = workout_log.exercises || EXCLUDED.exercises, updated_at = now()
		RETURNING id, user_id, log_date, exercises
	`, log.UserID, log.Date, exercisesJson))
	if err != nil {
		return strength.WorkoutLog{}, false, fmt.Errorf("insert workout log: %w", err)
	}

	return stored, true, nil
}

func (r *Repo) Get(ctx context.Context, userID string, date time.Time) (_ strength.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	log, err := scanLog(r.db.QueryRow(ctx, `
		SELECT id, user_id, log_date, exercises
		FROM workout_log
		WHERE user_id = $1 AND log_date = $2
	`, userID, Day(date)))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return strength.WorkoutLog{}, ErrWorkoutLogNotFound
		}
		return strength.WorkoutLog{}, fmt.Errorf("workout log [query row]: %w", err)
	}
	return log, nil
}

// ListAll returns the user's logs ordered by date, optionally limited to
// [From, To] (both inclusive).
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []strength.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", params.UserID))

	var from, to *time.Time
	if params.From != nil {
		d := Day(*params.From)
		from = &d
	}
	if params.To != nil {
		d := Day(*params.To)
		to = &d
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, log_date, exercises
		FROM workout_log
		WHERE user_id = $1
			AND ($2::date IS NULL OR log_date >= $2)
			AND ($3::date IS NULL OR log_date <= $3)
		ORDER BY log_date
	`, params.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("workout logs [query]: %w", err)
	}
	defer rows.Close()

	var logs []strength.WorkoutLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("workout logs [rows scan]: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout logs [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("logs", len(logs)))
	return logs, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	tag, err := r.db.Exec(ctx, `
		DELETE FROM workout_log WHERE user_id = $1 AND log_date = $2
	`, userID, Day(date))
	if err != nil {
		return fmt.Errorf("delete workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutLogNotFound
	}
	return nil
}

// ActiveUsers lists the users that logged at least one workout since the given day.
func (r *Repo) ActiveUsers(ctx context.Context, since time.Time) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.active_users")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT user_id FROM workout_log
		WHERE log_date >= $1
		ORDER BY user_id
	`, Day(since))
	if err != nil {
		return nil, fmt.Errorf("active users [query]: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("active users [rows scan]: %w", err)
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

func scanLog(row pgx.Row) (strength.WorkoutLog, error) {
	var (
		log           strength.WorkoutLog
		exercisesJson []byte
	)
	if err := row.Scan(&log.ID, &log.UserID, &log.Date, &exercisesJson); err != nil {
		return strength.WorkoutLog{}, err
	}
	if err := json.Unmarshal(exercisesJson, &log.Exercises); err != nil {
		return strength.WorkoutLog{}, fmt.Errorf("unmarshal exercises: %w", err)
	}
	log.Date = Day(log.Date)
	return log, nil
}
