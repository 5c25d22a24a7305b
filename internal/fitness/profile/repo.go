package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *strength.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	var (
		p                        strength.UserProfile
		heightValue, weightValue *float64
		smmValue                 *float64
		heightUnit, weightUnit   *string
		smmUnit                  *string
		goalsJson                []byte
	)
	err = r.db.QueryRow(ctx, `
		SELECT
			user_id, age, gender,
			height_value, height_unit,
			weight_value, weight_unit,
			smm_value, smm_unit,
			goals, workouts_per_week_goal
		FROM user_profile
		WHERE user_id = $1
	`, userID).Scan(
		&p.UserID, &p.Age, &p.Gender,
		&heightValue, &heightUnit,
		&weightValue, &weightUnit,
		&smmValue, &smmUnit,
		&goalsJson, &p.WorkoutsPerWeekGoal,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile [query row]: %w", err)
	}

	p.Height = measurement(heightValue, heightUnit)
	p.Weight = measurement(weightValue, weightUnit)
	p.SkeletalMuscleMass = measurement(smmValue, smmUnit)
	if err := json.Unmarshal(goalsJson, &p.Goals); err != nil {
		return nil, fmt.Errorf("unmarshal goals: %w", err)
	}

	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, p strength.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", p.UserID))

	goals := p.Goals
	if goals == nil {
		goals = []strength.FitnessGoal{}
	}
	goalsJson, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}

	heightValue, heightUnit := measurementColumns(p.Height)
	weightValue, weightUnit := measurementColumns(p.Weight)
	smmValue, smmUnit := measurementColumns(p.SkeletalMuscleMass)

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (
			user_id, age, gender,
			height_value, height_unit,
			weight_value, weight_unit,
			smm_value, smm_unit,
			goals, workouts_per_week_goal, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			height_value = EXCLUDED.height_value,
			height_unit = EXCLUDED.height_unit,
			weight_value = EXCLUDED.weight_value,
			weight_unit = EXCLUDED.weight_unit,
			smm_value = EXCLUDED.smm_value,
			smm_unit = EXCLUDED.smm_unit,
			goals = EXCLUDED.goals,
			workouts_per_week_goal = EXCLUDED.workouts_per_week_goal,
			updated_at = now()
	`,
		p.UserID, p.Age, p.Gender,
		heightValue, heightUnit,
		weightValue, weightUnit,
		smmValue, smmUnit,
		goalsJson, p.WorkoutsPerWeekGoal,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func measurement(value *float64, unit *string) *strength.Measurement {
	if value == nil {
		return nil
	}
	m := &strength.Measurement{Value: *value}
	if unit != nil {
		m.Unit = *unit
	}
	return m
}

func measurementColumns(m *strength.Measurement) (*float64, *string) {
	if m == nil {
		return nil, nil
	}
	return &m.Value, &m.Unit
}
