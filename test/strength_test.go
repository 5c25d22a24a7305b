//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftstats/internal/fitness/analytics"
	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/strength"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestImbalancesFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	userID := gofakeit.UUID()
	today := workouts.Day(time.Now())

	status, _ := s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/analytics/imbalances", userID), nil)
	require.Equal(t, http.StatusOK, status)

	status, body := s.doRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%s/profile", userID), strength.UserProfile{
		Gender: "male",
		Weight: &strength.Measurement{Value: 80, Unit: "kg"},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	addWorkout := workouts.AddWorkoutRequest{
		Date: today.AddDate(0, 0, -3).Format(workouts.DateLayout),
		Exercises: []strength.Exercise{
			{Name: "Flat Bench", Sets: 3, Reps: 3, Weight: 80, WeightUnit: strength.UnitKg},
		},
	}
	status, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/users/%s/workouts", userID), addWorkout)
	require.Equal(t, http.StatusCreated, status, string(body))

	// same date again, merged into the existing log
	addWorkout.Exercises = []strength.Exercise{
		{Name: "Barbell Row", Sets: 3, Reps: 3, Weight: 72, WeightUnit: strength.UnitKg},
	}
	status, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/users/%s/workouts", userID), addWorkout)
	require.Equal(t, http.StatusOK, status, string(body))

	var merged strength.WorkoutLog
	require.NoError(t, json.Unmarshal(body, &merged))
	assert.Len(t, merged.Exercises, 2)

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/analytics/imbalances", userID), nil)
	require.Equal(t, http.StatusOK, status)

	var findings []strength.Finding
	require.NoError(t, json.Unmarshal(body, &findings))
	require.Len(t, findings, 4)
	assert.Equal(t, strength.HorizontalPushPull, findings[0].Type)
	assert.Equal(t, "Bench Press", findings[0].Lift1Name)
	assert.Equal(t, "Bent Over Row", findings[0].Lift2Name)
	assert.Equal(t, strength.ClassificationBalanced, findings[0].Classification)
	assert.True(t, findings[1].NoData)

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/analytics/e1rm?exercise=bench", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var summary strength.E1RMSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.InDelta(t, 88.0, summary.Weight, 0.001)
}

func (s *IntegrationTestSuite) TestRecordsAndStrengthLevel() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	userID := gofakeit.UUID()

	status, body := s.doRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%s/profile", userID), strength.UserProfile{
		Gender: "female",
		Weight: &strength.Measurement{Value: 60, Unit: "kg"},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	for _, weight := range []float64{90, 100, 95} {
		status, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records", userID), map[string]any{
			"exercise":   "Conventional Deadlift",
			"weight":     weight,
			"weightUnit": "kg",
			"date":       "2026-01-15",
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/records/current", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var current []strength.PersonalRecord
	require.NoError(t, json.Unmarshal(body, &current))
	require.Len(t, current, 1)
	assert.Equal(t, 100.0, current[0].Weight)

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/analytics/strength-level?exercise=deadlift", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var level analytics.LevelResult
	require.NoError(t, json.Unmarshal(body, &level))
	assert.Equal(t, analytics.LevelFromPersonalRecord, level.Source)
	assert.NotEqual(t, strength.LevelNA, level.Level)

	status, _ = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%s/analytics/strength-level?exercise=squat", userID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestInsightsDisabledWithoutKey() {
	status, _ := s.doRequest(context.Background(), http.MethodGet, "/users/someone/analytics/imbalances/insight", nil)
	assert.Equal(s.T(), http.StatusServiceUnavailable, status)
}
