package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gainsiq/gainsiq/internal/workout"
)

func TestExerciseService(t *testing.T) {
	f := &fakeAPI{exercises: []string{"squat", "Bench Press", "Deadlift", "arnold press"}}
	svc := NewExerciseService(f)
	ctx := context.Background()

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"arnold press", "Bench Press", "Deadlift", "squat"}, names)

	require.NoError(t, svc.Add(ctx, "  Overhead Press "))
	require.NoError(t, svc.Delete(ctx, "squat"))
	assert.Equal(t, []string{"Overhead Press"}, f.added)
	assert.Equal(t, []string{"squat"}, f.removed)

	assert.ErrorIs(t, svc.Add(ctx, " "), ErrEmptyExercise)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrEmptyExercise)
}

func TestMatch(t *testing.T) {
	names := []string{"Bench Press", "Incline Bench Press", "Squat"}

	assert.Equal(t, names, Match(names, ""))
	assert.Equal(t, []string{"Bench Press", "Incline Bench Press"}, Match(names, "bench"))
	assert.Equal(t, []string{"Bench Press"}, Match(names, "bench press"))
	assert.Empty(t, Match(names, "curl"))
}

func TestInjuryService(t *testing.T) {
	f := &fakeAPI{injuries: []workout.Injury{
		{Timestamp: 100, Location: "knee", Active: false},
		{Timestamp: 300, Location: "shoulder", Active: true},
		{Timestamp: 200, Location: "back", Active: true},
	}}
	svc := NewInjuryService(f, fixedClock(testNow))
	ctx := context.Background()

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "shoulder", all[0].Location)
	assert.Equal(t, "knee", all[2].Location)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	injury, err := svc.Log(ctx, " elbow ", " tennis elbow ")
	require.NoError(t, err)
	assert.Equal(t, testNow.Unix(), injury.Timestamp)
	assert.True(t, injury.Active)
	require.Len(t, f.injuryLogs, 1)
	assert.Equal(t, "elbow", f.injuryLogs[0].Location)
	assert.Equal(t, "tennis elbow", f.injuryLogs[0].Details)
	require.NotNil(t, f.injuryLogs[0].Active)
	assert.True(t, *f.injuryLogs[0].Active)

	_, err = svc.Log(ctx, "", "")
	assert.ErrorIs(t, err, ErrEmptyLocation)

	require.NoError(t, svc.SetActive(ctx, 300, false))
	assert.Equal(t, []injuryActiveCall{{300, false}}, f.activeCalls)
	assert.ErrorIs(t, svc.SetActive(ctx, 0, true), ErrInvalidTimestamp)
}

func TestBodypartService(t *testing.T) {
	f := &fakeAPI{bodyparts: []string{"shoulder", "ankle", "knee"}}
	svc := NewBodypartService(f)
	ctx := context.Background()

	parts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ankle", "knee", "shoulder"}, parts)

	require.NoError(t, svc.Add(ctx, " wrist "))
	require.NoError(t, svc.Delete(ctx, "ankle"))
	assert.Equal(t, []string{"wrist"}, f.added)
	assert.Equal(t, []string{"ankle"}, f.removed)
	assert.ErrorIs(t, svc.Add(ctx, ""), ErrEmptyLocation)
}

func TestAnalysisService(t *testing.T) {
	ctx := context.Background()

	svc := NewAnalysisService(&fakeAPI{analysis: json.RawMessage(`{"summary":"good","score":3}`)})
	doc, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"summary\": \"good\",\n  \"score\": 3\n}", doc)

	svc = NewAnalysisService(&fakeAPI{})
	_, err = svc.Latest(ctx)
	assert.ErrorIs(t, err, ErrNoAnalysis)

	f := &fakeAPI{}
	msg, err := NewAnalysisService(f).Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Analysis started", msg)
	assert.Equal(t, 1, f.generated)
}
