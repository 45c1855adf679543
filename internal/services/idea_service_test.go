package services

import (
	"testing"

	"github.com/morisawa/ideapool/internal/repository"
	"github.com/morisawa/ideapool/internal/validation"
	"github.com/stretchr/testify/require"
)

func newTestIdeaService(t *testing.T) *IdeaService {
	t.Helper()
	db := setupServiceTestDB(t)
	return NewIdeaService(repository.NewIdeaRepository(db))
}

func TestIdeaService_Create(t *testing.T) {
	svc := newTestIdeaService(t)

	idea, err := svc.Create("a@b.co", IdeaInput{Content: "Ship v2", Impact: 8, Ease: 5, Confidence: 7})
	require.NoError(t, err)
	require.NotZero(t, idea.ID)
	require.NotZero(t, idea.CreationTime)
	require.InDelta(t, 20.0/3.0, idea.AverageScore, 1e-9)
}

func TestIdeaService_Create_Invalid(t *testing.T) {
	svc := newTestIdeaService(t)

	_, err := svc.Create("a@b.co", IdeaInput{Content: "abc", Impact: 8, Ease: 5, Confidence: 7})
	require.ErrorIs(t, err, validation.ErrInvalidContent)

	_, err = svc.Create("a@b.co", IdeaInput{Content: "Ship v2", Impact: 0, Ease: 5, Confidence: 7})
	require.ErrorIs(t, err, validation.ErrInvalidScore)

	_, err = svc.Create("a@b.co", IdeaInput{Content: "Ship v2", Impact: 8, Ease: 11, Confidence: 7})
	require.ErrorIs(t, err, validation.ErrInvalidScore)

	ideas, err := svc.List("a@b.co", 0)
	require.NoError(t, err)
	require.Empty(t, ideas, "nothing may be persisted when validation fails")
}

func TestIdeaService_UpdateAndDelete_OwnerScoped(t *testing.T) {
	svc := newTestIdeaService(t)

	idea, err := svc.Create("a@b.co", IdeaInput{Content: "original text", Impact: 3, Ease: 3, Confidence: 3})
	require.NoError(t, err)

	_, err = svc.Update(idea.ID, "other@b.co", IdeaInput{Content: "hijacked!", Impact: 9, Ease: 9, Confidence: 9})
	require.ErrorIs(t, err, ErrIdeaNotFound)

	updated, err := svc.Update(idea.ID, "a@b.co", IdeaInput{Content: "better text", Impact: 9, Ease: 8, Confidence: 7})
	require.NoError(t, err)
	require.Equal(t, "better text", updated.Content)
	require.Equal(t, idea.CreationTime, updated.CreationTime)
	require.InDelta(t, 8.0, updated.AverageScore, 1e-9)

	require.ErrorIs(t, svc.Delete(idea.ID, "other@b.co"), ErrIdeaNotFound)
	require.NoError(t, svc.Delete(idea.ID, "a@b.co"))
	require.ErrorIs(t, svc.Delete(idea.ID, "a@b.co"), ErrIdeaNotFound)
}

func TestIdeaService_List_RankedAndPaged(t *testing.T) {
	svc := newTestIdeaService(t)

	low, err := svc.Create("a@b.co", IdeaInput{Content: "low priority", Impact: 1, Ease: 2, Confidence: 1})
	require.NoError(t, err)
	high, err := svc.Create("a@b.co", IdeaInput{Content: "high priority", Impact: 9, Ease: 10, Confidence: 8})
	require.NoError(t, err)

	ideas, err := svc.List("a@b.co", 0)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	require.Equal(t, high.ID, ideas[0].ID)
	require.Equal(t, low.ID, ideas[1].ID)

	empty, err := svc.List("a@b.co", 1)
	require.NoError(t, err)
	require.Empty(t, empty)
}
