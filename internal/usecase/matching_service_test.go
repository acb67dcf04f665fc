package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nutrikit/backend/internal/domain"
)

// MockFoodMatcher is a mock implementation of domain.FoodMatcher
type MockFoodMatcher struct {
	choice     domain.Choice
	err        error
	called     bool
	lastQuery  string
	candidates []string
}

func (m *MockFoodMatcher) MatchFood(ctx context.Context, query string, candidates []string) (domain.Choice, error) {
	m.called = true
	m.lastQuery = query
	m.candidates = candidates
	if m.err != nil {
		return domain.NoMatch, m.err
	}
	return m.choice, nil
}

func candidateList(descriptions ...string) []domain.FoodCandidate {
	candidates := make([]domain.FoodCandidate, len(descriptions))
	for i, d := range descriptions {
		candidates[i] = domain.FoodCandidate{FdcID: 1000 + i, Description: d}
	}
	return candidates
}

func TestChooseCandidate_NoBackendConfigured(t *testing.T) {
	s := NewMatchingService(nil, MatchConfig{})

	index, err := s.ChooseCandidate(context.Background(), "apple", candidateList("Apples, raw", "apple pie"))

	if err != nil {
		t.Fatalf("ChooseCandidate() error = %v", err)
	}
	if index != 0 {
		t.Errorf("index = %d, want 0", index)
	}
}

func TestChooseCandidate_BackendChooses(t *testing.T) {
	matcher := &MockFoodMatcher{choice: domain.MatchedChoice(1)}
	s := NewMatchingService(matcher, MatchConfig{})

	index, err := s.ChooseCandidate(context.Background(), "apple", candidateList("apple pie", "Apples, raw"))

	if err != nil {
		t.Fatalf("ChooseCandidate() error = %v", err)
	}
	if index != 1 {
		t.Errorf("index = %d, want 1", index)
	}
	if !matcher.called {
		t.Error("expected backend to be called")
	}
	if matcher.lastQuery != "apple" {
		t.Errorf("query = %q, want %q", matcher.lastQuery, "apple")
	}
	if len(matcher.candidates) != 2 || matcher.candidates[1] != "Apples, raw" {
		t.Errorf("candidates = %v, want the two descriptions", matcher.candidates)
	}
}

func TestChooseCandidate_NoConfidentMatchFallsBackToFirst(t *testing.T) {
	matcher := &MockFoodMatcher{choice: domain.NoMatch}
	s := NewMatchingService(matcher, MatchConfig{})

	index, err := s.ChooseCandidate(context.Background(), "apple", candidateList("Apples, raw", "apple pie"))

	if err != nil {
		t.Fatalf("ChooseCandidate() error = %v", err)
	}
	if index != 0 {
		t.Errorf("index = %d, want 0", index)
	}
}

func TestChooseCandidate_BackendError(t *testing.T) {
	matcher := &MockFoodMatcher{err: domain.ErrMatchFailure}
	s := NewMatchingService(matcher, MatchConfig{})

	_, err := s.ChooseCandidate(context.Background(), "apple", candidateList("Apples, raw"))

	if !errors.Is(err, domain.ErrMatchFailure) {
		t.Errorf("err = %v, want ErrMatchFailure", err)
	}
}

func TestChooseCandidate_IndexOutOfRange(t *testing.T) {
	matcher := &MockFoodMatcher{choice: domain.MatchedChoice(7)}
	s := NewMatchingService(matcher, MatchConfig{})

	_, err := s.ChooseCandidate(context.Background(), "apple", candidateList("Apples, raw", "apple pie"))

	if !errors.Is(err, domain.ErrMatchFailure) {
		t.Errorf("err = %v, want ErrMatchFailure", err)
	}
}

func TestChooseCandidate_NoCandidates(t *testing.T) {
	s := NewMatchingService(&MockFoodMatcher{}, MatchConfig{})

	_, err := s.ChooseCandidate(context.Background(), "apple", nil)

	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
}
