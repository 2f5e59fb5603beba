package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/services"
)

func TestCreateSet_Success_ReturnsStoredWeight(t *testing.T) {
	r := newTestRouter(nil, stubSetSvc{
		create: func(_ context.Context, reps int, weight float64) (*domain.Set, error) {
			// The service hands back the canonical (rounded) value.
			return &domain.Set{ID: 101, Reps: reps, Weight: 60.26}, nil
		},
	}, nil, nil, nil)

	w := doJSON(t, r, http.MethodPost, "/sets", map[string]any{"reps": 10, "weight": 60.255})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var got domain.Set
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 101 || got.Weight != 60.26 {
		t.Fatalf("unexpected set: %+v", got)
	}
}

func TestCreateSet_MissingFields(t *testing.T) {
	r := newTestRouter(nil, nil, nil, nil, nil)

	for _, body := range []map[string]any{
		{},
		{"reps": 10},
		{"weight": 60},
	} {
		w := doJSON(t, r, http.MethodPost, "/sets", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, w.Code)
		}
	}
}

func TestCreateSet_ZeroWeightAccepted(t *testing.T) {
	// weight:0 must bind (pointer field), bodyweight sets are legal.
	var gotWeight float64 = -1
	r := newTestRouter(nil, stubSetSvc{
		create: func(_ context.Context, reps int, weight float64) (*domain.Set, error) {
			gotWeight = weight
			return &domain.Set{ID: 1, Reps: reps, Weight: weight}, nil
		},
	}, nil, nil, nil)

	w := doJSON(t, r, http.MethodPost, "/sets", map[string]any{"reps": 12, "weight": 0})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if gotWeight != 0 {
		t.Fatalf("expected weight 0 passed through, got %v", gotWeight)
	}
}

func TestCreateSet_ValidationErrorMapping(t *testing.T) {
	r := newTestRouter(nil, stubSetSvc{
		create: func(context.Context, int, float64) (*domain.Set, error) {
			return nil, services.ErrInvalidWeight
		},
	}, nil, nil, nil)

	w := doJSON(t, r, http.MethodPost, "/sets", map[string]any{"reps": 10, "weight": -5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetSet_StatusMapping(t *testing.T) {
	r := newTestRouter(nil, stubSetSvc{
		get: func(_ context.Context, id uint) (*domain.Set, error) {
			if id == 101 {
				return &domain.Set{ID: 101, Reps: 10, Weight: 60}, nil
			}
			return nil, services.ErrSetNotFound
		},
	}, nil, nil, nil)

	if w := doJSON(t, r, http.MethodGet, "/sets/101", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/sets/999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/sets/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListSets_ParsesIDList(t *testing.T) {
	var gotIDs []uint
	r := newTestRouter(nil, stubSetSvc{
		getMany: func(_ context.Context, ids []uint) ([]domain.Set, error) {
			gotIDs = ids
			return []domain.Set{{ID: 101}, {ID: 102}}, nil
		},
	}, nil, nil, nil)

	w := doJSON(t, r, http.MethodGet, "/sets?ids=101,102", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if len(gotIDs) != 2 || gotIDs[0] != 101 || gotIDs[1] != 102 {
		t.Fatalf("unexpected ids: %v", gotIDs)
	}

	for _, q := range []string{"ids=101,abc", "ids=101,0", "ids="} {
		w := doJSON(t, r, http.MethodGet, "/sets?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", q, w.Code)
		}
	}
}

func TestUpdateSet_StatusMapping(t *testing.T) {
	r := newTestRouter(nil, nil, nil, nil, nil)
	if w := doJSON(t, r, http.MethodPut, "/sets/101", map[string]any{"reps": 12, "weight": 62.5}); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPut, "/sets/101", map[string]any{"reps": 12}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing weight, got %d", w.Code)
	}

	r = newTestRouter(nil, stubSetSvc{
		update: func(context.Context, uint, int, float64) error { return services.ErrSetNotFound },
	}, nil, nil, nil)
	if w := doJSON(t, r, http.MethodPut, "/sets/101", map[string]any{"reps": 12, "weight": 62.5}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteSet_StatusMapping(t *testing.T) {
	r := newTestRouter(nil, nil, nil, nil, nil)
	if w := doJSON(t, r, http.MethodDelete, "/sets/101", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	r = newTestRouter(nil, stubSetSvc{
		delete: func(context.Context, uint) error { return services.ErrSetNotFound },
	}, nil, nil, nil)
	if w := doJSON(t, r, http.MethodDelete, "/sets/101", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
