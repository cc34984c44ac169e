package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daykeeper/internal/model"
)

type fakeHabitStore struct {
	habits    map[string]model.HabitDetail
	listErr   error
	toggleErr error

	toggled map[string]string
	added   []string
	colors  map[string]string
	renamed map[string]string
	deleted []string
}

func newFakeHabitStore() *fakeHabitStore {
	return &fakeHabitStore{
		habits:  map[string]model.HabitDetail{},
		toggled: map[string]string{},
		colors:  map[string]string{},
		renamed: map[string]string{},
	}
}

func (f *fakeHabitStore) List(ctx context.Context) (map[string]model.HabitDetail, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.habits, nil
}

func (f *fakeHabitStore) ToggleDate(ctx context.Context, name, date string) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.toggled[name] = date
	return nil
}

func (f *fakeHabitStore) Add(ctx context.Context, name string) error {
	f.added = append(f.added, name)
	return nil
}

func (f *fakeHabitStore) UpdateColor(ctx context.Context, name, color string) error {
	f.colors[name] = color
	return nil
}

func (f *fakeHabitStore) Rename(ctx context.Context, oldName, newName string) error {
	f.renamed[oldName] = newName
	return nil
}

func (f *fakeHabitStore) Delete(ctx context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return nil
}

func newHabitRouter(store *fakeHabitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHabitHandler(store, zap.NewNop())

	r := gin.New()
	r.GET("/api/habits", h.Habits)
	r.POST("/api/habits", h.Habits)
	r.POST("/api/habits/new", h.New)
	r.POST("/api/habits/color", h.Color)
	r.POST("/api/habits/rename", h.Rename)
	r.POST("/api/habits/delete", h.Delete)
	return r
}

func TestHabitsListShape(t *testing.T) {
	store := newFakeHabitStore()
	store.habits["Reading"] = model.HabitDetail{
		Dates: map[string]bool{"2025-03-12": true},
		Color: "#2ecc40",
	}
	r := newHabitRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/habits", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Habits map[string]model.HabitDetail `json:"habits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	detail, ok := resp.Habits["Reading"]
	if !ok {
		t.Fatalf("response missing habit Reading: %s", w.Body.String())
	}
	if !detail.Dates["2025-03-12"] || detail.Color != "#2ecc40" {
		t.Errorf("detail = %+v, want checked date and color", detail)
	}
}

func TestHabitsToggle(t *testing.T) {
	store := newFakeHabitStore()
	r := newHabitRouter(store)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"habit":"Reading","date":"2025-03-12"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/habits", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.toggled["Reading"] != "2025-03-12" {
		t.Errorf("toggled = %v, want Reading on 2025-03-12", store.toggled)
	}
}

func TestHabitsToggleValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing habit", `{"date":"2025-03-12"}`},
		{"missing date", `{"habit":"Reading"}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeHabitStore()
			r := newHabitRouter(store)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/habits", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if len(store.toggled) != 0 {
				t.Errorf("nothing should have been toggled, got %v", store.toggled)
			}
		})
	}
}

func TestHabitsToggleStoreFailure(t *testing.T) {
	store := newFakeHabitStore()
	store.toggleErr = errors.New("db down")
	r := newHabitRouter(store)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"habit":"Reading","date":"2025-03-12"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/habits", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestHabitNew(t *testing.T) {
	store := newFakeHabitStore()
	r := newHabitRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/habits/new", strings.NewReader(`{"habit":"Meditation"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(store.added) != 1 || store.added[0] != "Meditation" {
		t.Errorf("added = %v, want [Meditation]", store.added)
	}
}

func TestHabitColorRenameDelete(t *testing.T) {
	store := newFakeHabitStore()
	r := newHabitRouter(store)

	calls := []struct {
		path string
		body string
	}{
		{"/api/habits/color", `{"habit":"Reading","color":"#ff4136"}`},
		{"/api/habits/rename", `{"old":"Reading","new":"Evening Reading"}`},
		{"/api/habits/delete", `{"habit":"Evening Reading"}`},
	}
	for _, call := range calls {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, call.path, strings.NewReader(call.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("POST %s status = %d, want 200", call.path, w.Code)
		}
	}

	if store.colors["Reading"] != "#ff4136" {
		t.Errorf("colors = %v, want Reading -> #ff4136", store.colors)
	}
	if store.renamed["Reading"] != "Evening Reading" {
		t.Errorf("renamed = %v, want Reading -> Evening Reading", store.renamed)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "Evening Reading" {
		t.Errorf("deleted = %v, want [Evening Reading]", store.deleted)
	}
}

func TestHabitValidationErrors(t *testing.T) {
	tests := []struct {
		path string
		body string
	}{
		{"/api/habits/new", `{}`},
		{"/api/habits/color", `{"habit":"Reading"}`},
		{"/api/habits/rename", `{"old":"Reading"}`},
		{"/api/habits/delete", `{}`},
	}

	for _, tt := range tests {
		store := newFakeHabitStore()
		r := newHabitRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %s with %s: status = %d, want 400", tt.path, tt.body, w.Code)
		}
	}
}

func TestHabitsListFailure(t *testing.T) {
	store := newFakeHabitStore()
	store.listErr = errors.New("db down")
	r := newHabitRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/habits", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
