package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/tacos/service"
	"taco-cloud/internal/repository/repotest"
)

func newMux(t *testing.T) (*http.ServeMux, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	mux := http.NewServeMux()
	Register(mux, New(service.New(store.Repository()), logger.Nop()))
	return mux, store
}

func TestRecentTacos(t *testing.T) {
	mux, store := newMux(t)
	for _, name := range []string{"First", "Second", "Third"} {
		_, err := store.Repository().TacoRepo.Save(context.Background(), domain.Taco{Name: name, Ingredients: []string{"COTO"}})
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tacos/recent?limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.TacoSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Third", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
}

func TestGetTaco(t *testing.T) {
	mux, store := newMux(t)
	saved, err := store.Repository().TacoRepo.Save(context.Background(), domain.Taco{Name: "Veggie Taco", Ingredients: []string{"COTO", "TMTO"}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tacos/"+strconv.FormatInt(saved.ID, 10), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.TacoSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []string{"COTO", "TMTO"}, got.Ingredients)
}

func TestGetTacoErrors(t *testing.T) {
	mux, _ := newMux(t)

	for target, code := range map[string]int{
		"/api/tacos/999": http.StatusNotFound,
		"/api/tacos/abc": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, code, rec.Code, target)

		var problem map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
		assert.Equal(t, float64(code), problem["status"])
	}
}
