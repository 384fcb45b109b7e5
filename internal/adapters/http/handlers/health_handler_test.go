package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, dto.HealthReport{Status: dto.HealthOK}, decodeJSON[dto.HealthReport](t, rec))
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  map[string]error
		wantCode int
		want     dto.HealthReport
	}{
		{
			name:     "all passing",
			results:  map[string]error{"database": nil},
			wantCode: http.StatusOK,
			want:     dto.HealthReport{Status: dto.HealthReady, Checks: map[string]string{"database": dto.HealthOK}},
		},
		{
			name:     "one failing",
			results:  map[string]error{"database": errors.New("database is locked"), "cache": nil},
			wantCode: http.StatusServiceUnavailable,
			want: dto.HealthReport{Status: dto.HealthNotReady, Checks: map[string]string{
				"database": "database is locked",
				"cache":    dto.HealthOK,
			}},
		},
		{
			name:     "nothing registered",
			results:  map[string]error{},
			wantCode: http.StatusOK,
			want:     dto.HealthReport{Status: dto.HealthReady},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			assert.Equal(t, tt.want, decodeJSON[dto.HealthReport](t, rec))
		})
	}
}
