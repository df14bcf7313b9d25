package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/explorer"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/handlers"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/mocks"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/services"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	jesse    = &business.ResolvedName{Name: "jesse.base.eth", Address: common.HexToAddress("0x849151d7d0bf1f34b70d5cad5149d28cc2308bf1")}
	sampleUS = &business.UserStats{TotalTransactions: 12, UniqueDaysActive: 4, LongestStreak: 2, ContractsDeployed: 1, TotalGasPaid: "0.0042"}
)

func newStatsRouter(t *testing.T, timeout time.Duration) (*gin.Engine, *mocks.MockNameService, *mocks.MockStatsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	names := mocks.NewMockNameServiceForTest(t)
	stats := mocks.NewMockStatsServiceForTest(t)
	h := handlers.NewStatsHandler(names, stats, timeout, zap.NewNop())

	router := gin.New()
	router.GET("/api/v1/stats/:name", h.GetStats)
	router.GET("/api/v1/resolve/:name", h.Resolve)
	router.GET("/health", handlers.NewHealthHandler().Health)
	return router, names, stats
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestStatsHandler_GetStats(t *testing.T) {
	exhausted := &explorer.RetryExhaustedError{URL: "https://base.example/api", Attempts: 8, Err: errors.New("HTTP Status 503")}

	tests := []struct {
		name       string
		path       string
		setup      func(n *mocks.MockNameService, s *mocks.MockStatsService)
		wantStatus int
		wantError  string
	}{
		{
			name: "returns stats and card",
			path: "/api/v1/stats/jesse",
			setup: func(n *mocks.MockNameService, s *mocks.MockStatsService) {
				n.EXPECT().Resolve(gomock.Any(), "jesse").Return(jesse, nil)
				s.EXPECT().GetUserStats(gomock.Any(), jesse.Address).Return(sampleUS, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "raw address is a bad request",
			path: "/api/v1/stats/0x849151d7d0bf1f34b70d5cad5149d28cc2308bf1",
			setup: func(n *mocks.MockNameService, s *mocks.MockStatsService) {
				n.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, services.ErrRawAddress)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  constants.RawAddressMessage,
		},
		{
			name: "unknown name is not found",
			path: "/api/v1/stats/nobody",
			setup: func(n *mocks.MockNameService, s *mocks.MockStatsService) {
				n.EXPECT().Resolve(gomock.Any(), "nobody").Return(nil, services.ErrNameNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  constants.FetchFailedMessage,
		},
		{
			name: "exhausted source is unavailable",
			path: "/api/v1/stats/jesse",
			setup: func(n *mocks.MockNameService, s *mocks.MockStatsService) {
				n.EXPECT().Resolve(gomock.Any(), "jesse").Return(jesse, nil)
				s.EXPECT().GetUserStats(gomock.Any(), jesse.Address).Return(nil, exhausted)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  constants.FetchFailedMessage,
		},
		{
			name: "missing source configuration is a server error",
			path: "/api/v1/stats/jesse",
			setup: func(n *mocks.MockNameService, s *mocks.MockStatsService) {
				n.EXPECT().Resolve(gomock.Any(), "jesse").Return(jesse, nil)
				s.EXPECT().GetUserStats(gomock.Any(), jesse.Address).Return(nil, services.ErrMissingSourceURL)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  constants.ServiceConfigFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, names, stats := newStatsRouter(t, time.Minute)
			tt.setup(names, stats)

			w := get(router, tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				var body responses.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body.Error)
				assert.NotContains(t, w.Body.String(), "base.example")
				return
			}

			var body responses.StatsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "jesse.base.eth", body.Name)
			assert.Equal(t, jesse.Address.Hex(), body.Address)
			assert.Equal(t, sampleUS, body.Stats)
			assert.Equal(t, "12", body.Card.Transactions)
			assert.Equal(t, "0.0042", body.Card.Gas)
			assert.Equal(t, "1", body.Card.Contracts)
		})
	}
}

func TestStatsHandler_GetStatsAppliesTimeout(t *testing.T) {
	router, names, stats := newStatsRouter(t, 30*time.Millisecond)
	names.EXPECT().Resolve(gomock.Any(), "jesse").Return(jesse, nil)
	stats.EXPECT().GetUserStats(gomock.Any(), jesse.Address).DoAndReturn(
		func(ctx context.Context, _ common.Address) (*business.UserStats, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(30*time.Millisecond), deadline, 30*time.Millisecond)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	w := get(router, "/api/v1/stats/jesse")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStatsHandler_Resolve(t *testing.T) {
	router, names, _ := newStatsRouter(t, time.Minute)
	names.EXPECT().Resolve(gomock.Any(), "jesse").Return(jesse, nil)

	w := get(router, "/api/v1/resolve/jesse")

	require.Equal(t, http.StatusOK, w.Code)
	var body responses.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, responses.ResolveResponse{Name: "jesse.base.eth", Address: jesse.Address.Hex()}, body)
}

func TestHealthHandler_Health(t *testing.T) {
	router, _, _ := newStatsRouter(t, time.Minute)

	w := get(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
