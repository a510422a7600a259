package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/check-ledger/pkg/api"
	"github.com/chris/check-ledger/pkg/models"
	storage_mocks "github.com/chris/check-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		pending, _ := models.AmountFromString("4200.50")
		waiting, _ := models.AmountFromString("900")

		// 2. Mock expectations
		mockStorage.On("OutgoingStats", mock.Anything, models.Today()).Return(&models.OutgoingStats{
			TotalChecks:   12,
			PendingCount:  5,
			PendingAmount: pending,
			BouncedCount:  1,
			DueThisWeek:   2,
			DueThisMonth:  4,
		}, nil)
		mockStorage.On("IncomingStats", mock.Anything).Return(&models.IncomingStats{
			WaitingDepositAmount: waiting,
			WaitingDepositCount:  3,
			DepositedCount:       2,
		}, nil)

		// 3. Execute
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		rr := httptest.NewRecorder()
		handler.Stats(rr, req)

		// 4. Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Data api.DashboardStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 12, resp.Data.Outgoing.TotalChecks)
		assert.Equal(t, "4200.5", resp.Data.Outgoing.PendingAmount)
		assert.Equal(t, 3, resp.Data.Incoming.WaitingDepositCount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("OutgoingStats", mock.Anything, models.Today()).Return(nil, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		rr := httptest.NewRecorder()
		handler.Stats(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStorage.AssertNotCalled(t, "IncomingStats", mock.Anything)
	})
}

func TestRecentChecks(t *testing.T) {
	amount, _ := models.AmountFromString("350")
	rows := []models.RecentCheck{{
		Type:        models.Outgoing,
		CheckNumber: "100234",
		Amount:      amount,
		DueDate:     models.NewDate(2024, time.April, 1),
		Status:      models.StatusPending,
		ContactName: "Mordechai Cohen",
		CreatedAt:   time.Now(),
	}}

	t.Run("Default Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("RecentChecks", mock.Anything, 10).Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent-checks", nil)
		rr := httptest.NewRecorder()
		handler.RecentChecks(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("RecentChecks", mock.Anything, 5).Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent-checks?limit=5", nil)
		rr := httptest.NewRecorder()
		handler.RecentChecks(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Bad Limit Falls Back", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("RecentChecks", mock.Anything, 10).Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent-checks?limit=-3", nil)
		rr := httptest.NewRecorder()
		handler.RecentChecks(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestUpcomingDue(t *testing.T) {
	t.Run("Default Window", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("UpcomingDue", mock.Anything, models.Today(), 7).Return([]models.UpcomingCheck{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/upcoming-due", nil)
		rr := httptest.NewRecorder()
		handler.UpcomingDue(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Custom Window", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewHandler(mockStorage)

		mockStorage.On("UpcomingDue", mock.Anything, models.Today(), 30).Return([]models.UpcomingCheck{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/upcoming-due?days=30", nil)
		rr := httptest.NewRecorder()
		handler.UpcomingDue(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
