package list_reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
	"github.com/m04kA/SMC-HotelReservationService/pkg/ptr"
)

func setup(t *testing.T) *Handler {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	room, err := store.Rooms().Create(ctx, &domain.Room{Name: "Double", Capacity: 2, PricePerNight: 100, IsActive: true})
	require.NoError(t, err)

	statuses := []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCanceled}
	for i, status := range statuses {
		checkIn := time.Date(2025, 3, 1+i*3, 0, 0, 0, 0, time.UTC)
		_, err := store.Reservations().Create(ctx, &domain.Reservation{
			Code:     fmt.Sprintf("H2025-%04d", i+1),
			RoomID:   room.ID,
			UserID:   ptr.Ptr("user-1"),
			CheckIn:  checkIn,
			CheckOut: checkIn.AddDate(0, 0, 2),
			Guests:   1,
			Status:   status,
		})
		require.NoError(t, err)
	}

	return NewHandler(reservations.NewService(store.Reservations(), store, logger.NewNop()), logger.NewNop())
}

func list(h *Handler, query string, p *domain.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/bookings?"+query, nil)
	if p != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *p))
	}
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Errors(t *testing.T) {
	h := setup(t)
	operator := &domain.Principal{ID: "op-1", Role: domain.RoleOperator}
	client := &domain.Principal{ID: "user-1", Role: domain.RoleClient}

	tests := []struct {
		name      string
		query     string
		principal *domain.Principal
		want      int
	}{
		{name: "anonymous", query: "", principal: nil, want: http.StatusUnauthorized},
		{name: "client", query: "", principal: client, want: http.StatusForbidden},
		{name: "page not a number", query: "page=abc", principal: operator, want: http.StatusBadRequest},
		{name: "zero page", query: "page=0", principal: operator, want: http.StatusBadRequest},
		{name: "negative page", query: "page=-3", principal: operator, want: http.StatusBadRequest},
		{name: "negative page size", query: "pageSize=-1", principal: operator, want: http.StatusBadRequest},
		{name: "unknown status", query: "status=ARCHIVED", principal: operator, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list(h, tt.query, tt.principal).Code)
		})
	}
}

func TestHandle_Pages(t *testing.T) {
	h := setup(t)
	admin := &domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}

	w := list(h, "pageSize=2", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var first models.ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 3, first.Total)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 2, first.PageSize)
	assert.Len(t, first.Items, 2)

	w = list(h, "page=2&pageSize=2", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var second models.ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Len(t, second.Items, 1)

	w = list(h, "status=confirmed", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmed models.ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	require.Equal(t, 1, confirmed.Total)
	assert.Equal(t, "H2025-0002", confirmed.Items[0].Code)
	assert.Equal(t, domain.DefaultPageSize, confirmed.PageSize)
}
