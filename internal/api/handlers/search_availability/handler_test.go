package search_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	busy, err := store.Rooms().Create(ctx, &domain.Room{Name: "Busy", Capacity: 2, PricePerNight: 100, IsActive: true})
	require.NoError(t, err)
	_, err = store.Rooms().Create(ctx, &domain.Room{Name: "Free", Capacity: 2, PricePerNight: 80, IsActive: true})
	require.NoError(t, err)
	_, err = store.Reservations().Create(ctx, &domain.Reservation{
		Code:     "H2025-0001",
		RoomID:   busy.ID,
		CheckIn:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Guests:   1,
		Status:   domain.StatusPending,
	})
	require.NoError(t, err)

	h := NewHandler(searchAvailability.NewUseCase(store.Rooms(), store.Reservations(), logger.NewNop()), logger.NewNop())

	get := func(query string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/rooms/availability/search?"+query, nil))
		return w
	}

	w := get("start=2025-01-11&end=2025-01-13")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Nights)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "Free", resp.Rooms[0].Name)

	// Касание границ не пересечение
	w = get("start=2025-01-12&end=2025-01-14")
	var touching SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &touching))
	assert.Len(t, touching.Rooms, 2)

	assert.Equal(t, http.StatusBadRequest, get("start=2025-01-12&end=2025-01-12").Code)
	assert.Equal(t, http.StatusBadRequest, get("start=bad&end=2025-01-12").Code)
	assert.Equal(t, http.StatusBadRequest, get("").Code)
}
