package get_room

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	room, err := store.Rooms().Create(ctx, &domain.Room{Name: "Double", Capacity: 2, PricePerNight: 100, IsActive: true})
	require.NoError(t, err)
	deleted, err := store.Rooms().Create(ctx, &domain.Room{Name: "Old", Capacity: 1, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, store.Rooms().SoftDelete(ctx, deleted.ID))

	h := NewHandler(rooms.NewService(store.Rooms(), store, logger.NewNop()), logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/rooms/{roomId}", h.Handle).Methods(http.MethodGet)

	get := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/"+id, nil))
		return w
	}

	w := get(room.ID)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, room.ID, resp.ID)
	assert.Equal(t, "Double", resp.Name)
	assert.Equal(t, 100.0, resp.PricePerNight)

	w = get("missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"номер не найден"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(deleted.ID).Code, "soft-deleted rooms are hidden")
}
