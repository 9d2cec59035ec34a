package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/codes"
	createReservation "github.com/m04kA/SMC-HotelReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func setup(t *testing.T) (*Handler, string) {
	t.Helper()
	store := memory.NewStore()
	room, err := store.Rooms().Create(context.Background(), &domain.Room{Name: "Double", Capacity: 2, PricePerNight: 100, IsActive: true})
	require.NoError(t, err)

	uc := createReservation.NewUseCase(
		store.Rooms(), store.Reservations(), codes.NewGenerator(store.Reservations()), store, nil, logger.NewNop(),
	).WithTimeProvider(fixedTime{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)})

	return NewHandler(uc, logger.NewNop()), room.ID
}

func body(roomID, checkIn, checkOut string) string {
	return `{"roomId":"` + roomID + `","checkIn":"` + checkIn + `","checkOut":"` + checkOut + `",` +
		`"guests":2,"guestName":"John Doe","guestEmail":"john@example.com","guestPhone":"+1000000"}`
}

func do(h *Handler, payload string, principal *domain.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *principal))
	}
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_CreatedThenConflict(t *testing.T) {
	h, roomID := setup(t)
	client := &domain.Principal{ID: "user-1", Role: domain.RoleClient}

	w := do(h, body(roomID, "2025-01-10", "2025-01-12"), client)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "H2025-0001", resp.Code)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 200.0, resp.Total)
	assert.Equal(t, 2, resp.Nights)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, "user-1", *resp.UserID)

	w = do(h, body(roomID, "2025-01-11", "2025-01-13"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(h, body(roomID, "2025-01-12T00:00:00Z", "2025-01-14T00:00:00Z"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var anonymous ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anonymous))
	assert.Equal(t, "H2025-0002", anonymous.Code)
	assert.Nil(t, anonymous.UserID)
}

func TestHandle_Errors(t *testing.T) {
	h, roomID := setup(t)

	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "broken json", payload: `{"roomId":`, want: http.StatusBadRequest},
		{name: "unknown field", payload: `{"roomId":"x","foo":1}`, want: http.StatusBadRequest},
		{name: "bad date", payload: body(roomID, "10.01.2025", "2025-01-12"), want: http.StatusBadRequest},
		{name: "inverted range", payload: body(roomID, "2025-01-12", "2025-01-10"), want: http.StatusBadRequest},
		{name: "unknown room", payload: body("missing", "2025-01-10", "2025-01-12"), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, tt.payload, nil)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
