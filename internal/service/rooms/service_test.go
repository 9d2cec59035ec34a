package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
	"github.com/m04kA/SMC-HotelReservationService/pkg/ptr"
)

var (
	admin    = domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}
	operator = domain.Principal{ID: "op-1", Role: domain.RoleOperator}
	client   = domain.Principal{ID: "user-1", Role: domain.RoleClient}
)

func newService() *Service {
	store := memory.NewStore()
	return NewService(store.Rooms(), store, logger.NewNop())
}

func TestCreate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	room, err := svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "Suite", Capacity: 4, PricePerNight: 199.999})
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.True(t, room.IsActive)
	assert.Equal(t, 200.0, room.PricePerNight)

	_, err = svc.Create(ctx, operator, &models.CreateRoomRequest{Name: "Suite", Capacity: 4})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "Suite", Capacity: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "S", Capacity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RolePolicy(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	room, err := svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "Double", Capacity: 2, PricePerNight: 100})
	require.NoError(t, err)

	// Оператор может только переключить активность
	updated, err := svc.Update(ctx, operator, room.ID, &models.UpdateRoomRequest{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.Update(ctx, operator, room.ID, &models.UpdateRoomRequest{Name: ptr.Ptr("Renamed")})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(ctx, client, room.ID, &models.UpdateRoomRequest{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrAccessDenied)

	updated, err = svc.Update(ctx, admin, room.ID, &models.UpdateRoomRequest{Name: ptr.Ptr("Renamed"), Capacity: ptr.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 3, updated.Capacity)
	assert.Equal(t, 100.0, updated.PricePerNight)

	_, err = svc.Update(ctx, admin, room.ID, &models.UpdateRoomRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, admin, room.ID, &models.UpdateRoomRequest{Capacity: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, admin, "missing", &models.UpdateRoomRequest{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestList_InactiveVisibleToStaffOnly(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "Double", Capacity: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, &models.CreateRoomRequest{Name: "Closed", Capacity: 2, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	public, err := svc.List(ctx, nil, &models.ListRoomsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, public.Rooms, 1)

	staff, err := svc.List(ctx, &operator, &models.ListRoomsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, staff.Rooms, 2)

	filtered, err := svc.List(ctx, nil, &models.ListRoomsRequest{Query: "doub"})
	require.NoError(t, err)
	require.Len(t, filtered.Rooms, 1)
	assert.Equal(t, "Double", filtered.Rooms[0].Name)
}

func TestList_QueryIsLiteral(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, name := range []string{"Promo 50% off", "Suite 500", "Twin_A"} {
		_, err := svc.Create(ctx, admin, &models.CreateRoomRequest{Name: name, Capacity: 2})
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "  50%  ", want: []string{"Promo 50% off"}},
		{query: "_", want: []string{"Twin_A"}},
		{query: "   ", want: []string{"Promo 50% off", "Suite 500", "Twin_A"}},
	}

	for _, tt := range tests {
		resp, err := svc.List(ctx, nil, &models.ListRoomsRequest{Query: tt.query})
		require.NoError(t, err)

		names := make([]string, 0, len(resp.Rooms))
		for _, rm := range resp.Rooms {
			names = append(names, rm.Name)
		}
		assert.Equal(t, tt.want, names, "q=%q", tt.query)
	}
}

func TestGetByID(t *testing.T) {
	svc := newService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
