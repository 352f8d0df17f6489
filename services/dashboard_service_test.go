package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(t *testing.T, f *testFixture) *DashboardService {
	t.Helper()
	svc, err := NewDashboardService(repository.NewOrderRepository(f.DB))
	require.NoError(t, err)
	return svc
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(t, f)

	f.placeOrder(t) // 110000
	f.placeOrder(t) // 110000

	out, err := svc.Summary(f.Owner.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(220000), out.TodayRevenue)
	assert.Equal(t, int64(2), out.TotalOrders)
	assert.Equal(t, int64(220000), out.MonthlyEarnings)
	assert.Equal(t, 0.0, out.GrowthRate) // no revenue last month

	var byDate int64
	for _, v := range out.RevenueByDate {
		byDate += v
	}
	assert.Equal(t, int64(220000), byDate)
}

func TestDashboardDeliveredStillCounts(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(t, f)

	id := f.placeOrder(t)
	for _, to := range []string{
		entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusReady, entity.StatusDelivered,
	} {
		require.NoError(t, f.OrderSvc.Transition(f.Owner.ID, id, to))
	}

	out, err := svc.Summary(f.Owner.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(110000), out.TodayRevenue)
	assert.Equal(t, int64(1), out.TotalOrders)
}

func TestDashboardCancelledExcluded(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(t, f)

	f.placeOrder(t)
	cancelled := f.placeOrder(t)
	require.NoError(t, f.OrderSvc.Transition(f.Owner.ID, cancelled, entity.StatusCancelled))

	out, err := svc.Summary(f.Owner.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(110000), out.TodayRevenue)
	assert.Equal(t, int64(1), out.TotalOrders)
}

func TestDashboardVoidedLineExcluded(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(t, f)

	id := f.placeOrder(t)
	var detail entity.OrderDetail
	require.NoError(t, f.DB.Where("order_id = ? AND dish_id = ?", id, f.Tea.ID).First(&detail).Error)
	require.NoError(t, f.OrderSvc.UpdateDetailStatus(f.Owner.ID, detail.ID, false))

	out, err := svc.Summary(f.Owner.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(100000), out.TodayRevenue)
}

func TestDashboardScopedByOwner(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(t, f)

	f.placeOrder(t)

	out, err := svc.Summary(createOwner(t, f, "other@example.com"), time.Now())
	require.NoError(t, err)
	assert.Zero(t, out.TodayRevenue)
	assert.Zero(t, out.TotalOrders)
	assert.Empty(t, out.RevenueByDate)
}
