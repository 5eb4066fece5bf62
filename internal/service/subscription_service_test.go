package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/repository"
	"github.com/subtrackify/subtrackify/internal/testutil"
)

func setupSubscriptionService(t *testing.T) (*SubscriptionService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	subRepo := repository.NewSubscriptionRepository(db)
	service := NewSubscriptionService(subRepo)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestSubscriptionService_Create(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	nextBilling := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sub, err := service.Create(user.ID, &dto.CreateSubscriptionRequest{
		Name:            "Netflix",
		Price:           9.99,
		Currency:        "USD",
		BillingCycle:    "monthly",
		NextBillingDate: nextBilling,
	})

	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	assert.Equal(t, user.ID, sub.UserID)
	assert.Equal(t, "Netflix", sub.Name)
	// 状态默认 active
	assert.Equal(t, "active", sub.Status)
	assert.True(t, nextBilling.Equal(sub.NextBillingDate))
}

func TestSubscriptionService_Create_DefaultCurrency(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	sub, err := service.Create(user.ID, &dto.CreateSubscriptionRequest{
		Name:            "Spotify",
		Price:           4.99,
		BillingCycle:    "monthly",
		NextBillingDate: time.Now().AddDate(0, 1, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, "USD", sub.Currency)
}

func TestSubscriptionService_Get_OwnedByOtherUser(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, owner.ID)

	_, err := service.Get(sub.ID, other.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestSubscriptionService_Get_NotFound(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	_, err := service.Get(99999, user.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestSubscriptionService_List_Filters(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID,
		testutil.WithCategory("streaming"),
		testutil.WithPrice(9.99),
	)
	testutil.TestSubscription(t, db, user.ID,
		testutil.WithCategory("music"),
		testutil.WithPrice(4.99),
	)

	subs, err := service.List(user.ID, &dto.ListSubscriptionsQuery{Category: "music"})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, 4.99, subs[0].Price)
}

func TestSubscriptionService_Update(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, user.ID)

	newName := "Renamed"
	newStatus := "paused"
	newPrice := 14.99
	updated, err := service.Update(sub.ID, user.ID, &dto.UpdateSubscriptionRequest{
		Name:   &newName,
		Status: &newStatus,
		Price:  &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "paused", updated.Status)
	assert.Equal(t, 14.99, updated.Price)
	// 未更新的字段保持不变
	assert.Equal(t, sub.BillingCycle, updated.BillingCycle)
}

func TestSubscriptionService_Update_NoFields(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, user.ID)

	_, err := service.Update(sub.ID, user.ID, &dto.UpdateSubscriptionRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestSubscriptionService_Update_CrossOwner(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, owner.ID)

	newName := "Hijacked"
	_, err := service.Update(sub.ID, other.ID, &dto.UpdateSubscriptionRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	// 原记录不受影响
	unchanged, err := service.Get(sub.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.Name, unchanged.Name)
}

func TestSubscriptionService_Delete(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, user.ID)

	err := service.Delete(sub.ID, user.ID)
	require.NoError(t, err)

	_, err = service.Get(sub.ID, user.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestSubscriptionService_Delete_CrossOwner(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	sub := testutil.TestSubscription(t, db, owner.ID)

	err := service.Delete(sub.ID, other.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	// 原记录仍在
	_, err = service.Get(sub.ID, owner.ID)
	assert.NoError(t, err)
}
