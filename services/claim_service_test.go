package services

import (
	"context"
	"testing"

	"wedding_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryClaim_DistinctItemsAllSucceed(t *testing.T) {
	store := newFakeStore()
	svc := &ClaimService{Store: store}
	ctx := context.Background()

	items := []string{"kitchenaid", "nespresso", "turm-suite"}
	for _, id := range items {
		require.NoError(t, svc.TryClaim(ctx, id, "Alice"))
	}

	claimed, err := svc.ListClaimed(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, items, claimed)
}

func TestTryClaim_SecondAttemptRejectedWithoutWrites(t *testing.T) {
	store := newFakeStore()
	svc := &ClaimService{Store: store}
	ctx := context.Background()

	require.NoError(t, svc.TryClaim(ctx, "kitchenaid", "Alice"))

	first, err := svc.GetClaim(ctx, "kitchenaid")
	require.NoError(t, err)
	writesBefore := store.writeCount()

	err = svc.TryClaim(ctx, "kitchenaid", "Bob")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, writesBefore, store.writeCount(), "a failed claim must not write")

	after, err := svc.GetClaim(ctx, "kitchenaid")
	require.NoError(t, err)
	assert.Equal(t, "Alice", after.ClaimedBy)
	assert.Equal(t, first.ClaimedAt, after.ClaimedAt)
}

func TestListClaimed_EmptyAndIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := &ClaimService{Store: store}
	ctx := context.Background()

	first, err := svc.ListClaimed(ctx)
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := svc.ListClaimed(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, svc.TryClaim(ctx, "camera", "Carol"))

	third, err := svc.ListClaimed(ctx)
	require.NoError(t, err)
	fourth, err := svc.ListClaimed(ctx)
	require.NoError(t, err)
	assert.Equal(t, third, fourth)
}

func TestGetClaim_Absent(t *testing.T) {
	store := newFakeStore()
	svc := &ClaimService{Store: store}

	_, err := svc.GetClaim(context.Background(), "blanket")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAllClaims_SkipsDanglingIndexIDs(t *testing.T) {
	store := newFakeStore()
	svc := &ClaimService{Store: store}
	ctx := context.Background()

	// An index id without a record, as left behind by a crash between
	// index write and record write on some other backend
	require.NoError(t, store.AddToSet(ctx, models.ClaimIndexKey, "ids", "ghost"))
	require.NoError(t, svc.TryClaim(ctx, "camera", "Carol"))

	claims, err := svc.AllClaims(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "Carol", claims["camera"].ClaimedBy)
	assert.NotContains(t, claims, "ghost")
}
