package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBillingEventStore_MarkProcessed(t *testing.T) {
	store := NewMemoryBillingEventStore()

	first, err := store.MarkProcessed(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.MarkProcessed(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.False(t, second)

	other, err := store.MarkProcessed(context.Background(), "evt_2")
	require.NoError(t, err)
	assert.True(t, other)
}
