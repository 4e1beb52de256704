package attrcache

import (
	"sync"
	"testing"

	"workdesk/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ClaimEnforcesSingleWriter(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.Claim("tenant:a", "identity-service"))
	// Same owner may re-claim.
	require.NoError(t, s.Claim("tenant:a", "identity-service"))

	err := s.Claim("tenant:a", "someone-else")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNamespaceClaimed))
}

func TestStore_PutRejectsNonOwner(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Claim("tenant:a", "identity-service"))

	err := s.Put("tenant:a", "intruder", "business_name", "Acme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotOwner))

	// Unclaimed namespaces cannot be written either.
	err = s.Put("tenant:b", "identity-service", "business_name", "Acme")
	assert.True(t, errors.Is(err, ErrNotOwner))
}

func TestStore_PutGetSnapshot(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Claim("tenant:a", "identity-service"))
	require.NoError(t, s.Put("tenant:a", "identity-service", "business_name", "Acme"))
	require.NoError(t, s.Put("tenant:a", "identity-service", "subscriptionType", "pro"))

	value, ok := s.Get("tenant:a", "business_name")
	require.True(t, ok)
	assert.Equal(t, "Acme", value)

	snapshot := s.Snapshot("tenant:a")
	assert.Len(t, snapshot, 2)

	// Mutating the snapshot must not leak back into the store.
	snapshot["business_name"] = "Tampered"
	value, _ = s.Get("tenant:a", "business_name")
	assert.Equal(t, "Acme", value)
}

func TestStore_InvalidateDropsDataKeepsClaim(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Claim("tenant:a", "identity-service"))
	require.NoError(t, s.Put("tenant:a", "identity-service", "business_name", "Acme"))

	s.Invalidate("tenant:a")

	_, ok := s.Get("tenant:a", "business_name")
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot("tenant:a"))

	// Owner can repopulate without re-claiming.
	require.NoError(t, s.Put("tenant:a", "identity-service", "business_name", "Acme"))
}

func TestStore_ConcurrentReadersAndOneWriter(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Claim("tenant:a", "identity-service"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Get("tenant:a", "business_name")
				s.Snapshot("tenant:a")
			}
		}()
	}
	for j := 0; j < 100; j++ {
		require.NoError(t, s.Put("tenant:a", "identity-service", "business_name", "Acme"))
	}
	wg.Wait()
}
