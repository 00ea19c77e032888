package relate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMiss(t *testing.T) {
	s := NewStore()
	_, ok := s.Lookup("public.users", "id", "1")
	assert.False(t, ok)
}

func TestStoreThenLookup(t *testing.T) {
	s := NewStore()
	s.Store("public.users", "id", "1", "uuid-1")
	v, ok := s.Lookup("public.users", "id", "1")
	assert.True(t, ok)
	assert.Equal(t, "uuid-1", v)
}

func TestStoreIsolatedByTableAndColumn(t *testing.T) {
	s := NewStore()
	s.Store("public.users", "id", "1", "uuid-1")
	_, ok := s.Lookup("public.orders", "id", "1")
	assert.False(t, ok)
	_, ok = s.Lookup("public.users", "email", "1")
	assert.False(t, ok)
}
