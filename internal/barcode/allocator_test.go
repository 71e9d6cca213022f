package barcode

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gatepass/internal/errors"
)

// setIndex treats a map as the assigned-code set.
type setIndex struct {
	codes map[string]bool
}

func (s *setIndex) BarcodeExists(_ context.Context, code string) (bool, error) {
	return s.codes[code], nil
}

func TestAllocate_Format(t *testing.T) {
	alloc := NewAllocator(&setIndex{codes: map[string]bool{}})

	code, err := alloc.Allocate(context.Background())
	require.NoError(t, err)

	assert.Len(t, code, 7)
	assert.True(t, strings.HasPrefix(code, "BAR"))
	for _, r := range code[3:] {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestAllocate_SequentialCodesAreDistinct(t *testing.T) {
	index := &setIndex{codes: map[string]bool{}}
	alloc := NewAllocator(index)

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		code, err := alloc.Allocate(context.Background())
		require.NoError(t, err)
		require.False(t, seen[code], "code %s allocated twice", code)
		seen[code] = true
		// mimic the insert that normally follows allocation
		index.codes[code] = true
	}
	assert.Len(t, seen, 1000)
}

func TestAllocate_ExhaustedAfterRetryBound(t *testing.T) {
	alloc := NewAllocator(exhaustedIndex{})

	_, err := alloc.Allocate(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAllocationExhausted)
}

// exhaustedIndex claims every candidate is taken.
type exhaustedIndex struct{}

func (exhaustedIndex) BarcodeExists(context.Context, string) (bool, error) {
	return true, nil
}
