package barcode

import (
	"context"
	"fmt"
	"math/rand"

	apperrors "gatepass/internal/errors"
)

const (
	prefix   = "BAR"
	codeLen  = 4
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// maxAttempts bounds the collision retry loop so a degenerate random
	// source cannot spin forever against a dense code space.
	maxAttempts = 20
)

// Index answers whether a candidate code is already assigned.
type Index interface {
	BarcodeExists(ctx context.Context, code string) (bool, error)
}

// Allocator produces short unique barcode strings. Codes are identifiers,
// not security tokens.
type Allocator struct {
	index Index
}

// NewAllocator creates an allocator checking candidates against index.
func NewAllocator(index Index) *Allocator {
	return &Allocator{index: index}
}

// Allocate draws random candidates until one is unused and returns it.
// The candidate is not reserved; callers insert it inside the same store
// transaction to keep allocation and assignment atomic.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code := randomCode()
		exists, err := a.index.BarcodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check barcode %s: %w", code, err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrAllocationExhausted
}

func randomCode() string {
	buf := make([]byte, 0, len(prefix)+codeLen)
	buf = append(buf, prefix...)
	for i := 0; i < codeLen; i++ {
		buf = append(buf, alphabet[rand.Intn(len(alphabet))])
	}
	return string(buf)
}
