package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsInvalid(t *testing.T) {
	var sc Context
	assert.False(t, sc.IsValid())

	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestZeroValueCannotBindAsQueryParam(t *testing.T) {
	// An invalid scope must never produce the same NULL argument as the
	// administrative scope.
	var sc Context
	assert.Panics(t, func() { sc.Param() })
}

func TestScopedVariant(t *testing.T) {
	sc := Scoped(42)
	assert.True(t, sc.IsValid())
	assert.False(t, sc.IsUnscoped())

	id, ok := sc.TenantID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), sc.Param())
}

func TestUnscopedVariant(t *testing.T) {
	sc := Unscoped()
	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsUnscoped())

	_, ok := sc.TenantID()
	assert.False(t, ok)
	assert.Nil(t, sc.Param())
}

func TestContextRoundTrip(t *testing.T) {
	ctx := NewContext(context.Background(), Scoped(7))
	sc, err := FromContext(ctx)
	assert.NoError(t, err)

	id, ok := sc.TenantID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestInvalidScopeInContextIsRejected(t *testing.T) {
	ctx := NewContext(context.Background(), Context{})
	_, err := FromContext(ctx)
	assert.ErrorIs(t, err, ErrNoTenant)
}
