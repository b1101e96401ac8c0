package ability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

type stubAbility struct {
	key     string
	execute func(ctx context.Context, inv *Invocation) (bool, error)
}

func (a *stubAbility) Key() string { return a.key }

func (a *stubAbility) Execute(ctx context.Context, inv *Invocation) (bool, error) {
	if a.execute == nil {
		return true, nil
	}
	return a.execute(ctx, inv)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	desc := head.AbilityDescriptor{Type: "arrow_spread", DisplayName: "Arrow Spread", CooldownSeconds: 3}
	require.NoError(t, r.Register(desc, &stubAbility{key: "arrow_spread"}))

	reg, exists := r.Lookup("arrow_spread")
	require.True(t, exists)
	assert.Equal(t, "Arrow Spread", reg.Descriptor.DisplayName)
	assert.Equal(t, 3, reg.Descriptor.CooldownSeconds)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	desc := head.AbilityDescriptor{Type: "sonic_boom"}
	require.NoError(t, r.Register(desc, &stubAbility{key: "sonic_boom"}))

	err := r.Register(desc, &stubAbility{key: "sonic_boom"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))

	// The original registration survives
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_RejectsKeyMismatch(t *testing.T) {
	r := NewRegistry()

	err := r.Register(head.AbilityDescriptor{Type: "dash"}, &stubAbility{key: "sprint"})
	require.Error(t, err)

	_, exists := r.Lookup("dash")
	assert.False(t, exists)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()

	_, exists := r.Lookup("nope")
	assert.False(t, exists)
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(head.AbilityDescriptor{Type: "a"}, &stubAbility{key: "a"}))
	require.NoError(t, r.Register(head.AbilityDescriptor{Type: "b"}, &stubAbility{key: "b"}))

	assert.ElementsMatch(t, []string{"a", "b"}, r.List())
}
