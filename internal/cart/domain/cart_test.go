package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("repeated adds accumulate on one line", func(t *testing.T) {
		var lines Lines
		for i := 0; i < 5; i++ {
			lines = Merge(lines, a)
		}
		require.Equal(t, Lines{{ProductRef: a, Quantity: 5}}, lines)
	})

	t.Run("new product is appended", func(t *testing.T) {
		lines := Merge(Merge(Merge(nil, a), a), b)
		require.Equal(t, Lines{{ProductRef: a, Quantity: 2}, {ProductRef: b, Quantity: 1}}, lines)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := Lines{{ProductRef: a, Quantity: 1}}
		_ = Merge(in, a)
		require.Equal(t, 1, in[0].Quantity)
	})
}

func TestSetQuantity(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	base := Lines{{ProductRef: a, Quantity: 2}, {ProductRef: b, Quantity: 1}}

	t.Run("replaces quantity", func(t *testing.T) {
		out, err := SetQuantity(base, a, 7)
		require.NoError(t, err)
		require.Equal(t, Lines{{ProductRef: a, Quantity: 7}, {ProductRef: b, Quantity: 1}}, out)
		require.Equal(t, 2, base[0].Quantity)
	})

	t.Run("zero equals remove", func(t *testing.T) {
		out, err := SetQuantity(base, a, 0)
		require.NoError(t, err)
		require.Equal(t, Remove(base, &a), out)
	})

	t.Run("negative removes", func(t *testing.T) {
		out, err := SetQuantity(base, b, -3)
		require.NoError(t, err)
		require.Equal(t, Lines{{ProductRef: a, Quantity: 2}}, out)
	})

	t.Run("zero on absent product is a no-op", func(t *testing.T) {
		out, err := SetQuantity(base, uuid.New(), 0)
		require.NoError(t, err)
		require.Equal(t, base, out)
	})

	t.Run("positive on absent product fails", func(t *testing.T) {
		out, err := SetQuantity(base, uuid.New(), 3)
		require.ErrorIs(t, err, ErrProductNotInCart)
		require.Equal(t, base, out)
	})

	t.Run("above the limit fails", func(t *testing.T) {
		out, err := SetQuantity(base, a, MaxQuantity+1)
		require.ErrorIs(t, err, ErrQuantityLimit)
		require.Equal(t, base, out)

		out, err = SetQuantity(base, a, MaxQuantity)
		require.NoError(t, err)
		require.Equal(t, MaxQuantity, out.Quantity(a))
	})
}

func TestQuantityLimit(t *testing.T) {
	a := uuid.New()
	full := Lines{{ProductRef: a, Quantity: MaxQuantity}}

	require.True(t, Lines{{ProductRef: a, Quantity: MaxQuantity - 1}}.CanAdd(a))
	require.False(t, full.CanAdd(a))
	require.True(t, full.CanAdd(uuid.New()))
	require.NoError(t, full.Validate())
	require.ErrorIs(t, Lines{{ProductRef: a, Quantity: MaxQuantity + 1}}.Validate(), ErrInvalidLines)
}

func TestRemove(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	base := Lines{{ProductRef: a, Quantity: 2}, {ProductRef: b, Quantity: 1}}

	require.Equal(t, Lines{{ProductRef: b, Quantity: 1}}, Remove(base, &a))
	require.Equal(t, base, Remove(base, ptr(uuid.New())))
	require.Empty(t, Remove(base, nil))
	require.NotNil(t, Remove(base, nil))
	require.Len(t, base, 2)
}

func TestScenario(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	lines := Merge(Merge(Merge(Lines{}, a), a), b)
	require.Equal(t, Lines{{ProductRef: a, Quantity: 2}, {ProductRef: b, Quantity: 1}}, lines)

	lines, err := SetQuantity(lines, a, 0)
	require.NoError(t, err)
	require.Equal(t, Lines{{ProductRef: b, Quantity: 1}}, lines)

	require.Empty(t, Remove(lines, nil))
}

func TestLinesHelpers(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	lines := Lines{{ProductRef: a, Quantity: 2}, {ProductRef: b, Quantity: 3}}

	require.Equal(t, 2, lines.Quantity(a))
	require.Equal(t, 0, lines.Quantity(uuid.New()))
	require.Equal(t, 5, lines.TotalQuantity())
	require.Equal(t, []uuid.UUID{a, b}, lines.ProductRefs())
	require.NoError(t, lines.Validate())

	require.ErrorIs(t, Lines{{ProductRef: a, Quantity: 0}}.Validate(), ErrInvalidLines)
	require.ErrorIs(t, Lines{{ProductRef: a, Quantity: 1}, {ProductRef: a, Quantity: 1}}.Validate(), ErrInvalidLines)
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }
