package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
	"github.com/Douai-hub/coffee/pkg/coffee/domain/service"
)

var (
	latte     = model.Product{ID: 1, Name: "Latte", PriceCents: 255, Image: "latte.jpg"}
	americano = model.Product{ID: 2, Name: "Americano", PriceCents: 200, Image: "americano.jpg"}
)

func setupCart(t *testing.T) (service.CartService, *mockCartRepository, *mockEventDispatcher) {
	repo := newMockCartRepository()
	dispatcher := &mockEventDispatcher{}
	cartService := service.NewCartService(repo, dispatcher)
	return cartService, repo, dispatcher
}

func TestAddItemMergesSameVariant(t *testing.T) {
	cartService, _, dispatcher := setupCart(t)
	ownerID := uuid.New()

	line, err := cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)
	assert.Equal(t, "1-Cold-M", line.LineID)
	assert.Equal(t, 1, line.Quantity)

	line, err = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	require.Len(t, dispatcher.events, 2)
	event := dispatcher.events[1].(model.ItemAddedToCart)
	assert.Equal(t, "Latte", event.ProductName)
	assert.Equal(t, model.Cold, event.Temperature)
	assert.Equal(t, model.SizeM, event.Size)
}

func TestAddItemDistinctVariantsGetDistinctLines(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	_, err := cartService.AddItem(ownerID, latte, model.Hot, model.SizeS)
	require.NoError(t, err)
	_, err = cartService.AddItem(ownerID, latte, model.Cold, model.SizeS)
	require.NoError(t, err)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1-Hot-S", lines[0].LineID)
	assert.Equal(t, "1-Cold-S", lines[1].LineID)
}

func TestAddItemRejectsInvalidVariant(t *testing.T) {
	cartService, _, dispatcher := setupCart(t)
	ownerID := uuid.New()

	_, err := cartService.AddItem(ownerID, latte, model.Temperature("Lukewarm"), model.SizeM)
	assert.ErrorIs(t, err, model.ErrInvalidVariant)

	_, err = cartService.AddItem(ownerID, latte, model.Cold, model.CupSize("XL"))
	assert.ErrorIs(t, err, model.ErrInvalidVariant)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, dispatcher.events)
}

func TestAddItemSnapshotsPriceAtAddTime(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	_, err := cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)

	// The catalog product changes after the first add. Merging must keep
	// the original snapshot.
	repriced := latte
	repriced.PriceCents = 999
	repriced.Name = "Latte Deluxe"
	_, err = cartService.AddItem(ownerID, repriced, model.Cold, model.SizeM)
	require.NoError(t, err)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(255), lines[0].PriceCents)
	assert.Equal(t, "Latte", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	line, err := cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)

	t.Run("Increment", func(t *testing.T) {
		require.NoError(t, cartService.UpdateQuantity(ownerID, line.LineID, 1))

		lines, _ := cartService.Lines(ownerID)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("Decrement to zero removes the line", func(t *testing.T) {
		require.NoError(t, cartService.UpdateQuantity(ownerID, line.LineID, -1))
		require.NoError(t, cartService.UpdateQuantity(ownerID, line.LineID, -1))

		lines, _ := cartService.Lines(ownerID)
		assert.Empty(t, lines)

		count, _ := cartService.ItemCount(ownerID)
		assert.Equal(t, 0, count)
	})

	t.Run("Unknown line is a no-op", func(t *testing.T) {
		require.NoError(t, cartService.UpdateQuantity(ownerID, "99-Hot-L", 1))

		lines, _ := cartService.Lines(ownerID)
		assert.Empty(t, lines)
	})
}

func TestUpdateQuantityFloorsAtZero(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	line, err := cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)
	_, err = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)

	// quantity 2, delta -5: the line goes away, never negative
	require.NoError(t, cartService.UpdateQuantity(ownerID, line.LineID, -5))

	lines, _ := cartService.Lines(ownerID)
	assert.Empty(t, lines)

	total, _ := cartService.TotalCents(ownerID)
	assert.Equal(t, int64(0), total)
}

func TestRemoveLine(t *testing.T) {
	cartService, _, dispatcher := setupCart(t)
	ownerID := uuid.New()

	line, err := cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)
	_, err = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	require.NoError(t, err)
	dispatcher.Reset()

	require.NoError(t, cartService.RemoveLine(ownerID, line.LineID))

	lines, _ := cartService.Lines(ownerID)
	assert.Empty(t, lines)

	require.Len(t, dispatcher.events, 1)
	_, ok := dispatcher.events[0].(model.CartLineRemoved)
	assert.True(t, ok)

	// Removing again is harmless.
	require.NoError(t, cartService.RemoveLine(ownerID, line.LineID))
}

func TestClear(t *testing.T) {
	cartService, _, dispatcher := setupCart(t)
	ownerID := uuid.New()

	_, _ = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	_, _ = cartService.AddItem(ownerID, americano, model.Hot, model.SizeS)
	dispatcher.Reset()

	require.NoError(t, cartService.Clear(ownerID))

	lines, _ := cartService.Lines(ownerID)
	assert.Empty(t, lines)
	count, _ := cartService.ItemCount(ownerID)
	assert.Equal(t, 0, count)

	require.Len(t, dispatcher.events, 1)
	_, ok := dispatcher.events[0].(model.CartCleared)
	assert.True(t, ok)
}

func TestTotalsMatchLinesAfterAnySequence(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	_, _ = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	_, _ = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	_, _ = cartService.AddItem(ownerID, americano, model.Hot, model.SizeS)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Latte", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Americano", lines[1].Name)
	assert.Equal(t, 1, lines[1].Quantity)

	total, err := cartService.TotalCents(ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(710), total) // 2*255 + 200

	count, err := cartService.ItemCount(ownerID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Mutate and re-derive: the reported total must always equal the sum
	// recomputed from the lines.
	require.NoError(t, cartService.UpdateQuantity(ownerID, lines[0].LineID, -1))
	require.NoError(t, cartService.UpdateQuantity(ownerID, lines[1].LineID, 3))

	lines, _ = cartService.Lines(ownerID)
	var derived int64
	for _, line := range lines {
		derived += line.PriceCents * int64(line.Quantity)
	}
	total, _ = cartService.TotalCents(ownerID)
	assert.Equal(t, derived, total)
}

func TestInsertionOrderSurvivesMerges(t *testing.T) {
	cartService, _, _ := setupCart(t)
	ownerID := uuid.New()

	_, _ = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)
	_, _ = cartService.AddItem(ownerID, americano, model.Hot, model.SizeS)
	_, _ = cartService.AddItem(ownerID, latte, model.Cold, model.SizeM)

	lines, err := cartService.Lines(ownerID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1-Cold-M", lines[0].LineID)
	assert.Equal(t, "2-Hot-S", lines[1].LineID)
}
