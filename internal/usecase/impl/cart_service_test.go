package impl

import (
	"context"
	"testing"

	"biaresh/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddLineMergesIdenticalLines(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	product := testProducts()[0]

	for range 5 {
		cart.AddLine(ctx, product, entity.Variant{"size": "100g"}, false)
	}

	lines := cart.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, entity.CartLineID(product.ID, entity.Variant{"size": "100g"}), lines[0].ID)
}

func TestCartService_AddLineScenario(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	product := testProducts()[0]

	cart.AddLine(ctx, product, nil, true)

	summary := cart.Summary(ctx)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 1, summary.Lines[0].Quantity)
	assert.Equal(t, product.Price, summary.TotalPrice)
	assert.True(t, summary.DrawerOpen)

	cart.AddLine(ctx, product, entity.Variant{}, false)

	lines := cart.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2*product.Price, cart.TotalPrice(ctx))
	assert.Equal(t, 2, cart.TotalItemCount(ctx))
}

func TestCartService_LinesDoNotAliasCallerData(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	product := testProducts()[2]
	variant := entity.Variant{"size": "50 ml"}
	lineID := entity.CartLineID(product.ID, variant)

	added := cart.AddLine(ctx, product, variant, false)
	variant["size"] = "100 ml"
	product.Images[0] = "/img/changed.jpg"
	added.Variant["size"] = "200 ml"

	lines := cart.Lines(ctx)
	require.Len(t, lines, 1)
	lines[0].Variant["size"] = "300 ml"
	lines[0].Product.Benefits = append(lines[0].Product.Benefits, "changed")

	summary := cart.Summary(ctx)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, lineID, summary.Lines[0].ID)
	assert.Equal(t, entity.Variant{"size": "50 ml"}, summary.Lines[0].Variant)
	assert.Equal(t, []string{"/img/almond.jpg"}, summary.Lines[0].Product.Images)
	assert.Empty(t, summary.Lines[0].Product.Benefits)
	assert.True(t, cart.SetQuantity(ctx, lineID, 2))
}

func TestCartService_VariantsAreDistinctLines(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	product := testProducts()[2]

	first := cart.AddLine(ctx, product, entity.Variant{"size": "30ml"}, false)
	second := cart.AddLine(ctx, product, entity.Variant{"size": "60ml"}, false)
	cart.AddLine(ctx, testProducts()[0], nil, false)
	cart.AddLine(ctx, product, entity.Variant{"size": "30ml"}, false)

	lines := cart.Lines(ctx)
	require.Len(t, lines, 3)
	assert.Equal(t, first.ID, lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, second.ID, lines[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCartService_SetQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	cfg := testConfig()
	products := testProducts()

	viaQuantity := NewCartService(discardLogger(), repo, cfg)
	line := viaQuantity.AddLine(ctx, products[0], nil, false)
	viaQuantity.AddLine(ctx, products[1], nil, false)
	assert.True(t, viaQuantity.SetQuantity(ctx, line.ID, 0))

	viaRemove := NewCartService(discardLogger(), newMemoryRepo(t), cfg)
	viaRemove.AddLine(ctx, products[0], nil, false)
	viaRemove.AddLine(ctx, products[1], nil, false)
	assert.True(t, viaRemove.RemoveLine(ctx, line.ID))

	assert.Equal(t, viaRemove.Lines(ctx), viaQuantity.Lines(ctx))
	assert.False(t, viaRemove.RemoveLine(ctx, line.ID))
	assert.False(t, viaQuantity.SetQuantity(ctx, "missing", 3))
}

func TestCartService_SetQuantityKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	product := testProducts()[1]

	line := cart.AddLine(ctx, product, entity.Variant{"scent": "saffron"}, false)
	require.True(t, cart.SetQuantity(ctx, line.ID, 7))

	lines := cart.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, line.ID, lines[0].ID)
	assert.Equal(t, product, lines[0].Product)
	assert.Equal(t, entity.Variant{"scent": "saffron"}, lines[0].Variant)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestCartService_TotalsRecomputedAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())
	products := testProducts()

	steps := []func(){
		func() { cart.AddLine(ctx, products[0], nil, false) },
		func() { cart.AddLine(ctx, products[3], nil, false) },
		func() { cart.AddLine(ctx, products[0], nil, false) },
		func() { cart.SetQuantity(ctx, entity.CartLineID(products[3].ID, nil), 4) },
		func() { cart.RemoveLine(ctx, entity.CartLineID(products[0].ID, nil)) },
		func() { cart.AddLine(ctx, products[2], entity.Variant{"size": "60ml"}, false) },
	}

	for _, step := range steps {
		step()

		var wantPrice int64
		var wantItems int
		for _, line := range cart.Lines(ctx) {
			wantPrice += line.Product.Price * int64(line.Quantity)
			wantItems += line.Quantity
		}
		assert.Equal(t, wantPrice, cart.TotalPrice(ctx))
		assert.Equal(t, wantItems, cart.TotalItemCount(ctx))
	}
}

func TestCartService_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	cfg := testConfig()

	before := NewCartService(discardLogger(), repo, cfg)
	before.AddLine(ctx, testProducts()[0], nil, true)
	before.AddLine(ctx, testProducts()[2], entity.Variant{"size": "30ml"}, false)

	after := NewCartService(discardLogger(), repo, cfg)
	assert.Equal(t, before.Lines(ctx), after.Lines(ctx))
	assert.False(t, after.DrawerOpen())
}

func TestCartService_ClearRemovesSlot(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	cfg := testConfig()
	cart := NewCartService(discardLogger(), repo, cfg)

	cart.AddLine(ctx, testProducts()[0], nil, false)
	cart.Clear(ctx)

	assert.Empty(t, cart.Lines(ctx))
	assert.Zero(t, cart.TotalPrice(ctx))
	requireSlotAbsent(t, repo, cfg.Slots.Cart)
}

func TestCartService_DrawerFlag(t *testing.T) {
	cart := NewCartService(discardLogger(), newMemoryRepo(t), testConfig())

	assert.False(t, cart.DrawerOpen())
	cart.SetDrawerOpen(true)
	assert.True(t, cart.DrawerOpen())
	cart.SetDrawerOpen(false)
	assert.False(t, cart.DrawerOpen())
}
