package gorm_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	kdb "github.com/psmphuket/portal/pkg/db"
)

func TestPropertyRegister(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	props := database.Properties()

	prop := &kdb.Property{
		Title:    "Luxury Pool Villa in Rawai",
		Location: "Rawai",
		Price:    18_500_000,
		Bedrooms: 4, Bathrooms: 5, AreaSqm: 420,
		Images: datatypes.JSONSlice[string]{"/img/villa-1.jpg"},
		Type:   kdb.ForSale,
	}
	require.NoError(t, props.Register(ctx, prop))

	assert.Equal(t, "luxury-pool-villa-in-rawai", prop.Slug)
	assert.Regexp(t, regexp.MustCompile(`^PSM-\d{5}$`), prop.ListingNumber)
	assert.Equal(t, kdb.PropertyActive, prop.Status)

	got, err := props.GetBySlug(ctx, prop.Slug)
	require.NoError(t, err)
	assert.Equal(t, prop.ListingNumber, got.ListingNumber)
}

func TestPropertyFind(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	props := database.Properties()

	for _, p := range []*kdb.Property{
		{Title: "Rawai Villa", Location: "Rawai", Price: 18_000_000, Bedrooms: 4, Type: kdb.ForSale},
		{Title: "Patong Condo", Location: "Patong", Price: 4_500_000, Bedrooms: 1, Type: kdb.ForSale},
		{Title: "Kamala Apartment", Location: "Kamala", Price: 35_000, Bedrooms: 2, Type: kdb.ForRent, Featured: true},
	} {
		require.NoError(t, props.Register(ctx, p))
	}

	t.Run("type filter", func(t *testing.T) {
		found, total, err := props.Find(ctx, kdb.PropertyFindQuery{Type: kdb.ForRent})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "Kamala Apartment", found[0].Title)
	})

	t.Run("price band", func(t *testing.T) {
		_, total, err := props.Find(ctx, kdb.PropertyFindQuery{
			MinPrice: 1_000_000, MaxPrice: 10_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("minimum bedrooms", func(t *testing.T) {
		_, total, err := props.Find(ctx, kdb.PropertyFindQuery{Bedrooms: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("featured first", func(t *testing.T) {
		found, _, err := props.Find(ctx, kdb.PropertyFindQuery{})
		require.NoError(t, err)
		require.NotEmpty(t, found)
		assert.True(t, found[0].Featured)
	})

	t.Run("location match", func(t *testing.T) {
		found, total, err := props.Find(ctx, kdb.PropertyFindQuery{Location: "Patong"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "Patong Condo", found[0].Title)
	})
}

func TestPropertyStatusSwap(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	props := database.Properties()

	prop := &kdb.Property{Title: "Bang Tao Townhouse", Price: 7_000_000, Type: kdb.ForSale}
	require.NoError(t, props.Register(ctx, prop))

	got, err := props.SetStatus(ctx, prop.ID, kdb.PropertySold)
	require.NoError(t, err)
	assert.Equal(t, kdb.PropertySold, got.Status)

	_, err = props.SetStatus(ctx, "00000000-0000-0000-0000-000000000000", kdb.PropertySold)
	assert.ErrorIs(t, err, kdb.ErrMissing)
}
