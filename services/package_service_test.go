package services

import (
	"context"
	"testing"

	"studio/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageCreateGeneratesSequentialIDs(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	first, err := service.Create(&dto.PackageCreateRequest{Name: "Gói cưới cơ bản", Category: "wedding", Price: 5000000}, nil)
	require.NoError(t, err)
	assert.Equal(t, "PKG00001", first.PackageID)
	assert.True(t, first.IsActive)

	second, err := service.Create(&dto.PackageCreateRequest{Name: "Gói chân dung", Category: "portrait", Price: 1500000}, nil)
	require.NoError(t, err)
	assert.Equal(t, "PKG00002", second.PackageID)
}

func TestPackageCreateRejectsInvalidCategory(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	_, err := service.Create(&dto.PackageCreateRequest{Name: "Gói lạ", Category: "food"}, nil)
	require.Error(t, err)
}

func TestPackageDeleteIsSoft(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	pkg, err := service.Create(&dto.PackageCreateRequest{Name: "Gói cưới cơ bản", Category: "wedding", Price: 5000000}, nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(pkg.ID))

	stored, err := service.GetByID(pkg.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	packages, err := service.GetByCategory("wedding")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestPackageIncrementPopularity(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	pkg, err := service.Create(&dto.PackageCreateRequest{Name: "Gói cưới cơ bản", Category: "wedding", Price: 5000000}, nil)
	require.NoError(t, err)

	pkg, err = service.IncrementPopularity(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, pkg.PopularityScore)

	pkg, err = service.IncrementPopularity(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, pkg.PopularityScore)
}

func TestPackageGetPopularOrdersByScore(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	_, err := service.Create(&dto.PackageCreateRequest{Name: "Gói ít chọn", Category: "wedding", Price: 5000000}, nil)
	require.NoError(t, err)
	hot, err := service.Create(&dto.PackageCreateRequest{Name: "Gói hot", Category: "wedding", Price: 8000000}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = service.IncrementPopularity(hot.ID)
		require.NoError(t, err)
	}

	packages, err := service.GetPopular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, hot.ID, packages[0].ID)
}

func TestParsePackageCategory(t *testing.T) {
	assert.Equal(t, "wedding", parsePackageCategory("đám cưới"))
	assert.Equal(t, "event", parsePackageCategory("sự kiện"))
	assert.Equal(t, "", parsePackageCategory("xyz qqq"))
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, nameSimilarity("goi cuoi", "goi cuoi"))
	assert.Equal(t, 1.0, nameSimilarity("", ""))
	assert.InDelta(t, 0.75, nameSimilarity("abcd", "abxd"), 1e-9)
}

func TestPackageSearchByName(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	_, err := service.Create(&dto.PackageCreateRequest{Name: "Album Basic", Category: "portrait", Price: 1500000}, nil)
	require.NoError(t, err)
	_, err = service.Create(&dto.PackageCreateRequest{Name: "Studio Premium", Category: "portrait", Price: 3000000}, nil)
	require.NoError(t, err)

	result, err := service.Search("basic")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Album Basic", result.Items[0].Name)
	assert.Equal(t, 1, result.Total)
}

func TestPackageListFilters(t *testing.T) {
	service := NewPackageService(newTestDB(t), nil)

	_, err := service.Create(&dto.PackageCreateRequest{Name: "Gói cưới cơ bản", Category: "wedding", Price: 5000000}, nil)
	require.NoError(t, err)
	_, err = service.Create(&dto.PackageCreateRequest{Name: "Gói chân dung", Category: "portrait", Price: 1500000}, nil)
	require.NoError(t, err)

	minPrice := 2000000.0
	packages, total, err := service.List(&dto.PackageFilter{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, packages, 1)
	assert.Equal(t, "Gói cưới cơ bản", packages[0].Name)

	packages, total, err = service.List(&dto.PackageFilter{Category: "portrait"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, packages, 1)
	assert.Equal(t, "Gói chân dung", packages[0].Name)
}
