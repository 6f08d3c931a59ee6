package services

import (
	"testing"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/stretchr/testify/require"
)

func seedCrisis(t *testing.T, svc *CrisisService) {
	t.Helper()
	for _, r := range []models.CrisisResource{
		{Title: "US Lifeline", Category: "hotline", Region: "us", Priority: 10, IsVerified: true},
		{Title: "US Text Line", Category: "text", Region: "us", Priority: 9, IsVerified: true},
		{Title: "US Unverified Hotline", Category: "hotline", Region: "us", Priority: 9, IsVerified: false},
		{Title: "Global Directory", Category: "local", Region: "global", Priority: 8, IsVerified: true},
		{Title: "UK Hotline", Category: "hotline", Region: "uk", Priority: 9, IsVerified: true},
	} {
		r := r
		require.NoError(t, svc.Create(&r))
	}
}

func TestCrisisList_RegionIncludesGlobal(t *testing.T) {
	svc := NewCrisisService(newTestDB(t))
	seedCrisis(t, svc)

	resources, err := svc.List("", "us")
	require.NoError(t, err)
	require.Len(t, resources, 4)
	for _, r := range resources {
		require.Contains(t, []string{"us", "global"}, r.Region)
	}

	// priority 10 before 9, verified before unverified at equal priority
	require.Equal(t, "US Lifeline", resources[0].Title)
	require.Equal(t, "US Text Line", resources[1].Title)
	require.Equal(t, "US Unverified Hotline", resources[2].Title)
	require.Equal(t, "Global Directory", resources[3].Title)
}

func TestCrisisList_CategoryFilter(t *testing.T) {
	svc := NewCrisisService(newTestDB(t))
	seedCrisis(t, svc)

	resources, err := svc.List("hotline", "")
	require.NoError(t, err)
	require.Len(t, resources, 3)
	for _, r := range resources {
		require.Equal(t, "hotline", r.Category)
	}
}

func TestCrisisEmergency_HighPriorityCapped(t *testing.T) {
	svc := NewCrisisService(newTestDB(t))
	seedCrisis(t, svc)

	resources, err := svc.Emergency("us", 2)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	require.Equal(t, "US Lifeline", resources[0].Title)
	require.GreaterOrEqual(t, resources[1].Priority, 9)
}

func TestCrisisSearch(t *testing.T) {
	svc := NewCrisisService(newTestDB(t))
	seedCrisis(t, svc)

	resources, err := svc.Search("Text")
	require.NoError(t, err)
	require.Len(t, resources, 1)
	require.Equal(t, "US Text Line", resources[0].Title)
}

func TestCrisisLogAccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewCrisisService(db)
	seedCrisis(t, svc)

	var res models.CrisisResource
	require.NoError(t, db.Where("title = ?", "US Lifeline").First(&res).Error)

	require.NoError(t, svc.LogAccess(1, &res.ID, "called"))
	require.NoError(t, svc.LogAccess(1, nil, "viewed"))

	err := svc.LogAccess(1, nil, "")
	require.ErrorIs(t, err, ErrValidation)

	missing := uint(9999)
	err = svc.LogAccess(1, &missing, "called")
	require.ErrorIs(t, err, ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&models.CrisisAccessLog{}).Count(&n).Error)
	require.EqualValues(t, 2, n)
}

func TestCrisisAdmin_UpdateDelete(t *testing.T) {
	svc := NewCrisisService(newTestDB(t))
	seedCrisis(t, svc)

	_, err := svc.Update(9999, &models.CrisisResource{Title: "x"})
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCrisisSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCrisisService(db)

	require.NoError(t, svc.Seed())
	var first int64
	require.NoError(t, db.Model(&models.CrisisResource{}).Count(&first).Error)
	require.Greater(t, first, int64(0))

	require.NoError(t, svc.Seed())
	var second int64
	require.NoError(t, db.Model(&models.CrisisResource{}).Count(&second).Error)
	require.Equal(t, first, second)
}
