package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPackageID(t *testing.T) {
	db := newTestDB(t)

	id, err := NextPackageID(db)
	require.NoError(t, err)
	assert.Equal(t, "PKG00001", id)

	createTestPackage(t, db, "Gói cưới cơ bản", 5000000)

	id, err = NextPackageID(db)
	require.NoError(t, err)
	assert.Equal(t, "PKG00002", id)
}

func TestNextPartnerID(t *testing.T) {
	db := newTestDB(t)

	id, err := NextPartnerID(db)
	require.NoError(t, err)
	assert.Equal(t, "PTN00001", id)
}

func TestNextProjectCode(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	code, err := NextProjectCode(db, now)
	require.NoError(t, err)
	assert.Equal(t, "PRJ26030001", code)

	createTestProject(t, db, code, now, "pending", 5000000)

	code, err = NextProjectCode(db, now)
	require.NoError(t, err)
	assert.Equal(t, "PRJ26030002", code)
}
