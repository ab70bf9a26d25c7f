package softdelete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatedesk/internal/models"
	"estatedesk/internal/softdelete"
	"estatedesk/internal/testutil"
)

func TestDeleteAndFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	kept := testutil.CreateTestInvestor(t, db, 10)
	soft := testutil.CreateTestInvestor(t, db, 20)
	hard := testutil.CreateTestInvestor(t, db, 30)

	n, err := softdelete.Delete(db, &models.Investor{Base: models.Base{ID: soft.ID}}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = softdelete.Delete(db, &models.Investor{Base: models.Base{ID: hard.ID}}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	count := func(mode softdelete.Mode) []string {
		var ids []string
		require.NoError(t, db.Model(&models.Investor{}).Scopes(softdelete.Filter(mode)).Order("code").Pluck("id", &ids).Error)
		return ids
	}

	assert.Equal(t, []string{kept.ID}, count(softdelete.Active))
	assert.Equal(t, []string{soft.ID}, count(softdelete.Deleted))
	assert.Equal(t, []string{kept.ID, soft.ID}, count(softdelete.All))
}

func TestRestore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	investor := testutil.CreateTestInvestor(t, db, 10)
	_, err := softdelete.Delete(db, &models.Investor{Base: models.Base{ID: investor.ID}}, false)
	require.NoError(t, err)

	n, err := softdelete.Restore(db, &models.Investor{}, investor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var found models.Investor
	require.NoError(t, db.First(&found, "id = ?", investor.ID).Error)

	n, err = softdelete.Restore(db, &models.Investor{}, investor.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "restoring an active record is a no-op")
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, softdelete.All, softdelete.ModeFor(true))
	assert.Equal(t, softdelete.Active, softdelete.ModeFor(false))
}
