package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Tier Catalog Tests
// =============================================================================

// TestIssueTiers checks the frozen set lands in state with full remaining.
func TestIssueTiers(t *testing.T) {
	setupEngine(t)
	mockRegistry().SetController(1, ownerAddr)

	as(ownerAddr)
	ret := IssueTiers(strptr("1|10,5,1|100,200,400|4,2,1"))
	require.Equal(t, "issued|prj:1", *ret)
	require.Equal(t, uint64(3), tierCount(1))

	top := loadTier(1, 0)
	assert.Equal(t, FloatToAmount(10), top.Fee)
	assert.Equal(t, uint64(100), top.Capacity)
	assert.Equal(t, uint64(100), top.Remaining)
	assert.Equal(t, uint64(4), top.Multiplier)

	bottom := loadTier(1, 2)
	assert.Equal(t, uint64(400), bottom.Remaining)
	assert.Equal(t, uint64(1), bottom.Multiplier)
}

// TestIssueValidation walks the issue bounds one by one.
func TestIssueValidation(t *testing.T) {
	setupEngine(t)
	mockRegistry().SetController(1, ownerAddr)
	as(ownerAddr)

	expectRevert(t, ErrSizeMismatch, func() {
		IssueTiers(strptr("1|10,5|100,200,400|4,2,1"))
	})
	expectRevert(t, ErrBadCapacity, func() {
		IssueTiers(strptr("1|10,5,1|100,0,400|4,2,1"))
	})
	// max fee is 1000 hive per tier
	expectRevert(t, ErrBadFee, func() {
		IssueTiers(strptr("1|1001,5,1|100,200,400|4,2,1"))
	})
	expectRevert(t, ErrMultiplierNotMatch, func() {
		IssueTiers(strptr("1|10,5,1|100,200,400|4,0,1"))
	})
}

// TestIssueFrozenWhileCycleRuns checks the template cannot change under an
// active cycle but may be replaced between cycles.
func TestIssueFrozenWhileCycleRuns(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	as(ownerAddr)
	expectRevert(t, ErrBadOperationPeriod, func() {
		IssueTiers(strptr("1|20,10|50,100|2,1"))
	})

	advanceDays(31)
	as(ownerAddr)
	ret := IssueTiers(strptr("1|20,10|50,100|2,1"))
	require.Equal(t, "issued|prj:1", *ret)
	assert.Equal(t, uint64(2), tierCount(1))
}

// TestIssueNeedsController checks strangers cannot issue for a project.
func TestIssueNeedsController(t *testing.T) {
	setupEngine(t)
	mockRegistry().SetController(1, ownerAddr)

	as(aliceAddr)
	expectRevert(t, ErrUnAuthorized, func() {
		IssueTiers(strptr("1|10,5,1|100,200,400|4,2,1"))
	})
}

// TestDecrementRemaining checks a cycle's capacity only moves down and
// bottoms out, without touching the project template.
func TestDecrementRemaining(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t) // cycle 1 snapshots the template

	decrementRemaining(1, 0, 30)
	assert.Equal(t, uint64(70), loadCycleTier(1, 0).Remaining)
	assert.Equal(t, uint64(100), loadTier(1, 0).Remaining)

	decrementRemaining(1, 0, 70)
	assert.Equal(t, uint64(0), loadCycleTier(1, 0).Remaining)

	expectRevert(t, ErrInsufficientBalance, func() {
		decrementRemaining(1, 0, 1)
	})
	expectRevert(t, ErrTierUnknown, func() {
		decrementRemaining(1, 9, 1)
	})
}
