package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Stake & Allocation Ledger Tests
// =============================================================================

// TestStakePurchaseAppends checks entries accumulate instead of overwriting.
func TestStakePurchaseAppends(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	stakePurchase(1, aliceAddr, []uint64{0, 2}, []uint64{2, 10})
	stakePurchase(1, aliceAddr, []uint64{2}, []uint64{5})

	entries := loadStakeEntries(1, aliceAddr)
	require.Len(t, entries, 3)
	assert.Equal(t, StakeEntry{Tier: 0, Amount: 2, Weight: 8}, entries[0])
	assert.Equal(t, StakeEntry{Tier: 2, Amount: 10, Weight: 1}, entries[1])
	assert.Equal(t, StakeEntry{Tier: 2, Amount: 5, Weight: 1}, entries[2])

	assert.Equal(t, uint64(2), tierStakedOf(1, 0))
	assert.Equal(t, uint64(15), tierStakedOf(1, 2))
}

// TestUserAllocationWeights checks allocation is amount times curve weight.
func TestUserAllocationWeights(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	stakePurchase(1, aliceAddr, []uint64{0, 1, 2}, []uint64{2, 3, 10})
	alloc := userAllocation(1, aliceAddr)
	assert.Equal(t, uint64(16), alloc[0]) // 2 * weight 8
	assert.Equal(t, uint64(6), alloc[1])  // 3 * weight 2
	assert.Equal(t, uint64(10), alloc[2]) // 10 * weight 1

	counts := userPassCounts(1, aliceAddr)
	assert.Equal(t, uint64(2), counts[0])
	assert.Equal(t, uint64(3), counts[1])
	assert.Equal(t, uint64(10), counts[2])
}

// TestStakeUnknownTierFails checks staking outside the curve reverts.
func TestStakeUnknownTierFails(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	expectRevert(t, ErrTierUnknown, func() {
		stakePurchase(1, aliceAddr, []uint64{7}, []uint64{1})
	})
	expectRevert(t, ErrBadPayload, func() {
		stakePurchase(1, aliceAddr, []uint64{0}, []uint64{0})
	})
}

// TestAllocationQueryExport checks the tier:allocation wire shape.
func TestAllocationQueryExport(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	stakePurchase(1, aliceAddr, []uint64{0, 2}, []uint64{2, 10})
	as(aliceAddr)
	ret := GetUserAllocation(strptr("1"))
	assert.Equal(t, "0:16;2:10", *ret)
}

// TestAirdropSlotOneShot checks the per-user flag and the per-tier capacity.
func TestAirdropSlotOneShot(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	pass := loadAuctionedPass(1, 0) // community capacity 5

	claimAirdropSlot(1, 0, aliceAddr, pass)
	assert.Equal(t, uint64(1), airdropCountOf(1, 0))
	assert.True(t, airdropClaimedOf(1, aliceAddr))

	expectRevert(t, ErrAlreadyClaimed, func() {
		claimAirdropSlot(1, 0, aliceAddr, pass)
	})

	// exhaust the remaining four slots with fresh users
	for _, user := range []string{"hive:u1", "hive:u2", "hive:u3", "hive:u4"} {
		claimAirdropSlot(1, 0, AddressFromString(user), pass)
	}
	assert.Equal(t, uint64(5), airdropCountOf(1, 0))

	expectRevert(t, ErrNoCommunityTicket, func() {
		claimAirdropSlot(1, 0, bobAddr, pass)
	})
}
