package contract

import (
	"passbooth_dao/sdk"
)

// Stake & allocation ledger. Purchases append weighted entries per
// (user, cycle); allocation is always derived, never stored.

// stakePurchase records a user's purchase across tiers. Weights come from
// the cycle's frozen pricing curve, so later curve reads cannot drift.
func stakePurchase(cycleID uint64, user sdk.Address, tiers []uint64, amounts []uint64) {
	entries := make([]StakeEntry, 0, len(tiers))
	for i, tier := range tiers {
		if amounts[i] == 0 {
			continue
		}
		pass := loadAuctionedPass(cycleID, tier)
		entries = append(entries, StakeEntry{
			Tier:   tier,
			Amount: amounts[i],
			Weight: pass.Weight,
		})
		addTierStaked(cycleID, tier, amounts[i])
	}
	if len(entries) == 0 {
		fail(ErrBadPayload, "nothing to stake")
	}
	appendStakeEntries(cycleID, user, entries)
}

// userAllocation sums weighted stake per tier for one user in one cycle.
// Allocation of a tier is sum(amount * weight) over that user's entries.
func userAllocation(cycleID uint64, user sdk.Address) map[uint64]uint64 {
	alloc := map[uint64]uint64{}
	for _, e := range loadStakeEntries(cycleID, user) {
		alloc[e.Tier] = addUint64(alloc[e.Tier], mulUint64(e.Amount, e.Weight, "allocation"), "allocation")
	}
	return alloc
}

// userPassCounts sums plain pass counts per tier for one user in one cycle.
func userPassCounts(cycleID uint64, user sdk.Address) map[uint64]uint64 {
	counts := map[uint64]uint64{}
	for _, e := range loadStakeEntries(cycleID, user) {
		counts[e.Tier] = addUint64(counts[e.Tier], e.Amount, "pass count")
	}
	return counts
}

// claimAirdropSlot reserves one community pass of the tier for the user.
// One shot per user per cycle; capacity-bounded per tier.
func claimAirdropSlot(cycleID uint64, tier uint64, user sdk.Address, pass *AuctionedPass) {
	if airdropClaimedOf(cycleID, user) {
		fail(ErrAlreadyClaimed, user.String()+" already took the community airdrop")
	}
	if airdropCountOf(cycleID, tier) >= pass.CommunityAmount {
		fail(ErrNoCommunityTicket, "community passes of tier "+UInt64ToString(tier)+" are gone")
	}
	setAirdropClaimed(cycleID, user)
	addAirdropCount(cycleID, tier, 1)
}
