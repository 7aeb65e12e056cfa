package contract

import "passbooth_dao/sdk"

// appendStakeEntries adds the new purchase entries to the user's per-cycle
// record. Entries are never merged or rewritten; the orchestrator calls this
// exactly once per contribution.
func appendStakeEntries(cycleID uint64, user sdk.Address, entries []StakeEntry) {
	key := stakeKey(cycleID, user)
	list := loadStakeEntries(cycleID, user)
	list = append(list, entries...)
	sdk.StateSetObject(key, encodeRecord(stakeEntryList{Entries: list}, "stake entries"))
}

// loadStakeEntries returns all entries a user staked into the cycle.
func loadStakeEntries(cycleID uint64, user sdk.Address) []StakeEntry {
	ptr := sdk.StateGetObject(stakeKey(cycleID, user))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var list stakeEntryList
	decodeRecord(*ptr, &list, "stake entries")
	return list.Entries
}

// addTierStaked bumps the cycle-wide staked pass count for a tier.
func addTierStaked(cycleID uint64, tier uint64, amount uint64) {
	key := tierStakedKey(cycleID, tier)
	setCount(key, getCount(key)+amount)
}

// tierStakedOf reads the cycle-wide staked pass count for a tier.
func tierStakedOf(cycleID uint64, tier uint64) uint64 {
	return getCount(tierStakedKey(cycleID, tier))
}

// claimedOf reports whether the user already reconciled this cycle.
func claimedOf(cycleID uint64, user sdk.Address) bool {
	ptr := sdk.StateGetObject(claimFlagKey(cycleID, user))
	return ptr != nil && *ptr == "1"
}

// setClaimed flips the one-shot pass-or-refund flag.
func setClaimed(cycleID uint64, user sdk.Address) {
	sdk.StateSetObject(claimFlagKey(cycleID, user), "1")
}

// airdropClaimedOf reports whether the user already took the community airdrop.
func airdropClaimedOf(cycleID uint64, user sdk.Address) bool {
	ptr := sdk.StateGetObject(airdropFlagKey(cycleID, user))
	return ptr != nil && *ptr == "1"
}

// setAirdropClaimed flips the one-shot airdrop flag.
func setAirdropClaimed(cycleID uint64, user sdk.Address) {
	sdk.StateSetObject(airdropFlagKey(cycleID, user), "1")
}

// airdropCountOf reads how many community passes a tier already handed out.
func airdropCountOf(cycleID uint64, tier uint64) uint64 {
	return getCount(airdropCountKey(cycleID, tier))
}

// addAirdropCount bumps the handed-out counter after a successful airdrop.
func addAirdropCount(cycleID uint64, tier uint64, amount uint64) {
	key := airdropCountKey(cycleID, tier)
	setCount(key, getCount(key)+amount)
}
