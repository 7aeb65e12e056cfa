package contract

import "passbooth_dao/sdk"

// saveTier writes one tier record of a project's frozen set.
func saveTier(projectID uint64, index uint64, tier *Tier) {
	sdk.StateSetObject(tierKey(projectID, index), encodeRecord(*tier, "tier"))
}

// loadTier fetches a tier, reverting with TierUnknown when out of range.
func loadTier(projectID uint64, index uint64) *Tier {
	ptr := sdk.StateGetObject(tierKey(projectID, index))
	if ptr == nil || *ptr == "" {
		fail(ErrTierUnknown, "tier "+UInt64ToString(index)+" unknown for project "+UInt64ToString(projectID))
	}
	var t Tier
	decodeRecord(*ptr, &t, "tier")
	return &t
}

// saveCycleTier writes one live tier instance of a cycle. Instances are
// snapshotted off the project template when the cycle is configured; only
// their Remaining moves afterwards.
func saveCycleTier(cycleID uint64, index uint64, tier *Tier) {
	sdk.StateSetObject(cycleTierKey(cycleID, index), encodeRecord(*tier, "cycle tier"))
}

// loadCycleTier fetches a cycle's tier instance, reverting with TierUnknown
// when out of range.
func loadCycleTier(cycleID uint64, index uint64) *Tier {
	ptr := sdk.StateGetObject(cycleTierKey(cycleID, index))
	if ptr == nil || *ptr == "" {
		fail(ErrTierUnknown, "tier "+UInt64ToString(index)+" unknown for cycle "+UInt64ToString(cycleID))
	}
	var t Tier
	decodeRecord(*ptr, &t, "cycle tier")
	return &t
}

// tierCount returns how many tiers a project issued, zero before issue.
func tierCount(projectID uint64) uint64 {
	return getCount(tierCountKey(projectID))
}

// setTierCount records the frozen set size once at issue time.
func setTierCount(projectID uint64, n uint64) {
	setCount(tierCountKey(projectID), n)
}
