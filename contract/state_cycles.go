package contract

import (
	"strconv"

	"passbooth_dao/sdk"
)

// saveCycle writes the encoded funding cycle record.
func saveCycle(fc *FundingCycle) {
	sdk.StateSetObject(cycleKey(fc.ID), encodeRecord(*fc, "funding cycle"))
}

// loadCycle fetches a cycle by id, returning ok=false when it never existed.
func loadCycle(id uint64) (*FundingCycle, bool) {
	ptr := sdk.StateGetObject(cycleKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	var fc FundingCycle
	decodeRecord(*ptr, &fc, "funding cycle")
	return &fc, true
}

// mustLoadCycle reverts with the canonical symbol when the cycle is missing.
func mustLoadCycle(id uint64) *FundingCycle {
	fc, ok := loadCycle(id)
	if !ok {
		fail(ErrFundingCycleNotExist, "funding cycle "+UInt64ToString(id)+" not found")
	}
	return fc
}

// setCurrentCycleID points the project at its newest cycle.
func setCurrentCycleID(projectID uint64, cycleID uint64) {
	sdk.StateSetObject(currentCycleKey(projectID), strconv.FormatUint(cycleID, 10))
}

// currentCycleID returns the project's latest cycle id, zero when unconfigured.
func currentCycleID(projectID uint64) uint64 {
	ptr := sdk.StateGetObject(currentCycleKey(projectID))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// currentCycleOf loads the project's latest cycle record if any.
func currentCycleOf(projectID uint64) (*FundingCycle, bool) {
	id := currentCycleID(projectID)
	if id == 0 {
		return nil, false
	}
	return loadCycle(id)
}

// saveAuctionedPasses freezes the pricing curve for the cycle.
func saveAuctionedPasses(cycleID uint64, passes []AuctionedPass) {
	for i, p := range passes {
		sdk.StateSetObject(auctionedPassKey(cycleID, uint64(i)), encodeRecord(p, "auctioned pass"))
	}
	setCount(passCountKey(cycleID), uint64(len(passes)))
}

// auctionedPassCount returns the curve size of a cycle.
func auctionedPassCount(cycleID uint64) uint64 {
	return getCount(passCountKey(cycleID))
}

// loadAuctionedPass fetches one curve entry; missing index is a tier error.
func loadAuctionedPass(cycleID uint64, index uint64) *AuctionedPass {
	ptr := sdk.StateGetObject(auctionedPassKey(cycleID, index))
	if ptr == nil || *ptr == "" {
		fail(ErrTierUnknown, "no auctioned pass at tier "+UInt64ToString(index))
	}
	var p AuctionedPass
	decodeRecord(*ptr, &p, "auctioned pass")
	return &p
}
