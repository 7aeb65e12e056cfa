package contract

import (
	"passbooth_dao/sdk"
)

// Event lines follow the short pipe format consumed by the indexer:
// tag|k:v|k:v. Keep new tags to 2-4 chars.

func emitInit(owner sdk.Address, governor sdk.Address) {
	sdk.Log("init|own:" + owner.String() + "|gov:" + governor.String())
}

func emitConfigure(cycle *FundingCycle, by sdk.Address) {
	sdk.Log("fc|id:" + UInt64ToString(cycle.ID) +
		"|prj:" + UInt64ToString(cycle.ProjectID) +
		"|prev:" + UInt64ToString(cycle.PreviousID) +
		"|tgt:" + AmountToString(cycle.Target) +
		"|by:" + by.String())
}

func emitCycleExists(cycle *FundingCycle, by sdk.Address) {
	sdk.Log("fce|id:" + UInt64ToString(cycle.ID) +
		"|prj:" + UInt64ToString(cycle.ProjectID) +
		"|by:" + by.String())
}

func emitIssue(projectID uint64, tierCount uint64, by sdk.Address) {
	sdk.Log("tier|prj:" + UInt64ToString(projectID) +
		"|n:" + UInt64ToString(tierCount) +
		"|by:" + by.String())
}

func emitPay(cycleID uint64, payer sdk.Address, amount Amount, tiers []uint64, amounts []uint64) {
	sdk.Log("pay|fc:" + UInt64ToString(cycleID) +
		"|amt:" + AmountToString(amount) +
		"|trs:" + UInt64SliceToString(tiers) +
		"|qty:" + UInt64SliceToString(amounts) +
		"|by:" + payer.String())
}

func emitAirdrop(cycleID uint64, user sdk.Address, tier uint64) {
	sdk.Log("air|fc:" + UInt64ToString(cycleID) +
		"|tier:" + UInt64ToString(tier) +
		"|by:" + user.String())
}

func emitTap(cycleID uint64, amount Amount, fee Amount, by sdk.Address) {
	sdk.Log("tap|fc:" + UInt64ToString(cycleID) +
		"|amt:" + AmountToString(amount) +
		"|fee:" + AmountToString(fee) +
		"|by:" + by.String())
}

func emitClaim(cycleID uint64, user sdk.Address, refund Amount) {
	sdk.Log("clm|fc:" + UInt64ToString(cycleID) +
		"|ref:" + AmountToString(refund) +
		"|by:" + user.String())
}

func emitUnlock(cycleID uint64, amount Amount, to sdk.Address, by sdk.Address) {
	sdk.Log("ulk|fc:" + UInt64ToString(cycleID) +
		"|amt:" + AmountToString(amount) +
		"|to:" + to.String() +
		"|by:" + by.String())
}

func emitAddBalance(projectID uint64, amount Amount, by sdk.Address) {
	sdk.Log("bal|prj:" + UInt64ToString(projectID) +
		"|amt:" + AmountToString(amount) +
		"|by:" + by.String())
}

func emitPause(cycleID uint64, paused bool, by sdk.Address) {
	tag := "pse"
	if !paused {
		tag = "ups"
	}
	sdk.Log(tag + "|fc:" + UInt64ToString(cycleID) + "|by:" + by.String())
}

func emitDevTreasury(addr sdk.Address, by sdk.Address) {
	sdk.Log("dev|to:" + addr.String() + "|by:" + by.String())
}

func emitCreateDao(projectID uint64, cycleID uint64, by sdk.Address) {
	sdk.Log("dao|prj:" + UInt64ToString(projectID) +
		"|fc:" + UInt64ToString(cycleID) +
		"|by:" + by.String())
}
