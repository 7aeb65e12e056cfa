////////////////////////////////////////////////////////////////////////////////
// Passbooth DAO: funding-cycle & treasury accounting for the vsc network
////////////////////////////////////////////////////////////////////////////////

package contract

import "strconv"

// Entry points. Each export decodes its pipe payload, resolves the sender
// once and hands off to the orchestrator. Returns are short confirmation
// lines; queries return tinyjson blobs.

// ContractInit sets owner (the sender), governor and dev treasury.
// Payload: governor|devTreasury
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	governor, devTreasury := parseInitArgs(payload)
	contractInit(AddressFromString(governor), AddressFromString(devTreasury))
	return strptr("initialized")
}

// IssueTiers freezes a project's tier set.
// Payload: projectID|fees|capacities|multipliers
//
//go:wasmexport booth_issue
func IssueTiers(payload *string) *string {
	args := parseIssueArgs(payload)
	requireInitialized()
	by := getSenderAddress()
	requireController(args.ProjectID, by)
	issueTiers(&args)
	emitIssue(args.ProjectID, uint64(len(args.Fees)), by)
	return strptr("issued|prj:" + UInt64ToString(args.ProjectID))
}

// ConfigureCycle opens the project's next funding cycle, or reports the one
// already running.
// Payload: projectID|duration|cycleLimit|target|lockRate|passes
//
//go:wasmexport cycle_configure
func ConfigureCycle(payload *string) *string {
	args := parseConfigureArgs(payload)
	requireInitialized()
	res := configureCycle(&args, getSenderAddress())
	if res.Created {
		return strptr("created|id:" + UInt64ToString(res.Cycle.ID))
	}
	return strptr("exists|id:" + UInt64ToString(res.Cycle.ID))
}

// Contribute buys passes into the current cycle against a transfer.allow
// intent. Payload: projectID|tiers|amounts|memo
//
//go:wasmexport terminal_contribute
func Contribute(payload *string) *string {
	args := parseContributeArgs(payload)
	contribute(&args, getSenderAddress())
	return strptr("paid|prj:" + UInt64ToString(args.ProjectID))
}

// CommunityContribute claims one free community pass for a voucher holder.
// Payload: projectID|tier
//
//go:wasmexport terminal_community
func CommunityContribute(payload *string) *string {
	projectID, tier := parseCommunityArgs(payload)
	communityContribute(projectID, tier, getSenderAddress())
	return strptr("airdropped|prj:" + UInt64ToString(projectID) + "|tier:" + UInt64ToString(tier))
}

// Tap disburses tappable funds to the payout splits, fee first.
// Payload: projectID|amount
//
//go:wasmexport terminal_tap
func Tap(payload *string) *string {
	projectID, amount := parseTapArgs(payload)
	tap(projectID, amount, getSenderAddress())
	return strptr("tapped|prj:" + UInt64ToString(projectID))
}

// ClaimPassOrRefund reconciles the sender against one expired cycle. The
// cycle is addressed explicitly so earlier cycles stay claimable after the
// project reconfigured.
// Payload: projectID|cycleID
//
//go:wasmexport terminal_claim
func ClaimPassOrRefund(payload *string) *string {
	projectID, cycleID := parseClaimArgs(payload)
	claimPassOrRefund(projectID, cycleID, getSenderAddress())
	return strptr("claimed|fc:" + UInt64ToString(cycleID))
}

// UnLockTreasury releases escrowed funds of an expired cycle. Governor only.
// Payload: projectID|cycleID|amount|to
//
//go:wasmexport terminal_unlock
func UnLockTreasury(payload *string) *string {
	projectID, cycleID, amount, to := parseUnlockArgs(payload)
	unLockTreasury(projectID, cycleID, amount, AddressFromString(to), getSenderAddress())
	return strptr("unlocked|fc:" + UInt64ToString(cycleID))
}

// AddToBalance tops up project custody without buying passes.
// Payload: projectID|amount
//
//go:wasmexport terminal_add_balance
func AddToBalance(payload *string) *string {
	projectID, amount := parseAddBalanceArgs(payload)
	addToBalance(projectID, amount, getSenderAddress())
	return strptr("added|prj:" + UInt64ToString(projectID))
}

// PauseCycle gates deposits on the running cycle. Controller only.
// Payload: projectID|paused
//
//go:wasmexport cycle_pause
func PauseCycle(payload *string) *string {
	projectID, paused := parsePauseArgs(payload)
	setCyclePause(projectID, paused, getSenderAddress())
	if paused {
		return strptr("paused|prj:" + UInt64ToString(projectID))
	}
	return strptr("resumed|prj:" + UInt64ToString(projectID))
}

// SetDevTreasury repoints the protocol fee receiver. Owner only.
// Payload: address
//
//go:wasmexport terminal_set_dev_treasury
func SetDevTreasury(payload *string) *string {
	if payload == nil || *payload == "" {
		fail(ErrBadPayload, "set dev treasury needs an address")
	}
	setDevTreasury(AddressFromString(*payload), getSenderAddress())
	return strptr("dev-treasury-set")
}

// CreateDao bootstraps a project in one shot.
// Payload: handle|fees|capacities|multipliers|duration|cycleLimit|target|lockRate|passes|payouts
//
//go:wasmexport dao_create
func CreateDao(payload *string) *string {
	args := parseCreateDaoArgs(payload)
	projectID, cycleID := createDao(&args, getSenderAddress())
	return strptr("dao|prj:" + UInt64ToString(projectID) + "|fc:" + UInt64ToString(cycleID))
}

// GetFundingCycle returns the cycle record as a tinyjson blob.
// Payload: cycleID
//
//go:wasmexport cycle_get_one
func GetFundingCycle(payload *string) *string {
	if payload == nil {
		fail(ErrBadPayload, "cycle query needs an id")
	}
	id := parseUint64Field(*payload, "cycle id")
	fc, ok := loadCycle(id)
	if !ok {
		fail(ErrFundingCycleNotExist, "funding cycle "+UInt64ToString(id)+" not found")
	}
	return strptr(encodeRecord(*fc, "funding cycle"))
}

// GetCurrentCycle returns the project's latest cycle as a tinyjson blob.
// Payload: projectID
//
//go:wasmexport cycle_get_current
func GetCurrentCycle(payload *string) *string {
	projectID := parseProjectArg(payload, "current cycle query")
	fc, ok := currentCycleOf(projectID)
	if !ok {
		fail(ErrFundingCycleNotExist, "project "+UInt64ToString(projectID)+" has no funding cycle")
	}
	return strptr(encodeRecord(*fc, "funding cycle"))
}

// GetUserAllocation returns the sender's weighted allocation per tier as
// tier:allocation pairs. Payload: cycleID
//
//go:wasmexport stake_get_allocation
func GetUserAllocation(payload *string) *string {
	if payload == nil {
		fail(ErrBadPayload, "allocation query needs a cycle id")
	}
	cycleID := parseUint64Field(*payload, "cycle id")
	alloc := userAllocation(cycleID, getSenderAddress())
	out := ""
	for tier := uint64(0); tier < auctionedPassCount(cycleID); tier++ {
		if alloc[tier] == 0 {
			continue
		}
		if out != "" {
			out += ";"
		}
		out += UInt64ToString(tier) + ":" + UInt64ToString(alloc[tier])
	}
	return strptr(out)
}

// GetTappableAmount returns the tappable funds of a cycle as float text.
// Payload: cycleID
//
//go:wasmexport cycle_get_tappable
func GetTappableAmount(payload *string) *string {
	if payload == nil {
		fail(ErrBadPayload, "tappable query needs an id")
	}
	id := parseUint64Field(*payload, "cycle id")
	amt := tappableAmountOf(id)
	return strptr(strconv.FormatFloat(AmountToFloat(amt), 'f', -1, 64))
}
