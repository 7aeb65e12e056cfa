package contract

import (
	"math"

	"passbooth_dao/sdk"
)

// Amount is a ledger amount scaled by AmountScale so storage stays integer.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for ledger transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// CycleState is the temporal state of a funding cycle. There is no "not yet
// started" state since start is stamped at configure time.
type CycleState uint8

const (
	CycleStateUnconfigured CycleState = 0
	CycleStateActive       CycleState = 1
	CycleStateExpired      CycleState = 2
)

// String prints the cycle state as lower-case text for events and logs.
// Example payload: CycleStateActive.String()
func (cs CycleState) String() string {
	switch cs {
	case CycleStateActive:
		return "active"
	case CycleStateExpired:
		return "expired"
	default:
		return "unconfigured"
	}
}

// FundingCycle is one time-boxed fundraising window of a project. Deposited
// always equals Locked plus Tappable; Locked never exceeds Target.
type FundingCycle struct {
	ID             uint64
	ProjectID      uint64
	PreviousID     uint64
	Start          int64
	Duration       uint64 // days
	CycleLimit     uint64
	Target         Amount
	LockRate       uint64 // basis points
	Deposited      Amount
	Locked         Amount
	Tappable       Amount
	Unlocked       Amount
	ReachedMaxLock bool
	Paused         bool
}

// Tier is one capacity-bounded sale bucket. The set is frozen per cycle;
// only Remaining moves, and only downwards.
type Tier struct {
	Fee        Amount
	Capacity   uint64
	Remaining  uint64
	Multiplier uint64
}

// AuctionedPass is the per-tier pricing record for one funding cycle.
type AuctionedPass struct {
	SalePrice        Amount
	Weight           uint64
	SaleAmount       uint64
	CommunityAmount  uint64
	ReservedAmount   uint64
	CommunityVoucher sdk.Address
}

// StakeEntry is one weighted purchase a user made into a tier. Entries are
// append-only within a cycle and consumed once at reconciliation.
type StakeEntry struct {
	Tier   uint64
	Amount uint64 // pass count
	Weight uint64
}

// PayoutSplit routes a share of tapped funds to a beneficiary.
type PayoutSplit struct {
	Beneficiary sdk.Address
	PercentBP   uint64 // basis points of the tapped remainder
}

// ContractConfig is the one-time setup stored at init.
type ContractConfig struct {
	Owner       sdk.Address
	Governor    sdk.Address
	DevTreasury sdk.Address
}

// ConfigureResult is the tagged outcome of a configure call so callers can
// branch deterministically instead of inferring state from events.
type ConfigureResult struct {
	Created bool
	Cycle   *FundingCycle
}

// CycleParams is the validated configuration for a new funding cycle.
type CycleParams struct {
	Duration   uint64
	CycleLimit uint64
	Target     Amount
	LockRate   uint64
}

// ConfigureArgs is the decoded payload for cycle_configure.
type ConfigureArgs struct {
	ProjectID uint64
	Params    CycleParams
	Passes    []AuctionedPass
}

// IssueArgs is the decoded payload for booth_issue.
type IssueArgs struct {
	ProjectID   uint64
	Fees        []Amount
	Capacities  []uint64
	Multipliers []uint64
}

// ContributeArgs is the decoded payload for terminal_contribute.
type ContributeArgs struct {
	ProjectID uint64
	Tiers     []uint64
	Amounts   []uint64
	Memo      string
}

// CreateDaoArgs bundles the one-shot bootstrap: registry entry, tier set,
// first cycle and payout table, all or nothing.
type CreateDaoArgs struct {
	Handle  string
	Issue   IssueArgs
	Params  CycleParams
	Passes  []AuctionedPass
	Payouts []PayoutSplit
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
