package contract

import "passbooth_dao/sdk"

// Revert symbols, named like the failure taxonomy callers branch on.
// Every violation is fatal to the call; the host rolls the state back.
const (
	ErrUnAuthorized         = "UnAuthorized"
	ErrOnlyGovernor         = "OnlyGovernor"
	ErrBadDuration          = "BadDuration"
	ErrBadCycleLimit        = "BadCycleLimit"
	ErrBadCapacity          = "BadCapacity"
	ErrBadFee               = "BadFee"
	ErrBadLockRate          = "BadLockRate"
	ErrSizeMismatch         = "SizeMismatch"
	ErrLastWeightMustBe1    = "LastWeightMustBe1"
	ErrMultiplierNotMatch   = "MultiplierNotMatch"
	ErrTierUnknown          = "TierUnknown"
	ErrInsufficientBalance  = "InsufficientBalance"
	ErrBadOperationPeriod   = "BadOperationPeriod"
	ErrFundingCycleNotExist = "FundingCycleNotExist"
	ErrFundingCyclePaused   = "FundingCyclePaused"
	ErrAlreadyClaimed       = "AlreadyClaimed"
	ErrNoCommunityTicket    = "NoCommunityTicketLeft"
	ErrBadPayload           = "BadPayload"
)

// fail reverts the whole call with the given symbol, solidity-style.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
}
