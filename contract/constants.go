package contract

import "passbooth_dao/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// treasuryAsset is the single native asset all cycle accounting runs in.
const treasuryAsset = sdk.AssetHive

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// MaxAmount is the widest value the fixed-point representation can hold.
const MaxAmount = Amount(1<<63 - 1)

// -----------------------------------------------------------------------------
// Protocol Limits
// -----------------------------------------------------------------------------

const (
	// MaxCycleLimit caps how many chained cycles a single configure may allow.
	MaxCycleLimit = 32
	// MaxDurationDays is the widest day-count that fits the wire width.
	MaxDurationDays = 65535
	// MaxTierFee caps the per-tier fee a booth issue may declare.
	MaxTierFee = Amount(1000 * AmountScale)
	// MaxLockRateBP is full escrow, expressed in basis points.
	MaxLockRateBP = 10000
	// BasisPoints is the denominator for lock-rate and payout splits.
	BasisPoints = 10000
	// DaySeconds converts the stored day-count duration to wall time.
	DaySeconds = 86400
	// UnitWeight is the weight the last auctioned pass of a curve must carry.
	UnitWeight = 1
	// MaxMemoLength limits the free-text memo on contributions.
	MaxMemoLength = 256
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

// CyclesCount holds an integer counter for funding cycles (used for generating IDs).
const CyclesCount = "count:fc"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kCycle stores encoded FundingCycle records by id.
	kCycle byte = 0x01
	// kCurrentCycle maps a project id to its latest cycle id.
	kCurrentCycle byte = 0x02
	// kTier houses the frozen tier set, indexed by project + tier index.
	kTier byte = 0x03
	// kTierCount stores the tier-set size per project.
	kTierCount byte = 0x04
	// kAuctionedPass stores the pricing curve per cycle + tier index.
	kAuctionedPass byte = 0x05
	// kPassCount stores the curve size per cycle.
	kPassCount byte = 0x06
	// kCycleTier stores the per-cycle tier instance snapshotted at configure.
	kCycleTier byte = 0x07
	// kStake stores appended StakeEntry lists per user + cycle.
	kStake byte = 0x10
	// kTierStaked tracks total staked pass count per cycle + tier.
	kTierStaked byte = 0x11
	// kClaimFlag is the one-shot pass-or-refund flag per user + cycle.
	kClaimFlag byte = 0x12
	// kAirdropFlag is the one-shot community airdrop flag per user + cycle.
	kAirdropFlag byte = 0x13
	// kAirdropCount tracks community passes handed out per cycle + tier.
	kAirdropCount byte = 0x14
	// kProjectBalance holds the custody balance per project.
	kProjectBalance byte = 0x20
)

// ContractConfigKey stores the one-time init blob (owner, governor, treasury).
const ContractConfigKey = "cfg"
