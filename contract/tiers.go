package contract

import (
	"passbooth_dao/sdk"
)

// Tier catalog. Projects issue a tier template; every configure snapshots it
// into per-cycle instances, so each funding cycle owns its own Remaining and
// expired cycles keep their books for late reconciliation.

// issueTiers validates and persists a project's tier template. The template
// is frozen while a cycle runs; between cycles it may be replaced, and the
// next configure picks the new set up. Caller must have checked controller
// authority already.
func issueTiers(args *IssueArgs) {
	n := uint64(len(args.Fees))
	if n == 0 {
		fail(ErrBadPayload, "empty tier set")
	}
	if uint64(len(args.Capacities)) != n || uint64(len(args.Multipliers)) != n {
		fail(ErrSizeMismatch, "fees, capacities and multipliers must align")
	}
	if fc, ok := currentCycleOf(args.ProjectID); ok && cycleStateOf(fc, nowUnix()) == CycleStateActive {
		fail(ErrBadOperationPeriod, "tier set is frozen while a funding cycle runs")
	}
	for i := uint64(0); i < n; i++ {
		if args.Capacities[i] == 0 {
			fail(ErrBadCapacity, "tier "+UInt64ToString(i)+" capacity must be positive")
		}
		if args.Fees[i] < 0 || args.Fees[i] > MaxTierFee {
			fail(ErrBadFee, "tier "+UInt64ToString(i)+" fee out of range")
		}
		if args.Multipliers[i] == 0 {
			fail(ErrMultiplierNotMatch, "tier "+UInt64ToString(i)+" multiplier must be positive")
		}
	}
	for i := uint64(0); i < n; i++ {
		saveTier(args.ProjectID, i, &Tier{
			Fee:        args.Fees[i],
			Capacity:   args.Capacities[i],
			Remaining:  args.Capacities[i],
			Multiplier: args.Multipliers[i],
		})
	}
	setTierCount(args.ProjectID, n)
}

// decrementRemaining consumes a cycle's tier capacity for a mint-backed
// operation. Reverts once the bucket cannot cover the requested count.
func decrementRemaining(cycleID uint64, tier uint64, count uint64) {
	t := loadCycleTier(cycleID, tier)
	if t.Remaining < count {
		fail(ErrInsufficientBalance, "tier "+UInt64ToString(tier)+" has "+
			UInt64ToString(t.Remaining)+" passes left, wanted "+UInt64ToString(count))
	}
	t.Remaining -= count
	saveCycleTier(cycleID, tier, t)
}

// requireController reverts unless addr controls the project per the registry.
func requireController(projectID uint64, addr sdk.Address) {
	if registry.ControllerOf(projectID) != addr {
		fail(ErrUnAuthorized, addr.String()+" does not control project "+UInt64ToString(projectID))
	}
}
