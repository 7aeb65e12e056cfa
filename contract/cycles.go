package contract

import (
	"passbooth_dao/sdk"
)

// Funding cycle ledger. A cycle is a time-boxed fundraising window; deposits
// split into a locked escrow (up to Target, at LockRate) and a tappable
// remainder. Deposited == Locked + Tappable holds across every mutation.

// validateCycleParams rejects out-of-range configuration before anything
// is written.
func validateCycleParams(p *CycleParams) {
	if p.Duration == 0 || p.Duration >= MaxDurationDays {
		fail(ErrBadDuration, "duration must be 1.."+UInt64ToString(MaxDurationDays-1)+" days")
	}
	if p.CycleLimit == 0 || p.CycleLimit > MaxCycleLimit {
		fail(ErrBadCycleLimit, "cycle limit must be 1.."+UInt64ToString(MaxCycleLimit))
	}
	if p.Target <= 0 {
		fail(ErrBadPayload, "target must be positive")
	}
	if p.LockRate > MaxLockRateBP {
		fail(ErrBadLockRate, "lock rate above "+UInt64ToString(MaxLockRateBP)+" basis points")
	}
}

// validateAuctionedPasses checks the pricing curve against the project's
// frozen tier set: same length, weights tied to the tier multipliers, and a
// unit weight on the last entry so allocation arithmetic bottoms out at 1.
func validateAuctionedPasses(projectID uint64, passes []AuctionedPass) {
	n := tierCount(projectID)
	if n == 0 {
		fail(ErrTierUnknown, "project "+UInt64ToString(projectID)+" has no tier set")
	}
	if uint64(len(passes)) != n {
		fail(ErrSizeMismatch, "curve size must match tier set size")
	}
	last := n - 1
	if passes[last].Weight != UnitWeight {
		fail(ErrLastWeightMustBe1, "last curve weight must be 1")
	}
	for i := uint64(0); i < last; i++ {
		t := loadTier(projectID, i)
		if passes[i].Weight != passes[i+1].Weight*t.Multiplier {
			fail(ErrMultiplierNotMatch, "curve weight at tier "+UInt64ToString(i)+
				" does not follow the tier multiplier")
		}
	}
	for i := range passes {
		if passes[i].SalePrice < 0 {
			fail(ErrBadPayload, "negative sale price at tier "+UInt64ToString(uint64(i)))
		}
	}
}

// cycleStateOf is the temporal state of a cycle at the given instant.
// Pause is orthogonal: a paused cycle is still Active on the clock, it just
// refuses deposits.
func cycleStateOf(fc *FundingCycle, now int64) CycleState {
	if fc == nil {
		return CycleStateUnconfigured
	}
	if now < fc.Start+int64(fc.Duration)*DaySeconds {
		return CycleStateActive
	}
	return CycleStateExpired
}

// configureCycle creates a project's next funding cycle, or reports the one
// already running. The tagged result tells the caller which happened; the
// matching event is emitted either way.
func configureCycle(args *ConfigureArgs, by sdk.Address) ConfigureResult {
	requireController(args.ProjectID, by)
	validateCycleParams(&args.Params)
	validateAuctionedPasses(args.ProjectID, args.Passes)

	now := nowUnix()
	var previousID uint64
	if cur, ok := currentCycleOf(args.ProjectID); ok {
		if cycleStateOf(cur, now) == CycleStateActive {
			emitCycleExists(cur, by)
			return ConfigureResult{Created: false, Cycle: cur}
		}
		previousID = cur.ID
	}

	fc := &FundingCycle{
		ID:         nextCycleID(),
		ProjectID:  args.ProjectID,
		PreviousID: previousID,
		Start:      now,
		Duration:   args.Params.Duration,
		CycleLimit: args.Params.CycleLimit,
		Target:     args.Params.Target,
		LockRate:   args.Params.LockRate,
	}
	saveCycle(fc)
	saveAuctionedPasses(fc.ID, args.Passes)
	// each cycle gets its own tier instances so Remaining is per cycle
	for i := uint64(0); i < tierCount(args.ProjectID); i++ {
		t := loadTier(args.ProjectID, i)
		t.Remaining = t.Capacity
		saveCycleTier(fc.ID, i, t)
	}
	setCurrentCycleID(args.ProjectID, fc.ID)
	emitConfigure(fc, by)
	return ConfigureResult{Created: true, Cycle: fc}
}

// recordDeposit books an incoming payment against the cycle. The lock-rate
// share goes to escrow until Target is reached, the rest stays tappable.
func recordDeposit(fc *FundingCycle, amount Amount) {
	if amount <= 0 {
		fail(ErrBadPayload, "deposit must be positive")
	}
	lockInc := Amount(int64(amount) * int64(fc.LockRate) / BasisPoints)
	if headroom := fc.Target - fc.Locked; lockInc > headroom {
		lockInc = headroom
	}
	fc.Deposited += amount
	fc.Locked += lockInc
	fc.Tappable += amount - lockInc
	if fc.Locked >= fc.Target {
		fc.ReachedMaxLock = true
	}
	saveCycle(fc)
}

// recordTap disburses from the tappable bucket during the active window and
// returns the protocol fee share of the disbursement.
func recordTap(fc *FundingCycle, amount Amount, now int64) Amount {
	if cycleStateOf(fc, now) != CycleStateActive {
		fail(ErrBadOperationPeriod, "tap requires an active cycle")
	}
	if amount <= 0 {
		fail(ErrBadPayload, "tap amount must be positive")
	}
	if amount > fc.Tappable {
		fail(ErrInsufficientBalance, "tap exceeds tappable funds")
	}
	fc.Tappable -= amount
	fc.Deposited -= amount
	saveCycle(fc)
	return Amount(int64(amount) * int64(fc.LockRate) / BasisPoints)
}

// recordUnlock releases escrowed funds after expiry. Governor gating happens
// at the orchestrator; here only the temporal and balance rules apply.
func recordUnlock(fc *FundingCycle, amount Amount, now int64) {
	if cycleStateOf(fc, now) != CycleStateExpired {
		fail(ErrBadOperationPeriod, "unlock requires an expired cycle")
	}
	if amount <= 0 {
		fail(ErrBadPayload, "unlock amount must be positive")
	}
	if amount > fc.Locked {
		fail(ErrInsufficientBalance, "unlock exceeds locked funds")
	}
	fc.Locked -= amount
	fc.Deposited -= amount
	fc.Unlocked += amount
	saveCycle(fc)
}

// recordRefund pays sale value back out of the cycle at reconciliation,
// draining escrow first and tappable funds after.
func recordRefund(fc *FundingCycle, amount Amount) {
	if amount > fc.Deposited {
		fail(ErrInsufficientBalance, "refund exceeds cycle funds")
	}
	fromLocked := amount
	if fromLocked > fc.Locked {
		fromLocked = fc.Locked
	}
	fc.Locked -= fromLocked
	fc.Tappable -= amount - fromLocked
	fc.Deposited -= amount
	saveCycle(fc)
}

// setCyclePaused flips the deposit gate on an active cycle.
func setCyclePaused(fc *FundingCycle, paused bool, now int64) {
	if cycleStateOf(fc, now) != CycleStateActive {
		fail(ErrBadOperationPeriod, "only an active cycle can be paused or resumed")
	}
	if fc.Paused == paused {
		return
	}
	fc.Paused = paused
	saveCycle(fc)
}

// tappableAmountOf is the read-only view of a cycle's tappable funds.
func tappableAmountOf(cycleID uint64) Amount {
	return mustLoadCycle(cycleID).Tappable
}
