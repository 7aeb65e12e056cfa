package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Funding Cycle Ledger Tests
// =============================================================================

// TestConfigureCreatesCycle checks the happy path writes everything we read later.
func TestConfigureCreatesCycle(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc, ok := currentCycleOf(1)
	require.True(t, ok)
	assert.Equal(t, uint64(1), fc.ID)
	assert.Equal(t, uint64(1), fc.ProjectID)
	assert.Equal(t, uint64(0), fc.PreviousID)
	assert.Equal(t, baseClock, fc.Start)
	assert.Equal(t, uint64(30), fc.Duration)
	assert.Equal(t, FloatToAmount(500), fc.Target)
	assert.Equal(t, uint64(4000), fc.LockRate)
	assert.Equal(t, CycleStateActive, cycleStateOf(fc, nowUnix()))
	assert.Equal(t, uint64(3), auctionedPassCount(fc.ID))
}

// TestConfigureWhileActiveReturnsExisting checks reconfigure mid-cycle is a
// no-op reporting the running cycle, not an error and not a new cycle.
func TestConfigureWhileActiveReturnsExisting(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	as(ownerAddr)
	ret := ConfigureCycle(strptr("1|30|4|500|4000|8:8:50:5:0:contract:og-voucher;4:2:100:10:0:;1:1:200:20:0:"))
	assert.Equal(t, "exists|id:1", *ret)
	assert.Equal(t, uint64(1), currentCycleID(1))
}

// TestConfigureAfterExpiryChains checks a fresh cycle links back via previous id.
func TestConfigureAfterExpiryChains(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	advanceDays(31)
	as(ownerAddr)
	ret := ConfigureCycle(strptr("1|15|4|250|2000|8:8:50:5:0:contract:og-voucher;4:2:100:10:0:;1:1:200:20:0:"))
	assert.Equal(t, "created|id:2", *ret)

	fc := mustLoadCycle(2)
	assert.Equal(t, uint64(1), fc.PreviousID)
	assert.Equal(t, uint64(2), currentCycleID(1))
	assert.Equal(t, CycleStateExpired, cycleStateOf(mustLoadCycle(1), nowUnix()))
	// the new cycle starts with fresh tier instances
	assert.Equal(t, uint64(100), loadCycleTier(2, 0).Remaining)
}

// TestConfigureValidation walks the parameter bounds.
func TestConfigureValidation(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	advanceDays(31)
	as(ownerAddr)

	curve := "8:8:50:5:0:contract:og-voucher;4:2:100:10:0:;1:1:200:20:0:"
	expectRevert(t, ErrBadDuration, func() {
		ConfigureCycle(strptr("1|0|4|500|4000|" + curve))
	})
	expectRevert(t, ErrBadDuration, func() {
		ConfigureCycle(strptr("1|65535|4|500|4000|" + curve))
	})
	expectRevert(t, ErrBadCycleLimit, func() {
		ConfigureCycle(strptr("1|30|33|500|4000|" + curve))
	})
	expectRevert(t, ErrBadCycleLimit, func() {
		ConfigureCycle(strptr("1|30|0|500|4000|" + curve))
	})
	expectRevert(t, ErrBadLockRate, func() {
		ConfigureCycle(strptr("1|30|4|500|10001|" + curve))
	})
}

// TestConfigureCurveValidation checks the weight curve rules against the tier set.
func TestConfigureCurveValidation(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	advanceDays(31)
	as(ownerAddr)

	// wrong size
	expectRevert(t, ErrSizeMismatch, func() {
		ConfigureCycle(strptr("1|30|4|500|4000|8:8:50:5:0:;1:1:200:20:0:"))
	})
	// last weight must bottom out at 1
	expectRevert(t, ErrLastWeightMustBe1, func() {
		ConfigureCycle(strptr("1|30|4|500|4000|8:8:50:5:0:;4:2:100:10:0:;1:2:200:20:0:"))
	})
	// weight must follow the tier multiplier (8 = 2 * 4, not 6)
	expectRevert(t, ErrMultiplierNotMatch, func() {
		ConfigureCycle(strptr("1|30|4|500|4000|8:6:50:5:0:;4:2:100:10:0:;1:1:200:20:0:"))
	})
}

// TestConfigureByStrangerFails checks only the registry controller can configure.
func TestConfigureByStrangerFails(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	advanceDays(31)
	as(aliceAddr)

	expectRevert(t, ErrUnAuthorized, func() {
		ConfigureCycle(strptr("1|30|4|500|4000|8:8:50:5:0:;4:2:100:10:0:;1:1:200:20:0:"))
	})
}

// TestDepositLockSplit checks the 40% lock rate split on a plain deposit.
func TestDepositLockSplit(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc := mustLoadCycle(1)
	recordDeposit(fc, FloatToAmount(100))
	assert.Equal(t, FloatToAmount(100), fc.Deposited)
	assert.Equal(t, FloatToAmount(40), fc.Locked)
	assert.Equal(t, FloatToAmount(60), fc.Tappable)
	assert.False(t, fc.ReachedMaxLock)
	requireWholeCycle(t, fc)
}

// TestDepositLockCapsAtTarget checks escrow never exceeds the target and the
// overflow stays tappable.
func TestDepositLockCapsAtTarget(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc := mustLoadCycle(1)
	// target 500 at 40%: 1200 deposited locks 480, another 100 locks just 20
	recordDeposit(fc, FloatToAmount(1200))
	assert.Equal(t, FloatToAmount(480), fc.Locked)
	assert.False(t, fc.ReachedMaxLock)

	recordDeposit(fc, FloatToAmount(100))
	assert.Equal(t, FloatToAmount(500), fc.Locked)
	assert.True(t, fc.ReachedMaxLock)
	assert.Equal(t, FloatToAmount(800), fc.Tappable)
	requireWholeCycle(t, fc)

	// fully locked now, everything further is tappable
	recordDeposit(fc, FloatToAmount(50))
	assert.Equal(t, FloatToAmount(500), fc.Locked)
	assert.Equal(t, FloatToAmount(850), fc.Tappable)
	requireWholeCycle(t, fc)
}

// TestRecordTapFee checks the basis-point fee on disbursement: 40% lock rate
// on a 10 hive tap is a 4 hive fee.
func TestRecordTapFee(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc := mustLoadCycle(1)
	recordDeposit(fc, FloatToAmount(100))

	fee := recordTap(fc, FloatToAmount(10), nowUnix())
	assert.Equal(t, FloatToAmount(4), fee)
	assert.Equal(t, FloatToAmount(50), fc.Tappable)
	assert.Equal(t, FloatToAmount(90), fc.Deposited)
	requireWholeCycle(t, fc)
}

// TestRecordTapBounds checks overdraw and expiry gating.
func TestRecordTapBounds(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc := mustLoadCycle(1)
	recordDeposit(fc, FloatToAmount(100))

	expectRevert(t, ErrInsufficientBalance, func() {
		recordTap(mustLoadCycle(1), FloatToAmount(61), nowUnix())
	})
	expectRevert(t, ErrBadOperationPeriod, func() {
		recordTap(mustLoadCycle(1), FloatToAmount(10), nowUnix()+31*DaySeconds)
	})
}

// TestRecordUnlock checks escrow release needs an expired cycle and enough funds.
func TestRecordUnlock(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	fc := mustLoadCycle(1)
	recordDeposit(fc, FloatToAmount(100)) // locks 40

	expectRevert(t, ErrBadOperationPeriod, func() {
		recordUnlock(mustLoadCycle(1), FloatToAmount(10), nowUnix())
	})

	later := nowUnix() + 31*DaySeconds
	expectRevert(t, ErrInsufficientBalance, func() {
		recordUnlock(mustLoadCycle(1), FloatToAmount(41), later)
	})

	fc = mustLoadCycle(1)
	recordUnlock(fc, FloatToAmount(40), later)
	assert.Equal(t, Amount(0), fc.Locked)
	assert.Equal(t, FloatToAmount(40), fc.Unlocked)
	assert.Equal(t, FloatToAmount(60), fc.Deposited)
	requireWholeCycle(t, fc)
}

// TestCycleRecordRoundTrip checks a saved cycle reads back field by field.
func TestCycleRecordRoundTrip(t *testing.T) {
	setupEngine(t)
	in := &FundingCycle{
		ID: 7, ProjectID: 3, PreviousID: 6, Start: baseClock, Duration: 14,
		CycleLimit: 2, Target: FloatToAmount(123.456), LockRate: 2500,
		Deposited: FloatToAmount(10), Locked: FloatToAmount(2.5),
		Tappable: FloatToAmount(7.5), Unlocked: FloatToAmount(1),
		ReachedMaxLock: true, Paused: true,
	}
	saveCycle(in)
	out := mustLoadCycle(7)
	assert.Equal(t, in, out)
}

// TestPauseGatesDeposits checks the pause bit blocks contribute but leaves
// the clock state alone.
func TestPauseGatesDeposits(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	fund(aliceAddr, 1000)

	as(ownerAddr)
	ret := PauseCycle(strptr("1|1"))
	assert.Equal(t, "paused|prj:1", *ret)
	assert.True(t, mustLoadCycle(1).Paused)
	assert.Equal(t, CycleStateActive, cycleStateOf(mustLoadCycle(1), nowUnix()))

	as(aliceAddr)
	allow("100")
	expectRevert(t, ErrFundingCyclePaused, func() {
		Contribute(strptr("1|2|10|"))
	})

	as(ownerAddr)
	ret = PauseCycle(strptr("1|0"))
	assert.Equal(t, "resumed|prj:1", *ret)
	contributeAs(t, aliceAddr, "1|2|10|", "100")
}

// TestPauseNeedsController checks strangers cannot flip the gate.
func TestPauseNeedsController(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)

	as(aliceAddr)
	expectRevert(t, ErrUnAuthorized, func() {
		PauseCycle(strptr("1|1"))
	})
}

// TestPauseExpiredCycleFails checks a finished cycle cannot be paused anymore.
func TestPauseExpiredCycleFails(t *testing.T) {
	setupEngine(t)
	createDefaultDao(t)
	advanceDays(31)

	as(ownerAddr)
	expectRevert(t, ErrBadOperationPeriod, func() {
		PauseCycle(strptr("1|1"))
	})
}
