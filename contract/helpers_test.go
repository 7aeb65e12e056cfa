package contract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passbooth_dao/sdk"
)

const (
	ownerAddr    = sdk.Address("hive:owner")
	governorAddr = sdk.Address("hive:governor")
	devFundAddr  = sdk.Address("hive:devfund")
	aliceAddr    = sdk.Address("hive:alice")
	bobAddr      = sdk.Address("hive:bob")
	voucherAddr  = sdk.Address("contract:og-voucher")
)

// 2025-01-01T00:00:00Z
const baseClock int64 = 1735689600

// sdkReset wipes the host double and mocks without running contract init,
// for tests that stay below the entry points.
func sdkReset(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	InitCollaborators(true)
}

// setupEngine resets the host double, installs the collaborator mocks and
// runs contract init with the standard owner/governor/devfund trio.
func setupEngine(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	InitCollaborators(true)
	setClock(baseClock)
	as(ownerAddr)
	ret := ContractInit(strptr(governorAddr.String() + "|" + devFundAddr.String()))
	require.Equal(t, "initialized", *ret)
}

// setClock pins the chain clock and starts a fresh tx so the cached env
// picks the new timestamp up.
func setClock(unix int64) {
	sdk.MockSetTimestamp(strconv.FormatInt(unix, 10))
	sdk.MockSetTx("clock-" + strconv.FormatInt(unix, 10))
}

// advanceDays fast-forwards the clock past cycle boundaries.
func advanceDays(days int64) {
	setClock(baseClock + days*DaySeconds)
}

// as switches the signing account for the next calls.
func as(addr sdk.Address) {
	sdk.MockSetSender(addr)
}

// allow attaches a hive transfer.allow intent with the given human limit.
func allow(limit string) {
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": sdk.AssetHive.String(), "limit": limit},
	}})
}

// fund credits an account on the mock ledger.
func fund(addr sdk.Address, hive int64) {
	sdk.MockDeposit(addr, hive*AmountScale, sdk.AssetHive)
}

func mockRegistry() *MockRegistry   { return registry.(*MockRegistry) }
func mockPayouts() *MockPayoutStore { return payoutStore.(*MockPayoutStore) }
func mockPasses() *MockPassToken    { return passToken.(*MockPassToken) }
func mockVoucher() *MockVoucher     { return voucher.(*MockVoucher) }

// expectRevert runs fn, asserts it reverts with the given symbol and rolls
// the host state back the way the chain would.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	restore := sdk.MockSnapshot()
	defer restore()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected revert %s, call succeeded", symbol)
		}
		re, ok := r.(sdk.RevertError)
		require.True(t, ok, "panic was not a revert: %v", r)
		assert.Equal(t, symbol, re.Symbol, "wrong revert symbol: %s", re.Msg)
	}()
	fn()
}

// Standard dao fixture: three tiers priced 8/4/1 hive, weights 8/2/1
// (multipliers 4/2/1), sale caps 50/100/200, community 5/10/20, a 30 day
// cycle with a 500 hive target locking 40%, payouts 90/10 owner/bob.
const defaultDaoPayload = "demo-dao|10,5,1|100,200,400|4,2,1|30|4|500|4000|" +
	"8:8:50:5:0:contract:og-voucher;4:2:100:10:0:;1:1:200:20:0:|" +
	"hive:owner:9000;hive:bob:1000"

// createDefaultDao bootstraps the standard fixture as the owner and returns
// the project id.
func createDefaultDao(t *testing.T) uint64 {
	t.Helper()
	as(ownerAddr)
	ret := CreateDao(strptr(defaultDaoPayload))
	require.Equal(t, "dao|prj:1|fc:1", *ret)
	return 1
}

// contributeAs buys passes with a matching allowance already attached.
func contributeAs(t *testing.T, user sdk.Address, payload string, limit string) {
	t.Helper()
	as(user)
	allow(limit)
	ret := Contribute(strptr(payload))
	require.Contains(t, *ret, "paid|")
}

// requireWholeCycle asserts the ledger invariant on a cycle record.
func requireWholeCycle(t *testing.T, fc *FundingCycle) {
	t.Helper()
	require.Equal(t, fc.Deposited, fc.Locked+fc.Tappable,
		"cycle %d: deposited must equal locked plus tappable", fc.ID)
	require.LessOrEqual(t, fc.Locked, fc.Target, "cycle %d: locked above target", fc.ID)
}
