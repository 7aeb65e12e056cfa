package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Payload Decoding Tests
// =============================================================================

// TestParseAuctionedPasses checks the curve wire format, including vouchers
// that carry a colon of their own.
func TestParseAuctionedPasses(t *testing.T) {
	sdkReset(t)
	passes := parseAuctionedPasses("8:8:50:5:3:contract:og-voucher;4:2:100:10:0:")
	require.Len(t, passes, 2)

	assert.Equal(t, FloatToAmount(8), passes[0].SalePrice)
	assert.Equal(t, uint64(8), passes[0].Weight)
	assert.Equal(t, uint64(50), passes[0].SaleAmount)
	assert.Equal(t, uint64(5), passes[0].CommunityAmount)
	assert.Equal(t, uint64(3), passes[0].ReservedAmount)
	assert.Equal(t, AddressFromString("contract:og-voucher"), passes[0].CommunityVoucher)

	assert.True(t, passes[1].CommunityVoucher.IsZero())
}

// TestParseAuctionedPassesBadShapes checks malformed curves revert early.
func TestParseAuctionedPassesBadShapes(t *testing.T) {
	sdkReset(t)
	expectRevert(t, ErrBadPayload, func() {
		parseAuctionedPasses("8:8:50")
	})
	expectRevert(t, ErrBadPayload, func() {
		parseAuctionedPasses("")
	})
	expectRevert(t, ErrBadPayload, func() {
		parseAuctionedPasses("x:8:50:5:0:;1:1:1:1:1:")
	})
}

// TestParseContributeArgs checks lists, optional memo and the field count.
func TestParseContributeArgs(t *testing.T) {
	sdkReset(t)
	args := parseContributeArgs(strptr("3|0,2|2,10|hello there"))
	assert.Equal(t, uint64(3), args.ProjectID)
	assert.Equal(t, []uint64{0, 2}, args.Tiers)
	assert.Equal(t, []uint64{2, 10}, args.Amounts)
	assert.Equal(t, "hello there", args.Memo)

	noMemo := parseContributeArgs(strptr("3|0|1"))
	assert.Equal(t, "", noMemo.Memo)

	expectRevert(t, ErrBadPayload, func() {
		parseContributeArgs(strptr("3|0"))
	})
	expectRevert(t, ErrBadPayload, func() {
		parseContributeArgs(nil)
	})
}

// TestParseCreateDaoArgs checks the widest payload end to end.
func TestParseCreateDaoArgs(t *testing.T) {
	sdkReset(t)
	args := parseCreateDaoArgs(strptr(defaultDaoPayload))
	assert.Equal(t, "demo-dao", args.Handle)
	assert.Equal(t, []Amount{FloatToAmount(10), FloatToAmount(5), FloatToAmount(1)}, args.Issue.Fees)
	assert.Equal(t, []uint64{100, 200, 400}, args.Issue.Capacities)
	assert.Equal(t, []uint64{4, 2, 1}, args.Issue.Multipliers)
	assert.Equal(t, uint64(30), args.Params.Duration)
	assert.Equal(t, uint64(4), args.Params.CycleLimit)
	assert.Equal(t, FloatToAmount(500), args.Params.Target)
	assert.Equal(t, uint64(4000), args.Params.LockRate)
	require.Len(t, args.Passes, 3)
	require.Len(t, args.Payouts, 2)
	assert.Equal(t, uint64(9000), args.Payouts[0].PercentBP)
}

// TestParseAmountsScale checks float payload fields land on the milli scale.
func TestParseAmountsScale(t *testing.T) {
	sdkReset(t)
	assert.Equal(t, Amount(1234), parseAmountField("1.234", "x"))
	assert.Equal(t, Amount(500000), parseAmountField("500", "x"))
	expectRevert(t, ErrBadPayload, func() {
		parseAmountField("abc", "x")
	})
	expectRevert(t, ErrBadPayload, func() {
		parseUint64Field("-1", "x")
	})
}

// TestPayoutSplitWire checks the encode/decode pair stays symmetrical.
func TestPayoutSplitWire(t *testing.T) {
	sdkReset(t)
	in := []PayoutSplit{
		{Beneficiary: ownerAddr, PercentBP: 9000},
		{Beneficiary: AddressFromString("contract:vault"), PercentBP: 1000},
	}
	out := decodePayoutSplits(encodePayoutSplits(in))
	assert.Equal(t, in, out)
}
