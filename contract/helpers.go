package contract

import (
	"strconv"
	"strings"
	"time"

	"passbooth_dao/sdk"
)

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextCycleID bumps the protocol-wide cycle counter; ids are strictly
// increasing and never reused.
func nextCycleID() uint64 {
	n := getCount(CyclesCount) + 1
	setCount(CyclesCount, n)
	return n
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or env payload building.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// UInt64SliceToString converts tier/amount lists into 1,2,5 style event text.
// Example payload: UInt64SliceToString([]uint64{0,2,3})
func UInt64SliceToString(nums []uint64) string {
	strNums := make([]string, len(nums))
	for i, n := range nums {
		strNums[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(strNums, ",")
}

// AmountToString renders fixed-point amounts as raw milli units for event lines.
func AmountToString(a Amount) string {
	return strconv.FormatInt(int64(a), 10)
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Checked Arithmetic
// -----------------------------------------------------------------------------

// mulPrice prices a pass count. Reverts when the product leaves the int64
// range, so oversized counts cannot wrap into a small total.
func mulPrice(price Amount, count uint64) Amount {
	if price < 0 {
		fail(ErrBadPayload, "negative price")
	}
	if price == 0 || count == 0 {
		return 0
	}
	if count > uint64(MaxAmount/price) {
		fail(ErrBadPayload, "priced total out of range")
	}
	return price * Amount(count)
}

// addAmounts sums two non-negative amounts with an overflow check.
func addAmounts(a Amount, b Amount) Amount {
	if a > MaxAmount-b {
		fail(ErrBadPayload, "amount total out of range")
	}
	return a + b
}

// mulUint64 multiplies with an overflow check, reverting as BadPayload.
func mulUint64(a uint64, b uint64, what string) uint64 {
	if a != 0 && b > ^uint64(0)/a {
		fail(ErrBadPayload, what+" out of range")
	}
	return a * b
}

// addUint64 sums with an overflow check, reverting as BadPayload.
func addUint64(a uint64, b uint64, what string) uint64 {
	if a > ^uint64(0)-b {
		fail(ErrBadPayload, what+" out of range")
	}
	return a + b
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
