package contract

import "passbooth_dao/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// cycleKey builds the storage key for a funding cycle by id.
func cycleKey(id uint64) string {
	var buf [9]byte
	buf[0] = kCycle
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// currentCycleKey maps a project to its newest cycle id.
func currentCycleKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kCurrentCycle
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}

// tierKey addresses a frozen tier record inside a project's set.
func tierKey(projectID uint64, index uint64) string {
	var buf [17]byte
	buf[0] = kTier
	packU64LEInline(projectID, buf[1:])
	packU64LEInline(index, buf[9:])
	return string(buf[:])
}

// tierCountKey stores how many tiers a project issued.
func tierCountKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kTierCount
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}

// auctionedPassKey addresses the pricing curve entry per cycle + tier index.
func auctionedPassKey(cycleID uint64, index uint64) string {
	var buf [17]byte
	buf[0] = kAuctionedPass
	packU64LEInline(cycleID, buf[1:])
	packU64LEInline(index, buf[9:])
	return string(buf[:])
}

// cycleTierKey addresses the live tier instance of one cycle.
func cycleTierKey(cycleID uint64, index uint64) string {
	var buf [17]byte
	buf[0] = kCycleTier
	packU64LEInline(cycleID, buf[1:])
	packU64LEInline(index, buf[9:])
	return string(buf[:])
}

// passCountKey stores the curve size per cycle.
func passCountKey(cycleID uint64) string {
	var buf [9]byte
	buf[0] = kPassCount
	packU64LEInline(cycleID, buf[1:])
	return string(buf[:])
}

// stakeKey mixes cycle id plus user bytes to avoid nested maps in host storage.
func stakeKey(cycleID uint64, user sdk.Address) string {
	userStr := AddressToString(user)
	buf := make([]byte, 0, 1+8+len(userStr))
	buf = append(buf, kStake)
	buf = packU64LE(cycleID, buf)
	buf = append(buf, userStr...)
	return string(buf)
}

// tierStakedKey tracks the total staked pass count per cycle + tier.
func tierStakedKey(cycleID uint64, tier uint64) string {
	var buf [17]byte
	buf[0] = kTierStaked
	packU64LEInline(cycleID, buf[1:])
	packU64LEInline(tier, buf[9:])
	return string(buf[:])
}

// claimFlagKey is the one-shot reconciliation marker per user + cycle.
func claimFlagKey(cycleID uint64, user sdk.Address) string {
	userStr := AddressToString(user)
	buf := make([]byte, 0, 1+8+len(userStr))
	buf = append(buf, kClaimFlag)
	buf = packU64LE(cycleID, buf)
	buf = append(buf, userStr...)
	return string(buf)
}

// airdropFlagKey mirrors claim flags but for the community airdrop path.
func airdropFlagKey(cycleID uint64, user sdk.Address) string {
	userStr := AddressToString(user)
	buf := make([]byte, 0, 1+8+len(userStr))
	buf = append(buf, kAirdropFlag)
	buf = packU64LE(cycleID, buf)
	buf = append(buf, userStr...)
	return string(buf)
}

// airdropCountKey counts community passes already handed out per cycle + tier.
func airdropCountKey(cycleID uint64, tier uint64) string {
	var buf [17]byte
	buf[0] = kAirdropCount
	packU64LEInline(cycleID, buf[1:])
	packU64LEInline(tier, buf[9:])
	return string(buf[:])
}

// projectBalanceKey holds the custody balance per project.
func projectBalanceKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kProjectBalance
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}
