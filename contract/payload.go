package contract

import (
	"strconv"
	"strings"
)

// Payload decoding. Call payloads are pipe-delimited fields; lists inside a
// field are comma-separated, records are colon-joined and semicolon-listed.
// Every malformed field reverts with BadPayload before any state is touched.

// parseUint64Field parses one decimal field or reverts.
func parseUint64Field(field string, what string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		fail(ErrBadPayload, "bad "+what+": "+field)
	}
	return v
}

// parseAmountField parses one human float amount field or reverts.
func parseAmountField(field string, what string) Amount {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		fail(ErrBadPayload, "bad "+what+": "+field)
	}
	return FloatToAmount(v)
}

// parseBoolField accepts 1/0 or true/false.
func parseBoolField(field string, what string) bool {
	switch strings.TrimSpace(field) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	fail(ErrBadPayload, "bad "+what+": "+field)
	return false
}

// parseUint64List parses a comma list like 0,2,5.
func parseUint64List(field string, what string) []uint64 {
	parts := strings.Split(field, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, parseUint64Field(p, what))
	}
	return out
}

// parseAmountList parses a comma list of human float amounts.
func parseAmountList(field string, what string) []Amount {
	parts := strings.Split(field, ",")
	out := make([]Amount, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, parseAmountField(p, what))
	}
	return out
}

// parseAuctionedPasses decodes the pricing curve field:
// salePrice:weight:saleAmount:communityAmount:reserved:voucher entries
// joined by semicolons. Voucher may be empty for tiers without an airdrop.
func parseAuctionedPasses(field string) []AuctionedPass {
	entries := strings.Split(field, ";")
	passes := make([]AuctionedPass, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		// the voucher field is last and may itself contain colons (contract:name)
		parts := strings.SplitN(entry, ":", 6)
		if len(parts) != 6 {
			fail(ErrBadPayload, "auctioned pass needs 6 fields: "+entry)
		}
		passes = append(passes, AuctionedPass{
			SalePrice:        parseAmountField(parts[0], "sale price"),
			Weight:           parseUint64Field(parts[1], "weight"),
			SaleAmount:       parseUint64Field(parts[2], "sale amount"),
			CommunityAmount:  parseUint64Field(parts[3], "community amount"),
			ReservedAmount:   parseUint64Field(parts[4], "reserved amount"),
			CommunityVoucher: AddressFromString(strings.TrimSpace(parts[5])),
		})
	}
	if len(passes) == 0 {
		fail(ErrBadPayload, "empty auctioned pass curve")
	}
	return passes
}

// parseCycleParams reads the four numeric cycle fields.
func parseCycleParams(duration, limit, target, lockRate string) CycleParams {
	return CycleParams{
		Duration:   parseUint64Field(duration, "duration"),
		CycleLimit: parseUint64Field(limit, "cycle limit"),
		Target:     parseAmountField(target, "target"),
		LockRate:   parseUint64Field(lockRate, "lock rate"),
	}
}

// splitPayload splits and checks the outer field count.
func splitPayload(payload *string, want int, op string) []string {
	if payload == nil {
		fail(ErrBadPayload, op+" needs a payload")
	}
	parts := strings.Split(*payload, "|")
	if len(parts) < want {
		fail(ErrBadPayload, op+" needs "+strconv.Itoa(want)+" fields")
	}
	return parts
}

// parseInitArgs decodes: governor|devTreasury
func parseInitArgs(payload *string) (governor string, devTreasury string) {
	parts := splitPayload(payload, 2, "init")
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// parseIssueArgs decodes: projectID|fees|capacities|multipliers
func parseIssueArgs(payload *string) IssueArgs {
	parts := splitPayload(payload, 4, "issue")
	return IssueArgs{
		ProjectID:   parseUint64Field(parts[0], "project id"),
		Fees:        parseAmountList(parts[1], "fee"),
		Capacities:  parseUint64List(parts[2], "capacity"),
		Multipliers: parseUint64List(parts[3], "multiplier"),
	}
}

// parseConfigureArgs decodes:
// projectID|duration|cycleLimit|target|lockRate|passes
func parseConfigureArgs(payload *string) ConfigureArgs {
	parts := splitPayload(payload, 6, "configure")
	return ConfigureArgs{
		ProjectID: parseUint64Field(parts[0], "project id"),
		Params:    parseCycleParams(parts[1], parts[2], parts[3], parts[4]),
		Passes:    parseAuctionedPasses(parts[5]),
	}
}

// parseContributeArgs decodes: projectID|tiers|amounts|memo (memo optional)
func parseContributeArgs(payload *string) ContributeArgs {
	parts := splitPayload(payload, 3, "contribute")
	args := ContributeArgs{
		ProjectID: parseUint64Field(parts[0], "project id"),
		Tiers:     parseUint64List(parts[1], "tier"),
		Amounts:   parseUint64List(parts[2], "amount"),
	}
	if len(parts) > 3 {
		args.Memo = parts[3]
	}
	return args
}

// parseCommunityArgs decodes: projectID|tier
func parseCommunityArgs(payload *string) (projectID uint64, tier uint64) {
	parts := splitPayload(payload, 2, "community contribute")
	return parseUint64Field(parts[0], "project id"), parseUint64Field(parts[1], "tier")
}

// parseTapArgs decodes: projectID|amount
func parseTapArgs(payload *string) (projectID uint64, amount Amount) {
	parts := splitPayload(payload, 2, "tap")
	return parseUint64Field(parts[0], "project id"), parseAmountField(parts[1], "amount")
}

// parseProjectArg decodes a lone projectID payload.
func parseProjectArg(payload *string, op string) uint64 {
	parts := splitPayload(payload, 1, op)
	return parseUint64Field(parts[0], "project id")
}

// parseClaimArgs decodes: projectID|cycleID
func parseClaimArgs(payload *string) (projectID uint64, cycleID uint64) {
	parts := splitPayload(payload, 2, "claim")
	return parseUint64Field(parts[0], "project id"), parseUint64Field(parts[1], "cycle id")
}

// parseUnlockArgs decodes: projectID|cycleID|amount|to
func parseUnlockArgs(payload *string) (projectID uint64, cycleID uint64, amount Amount, to string) {
	parts := splitPayload(payload, 4, "unlock")
	return parseUint64Field(parts[0], "project id"),
		parseUint64Field(parts[1], "cycle id"),
		parseAmountField(parts[2], "amount"),
		strings.TrimSpace(parts[3])
}

// parseAddBalanceArgs decodes: projectID|amount
func parseAddBalanceArgs(payload *string) (projectID uint64, amount Amount) {
	parts := splitPayload(payload, 2, "add to balance")
	return parseUint64Field(parts[0], "project id"), parseAmountField(parts[1], "amount")
}

// parsePauseArgs decodes: projectID|paused
func parsePauseArgs(payload *string) (projectID uint64, paused bool) {
	parts := splitPayload(payload, 2, "pause")
	return parseUint64Field(parts[0], "project id"), parseBoolField(parts[1], "paused flag")
}

// parseCreateDaoArgs decodes:
// handle|fees|capacities|multipliers|duration|cycleLimit|target|lockRate|passes|payouts
// The payouts field may be empty.
func parseCreateDaoArgs(payload *string) CreateDaoArgs {
	parts := splitPayload(payload, 9, "create dao")
	args := CreateDaoArgs{
		Handle: strings.TrimSpace(parts[0]),
		Issue: IssueArgs{
			Fees:        parseAmountList(parts[1], "fee"),
			Capacities:  parseUint64List(parts[2], "capacity"),
			Multipliers: parseUint64List(parts[3], "multiplier"),
		},
		Params: parseCycleParams(parts[4], parts[5], parts[6], parts[7]),
		Passes: parseAuctionedPasses(parts[8]),
	}
	if len(parts) > 9 && strings.TrimSpace(parts[9]) != "" {
		args.Payouts = decodePayoutSplits(parts[9])
	}
	return args
}
