package contract

import (
	"passbooth_dao/sdk"
)

// Treasury orchestrator. Every entry point that moves value lives here:
// validation first, ledger bookkeeping second, asset movement last, so a
// revert anywhere leaves no partial state behind.

// contractInit performs the one-time setup. Sender becomes the owner.
func contractInit(governor sdk.Address, devTreasury sdk.Address) {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}
	if !governor.IsValid() || !devTreasury.IsValid() {
		fail(ErrBadPayload, "invalid governor or dev treasury address")
	}
	owner := getSenderAddress()
	saveContractConfig(&ContractConfig{
		Owner:       owner,
		Governor:    governor,
		DevTreasury: devTreasury,
	})
	emitInit(owner, governor)
}

// activeCycleOf loads the project's current cycle and requires it to be
// inside its window and accepting deposits.
func activeCycleOf(projectID uint64, now int64) *FundingCycle {
	fc, ok := currentCycleOf(projectID)
	if !ok {
		fail(ErrFundingCycleNotExist, "project "+UInt64ToString(projectID)+" has no funding cycle")
	}
	if cycleStateOf(fc, now) != CycleStateActive {
		fail(ErrBadOperationPeriod, "funding cycle "+UInt64ToString(fc.ID)+" is over")
	}
	if fc.Paused {
		fail(ErrFundingCyclePaused, "funding cycle "+UInt64ToString(fc.ID)+" is paused")
	}
	return fc
}

// contribute books a purchase: price the requested passes off the frozen
// curve, draw exactly that total against the payer's transfer allowance,
// then stake the entries. Excess allowance never leaves the payer.
func contribute(args *ContributeArgs, payer sdk.Address) {
	requireInitialized()
	if len(args.Tiers) == 0 || len(args.Tiers) != len(args.Amounts) {
		fail(ErrSizeMismatch, "tiers and amounts must align")
	}
	if len(args.Memo) > MaxMemoLength {
		fail(ErrBadPayload, "memo too long")
	}
	fc := activeCycleOf(args.ProjectID, nowUnix())

	var total Amount
	for i, tier := range args.Tiers {
		if args.Amounts[i] == 0 {
			continue
		}
		pass := loadAuctionedPass(fc.ID, tier)
		total = addAmounts(total, mulPrice(pass.SalePrice, args.Amounts[i]))
	}
	if total <= 0 {
		fail(ErrBadPayload, "nothing priced to contribute")
	}

	allow := getFirstTransferAllow()
	if allow == nil || allow.Limit < total {
		fail(ErrInsufficientBalance, "transfer allowance does not cover the purchase")
	}
	sdk.HiveDraw(AmountToInt64(total), treasuryAsset)
	addProjectBalance(args.ProjectID, total)
	for i, tier := range args.Tiers {
		if args.Amounts[i] > 0 {
			decrementRemaining(fc.ID, tier, args.Amounts[i])
		}
	}
	recordDeposit(fc, total)
	stakePurchase(fc.ID, payer, args.Tiers, args.Amounts)
	emitPay(fc.ID, payer, total, args.Tiers, args.Amounts)
}

// communityContribute hands out one free community pass of the tier to a
// voucher holder. One per user per cycle, capacity-bounded.
func communityContribute(projectID uint64, tier uint64, user sdk.Address) {
	requireInitialized()
	fc := activeCycleOf(projectID, nowUnix())
	pass := loadAuctionedPass(fc.ID, tier)
	if pass.CommunityVoucher.IsZero() || voucher.BalanceOf(pass.CommunityVoucher, user) <= 0 {
		fail(ErrUnAuthorized, user.String()+" holds no community voucher for tier "+UInt64ToString(tier))
	}
	claimAirdropSlot(fc.ID, tier, user, pass)
	decrementRemaining(fc.ID, tier, 1)
	passToken.BatchMint(user, []uint64{tier}, []uint64{1})
	emitAirdrop(fc.ID, user, tier)
}

// tap disburses tappable funds to the project's payout splits, taking the
// lock-rate share as a protocol fee to the dev treasury first.
func tap(projectID uint64, amount Amount, by sdk.Address) {
	requireInitialized()
	requireController(projectID, by)
	fc, ok := currentCycleOf(projectID)
	if !ok {
		fail(ErrFundingCycleNotExist, "project "+UInt64ToString(projectID)+" has no funding cycle")
	}
	fee := recordTap(fc, amount, nowUnix())
	removeProjectBalance(projectID, amount)

	if fee > 0 {
		sdk.HiveTransfer(devTreasuryAddress(), AmountToInt64(fee), treasuryAsset)
	}
	remainder := amount - fee
	paid := Amount(0)
	for _, split := range payoutStore.PayoutSplitsOf(fc.ID) {
		share := Amount(int64(remainder) * int64(split.PercentBP) / BasisPoints)
		if share <= 0 {
			continue
		}
		sdk.HiveTransfer(split.Beneficiary, AmountToInt64(share), treasuryAsset)
		paid += share
	}
	// rounding dust and any unallocated share go to the controller
	if leftover := remainder - paid; leftover > 0 {
		sdk.HiveTransfer(by, AmountToInt64(leftover), treasuryAsset)
	}
	emitTap(fc.ID, amount, fee, by)
}

// cycleOfProject loads a cycle by explicit id and checks project membership.
// Callers address expired cycles directly, so reconfiguring a project never
// strands an earlier cycle's contributors.
func cycleOfProject(projectID uint64, cycleID uint64) *FundingCycle {
	fc, ok := loadCycle(cycleID)
	if !ok {
		fail(ErrFundingCycleNotExist, "funding cycle "+UInt64ToString(cycleID)+" not found")
	}
	if fc.ProjectID != projectID {
		fail(ErrFundingCycleNotExist, "funding cycle "+UInt64ToString(cycleID)+
			" does not belong to project "+UInt64ToString(projectID))
	}
	return fc
}

// claimPassOrRefund reconciles one user after the cycle expired: mint what
// the sale capacity covers, refund the sale value of the rest. Value in
// equals passes minted plus refund out.
func claimPassOrRefund(projectID uint64, cycleID uint64, user sdk.Address) {
	requireInitialized()
	fc := cycleOfProject(projectID, cycleID)
	now := nowUnix()
	if cycleStateOf(fc, now) != CycleStateExpired {
		fail(ErrBadOperationPeriod, "claims open once the cycle expired")
	}
	if claimedOf(fc.ID, user) {
		fail(ErrAlreadyClaimed, user.String()+" already reconciled cycle "+UInt64ToString(fc.ID))
	}
	counts := userPassCounts(fc.ID, user)
	if len(counts) == 0 {
		fail(ErrBadPayload, user.String()+" staked nothing in cycle "+UInt64ToString(fc.ID))
	}
	setClaimed(fc.ID, user)

	var mintTiers []uint64
	var mintAmounts []uint64
	var refund Amount
	for tier := uint64(0); tier < auctionedPassCount(fc.ID); tier++ {
		count, ok := counts[tier]
		if !ok || count == 0 {
			continue
		}
		// tier capacity was consumed at stake time; here only the sale cap
		// decides how much actually mints
		pass := loadAuctionedPass(fc.ID, tier)
		mintQty := count
		if mintQty > pass.SaleAmount {
			mintQty = pass.SaleAmount
		}
		if mintQty > 0 {
			mintTiers = append(mintTiers, tier)
			mintAmounts = append(mintAmounts, mintQty)
		}
		refund = addAmounts(refund, mulPrice(pass.SalePrice, count-mintQty))
	}
	if len(mintTiers) > 0 {
		passToken.BatchMint(user, mintTiers, mintAmounts)
	}
	if refund > 0 {
		recordRefund(fc, refund)
		removeProjectBalance(projectID, refund)
		sdk.HiveTransfer(user, AmountToInt64(refund), treasuryAsset)
	}
	emitClaim(fc.ID, user, refund)
}

// unLockTreasury releases escrowed funds of an expired cycle. Governor only.
func unLockTreasury(projectID uint64, cycleID uint64, amount Amount, to sdk.Address, by sdk.Address) {
	requireInitialized()
	if !isGovernor(by) {
		fail(ErrOnlyGovernor, by.String()+" is not the governor")
	}
	fc := cycleOfProject(projectID, cycleID)
	recordUnlock(fc, amount, nowUnix())
	removeProjectBalance(projectID, amount)
	sdk.HiveTransfer(to, AmountToInt64(amount), treasuryAsset)
	emitUnlock(fc.ID, amount, to, by)
}

// addToBalance is a plain top-up of project custody. If a cycle is running
// the deposit is booked through its lock split so the ledger stays whole.
func addToBalance(projectID uint64, amount Amount, by sdk.Address) {
	requireInitialized()
	if amount <= 0 {
		fail(ErrBadPayload, "amount must be positive")
	}
	allow := getFirstTransferAllow()
	if allow == nil || allow.Limit < amount {
		fail(ErrInsufficientBalance, "transfer allowance does not cover the deposit")
	}
	sdk.HiveDraw(AmountToInt64(amount), treasuryAsset)
	addProjectBalance(projectID, amount)
	if fc, ok := currentCycleOf(projectID); ok && cycleStateOf(fc, nowUnix()) == CycleStateActive {
		recordDeposit(fc, amount)
	}
	emitAddBalance(projectID, amount, by)
}

// setCyclePause lets the project controller gate deposits mid-cycle.
func setCyclePause(projectID uint64, paused bool, by sdk.Address) {
	requireInitialized()
	requireController(projectID, by)
	fc, ok := currentCycleOf(projectID)
	if !ok {
		fail(ErrFundingCycleNotExist, "project "+UInt64ToString(projectID)+" has no funding cycle")
	}
	setCyclePaused(fc, paused, nowUnix())
	emitPause(fc.ID, paused, by)
}

// setDevTreasury repoints the protocol fee receiver. Owner only.
func setDevTreasury(addr sdk.Address, by sdk.Address) {
	requireInitialized()
	if !isContractOwner(by) {
		fail(ErrUnAuthorized, by.String()+" is not the contract owner")
	}
	if !addr.IsValid() {
		fail(ErrBadPayload, "invalid dev treasury address")
	}
	cfg := loadContractConfig()
	cfg.DevTreasury = addr
	saveContractConfig(cfg)
	emitDevTreasury(addr, by)
}

// createDao bootstraps a project in one shot: registry entry, tier set,
// first funding cycle and payout table. Any failure reverts the whole call.
func createDao(args *CreateDaoArgs, by sdk.Address) (projectID uint64, cycleID uint64) {
	requireInitialized()
	if args.Handle == "" {
		fail(ErrBadPayload, "empty project handle")
	}
	projectID = registry.CreateProject(by, args.Handle)
	issue := args.Issue
	issue.ProjectID = projectID
	issueTiers(&issue)
	emitIssue(projectID, uint64(len(issue.Fees)), by)

	res := configureCycle(&ConfigureArgs{
		ProjectID: projectID,
		Params:    args.Params,
		Passes:    args.Passes,
	}, by)
	cycleID = res.Cycle.ID
	if len(args.Payouts) > 0 {
		var totalBP uint64
		for _, p := range args.Payouts {
			totalBP += p.PercentBP
		}
		if totalBP > BasisPoints {
			fail(ErrBadPayload, "payout splits above 100 percent")
		}
		payoutStore.SetPayoutSplits(projectID, cycleID, args.Payouts)
	}
	emitCreateDao(projectID, cycleID, by)
	return projectID, cycleID
}
