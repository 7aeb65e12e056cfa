package contract

import (
	"strconv"
	"strings"

	"passbooth_dao/sdk"
)

// External collaborators. The engine owns all cycle/tier/stake state itself;
// these interfaces are the only places it reaches out: the handle registry,
// the payout-split table, the pass token and the per-tier voucher tokens.
// Real implementations go through inter-contract calls; host builds install
// mocks so go test can drive every flow without a chain.

// Registry resolves who controls a project and registers new ones.
type Registry interface {
	ControllerOf(projectID uint64) sdk.Address
	CreateProject(owner sdk.Address, handle string) uint64
}

// PayoutStore yields the payout splits consumed inside tap.
type PayoutStore interface {
	PayoutSplitsOf(cycleID uint64) []PayoutSplit
	SetPayoutSplits(projectID uint64, cycleID uint64, splits []PayoutSplit)
}

// PassToken mints membership passes at the end of contribute/airdrop/claim.
type PassToken interface {
	BatchMint(user sdk.Address, tiers []uint64, amounts []uint64)
}

// Voucher checks ownership of a community allow-list token.
type Voucher interface {
	BalanceOf(voucher sdk.Address, owner sdk.Address) int64
}

// Collaborator contract ids on the network. The registry entry is also where
// createDao registers fresh projects.
const (
	registryContractID    = "contract:pass-registry"
	payoutStoreContractID = "contract:pass-payouts"
	passTokenContractID   = "contract:pass-token"
)

var (
	registry    Registry
	payoutStore PayoutStore
	passToken   PassToken
	voucher     Voucher
)

// Chain implementations are the default; host-side tests swap in the mocks
// through InitCollaborators(true) before driving any entry point.
func init() {
	InitCollaborators(false)
}

// InitCollaborators wires either the on-chain implementations or the
// in-memory mocks, mirroring the mock-vs-real switch used for state.
func InitCollaborators(mock bool) {
	if mock {
		registry = NewMockRegistry()
		payoutStore = NewMockPayoutStore()
		passToken = NewMockPassToken()
		voucher = NewMockVoucher()
	} else {
		registry = &chainRegistry{}
		payoutStore = &chainPayoutStore{}
		passToken = &chainPassToken{}
		voucher = &chainVoucher{}
	}
}

// -----------------------------------------------------------------------------
// On-chain implementations
// -----------------------------------------------------------------------------

type chainRegistry struct{}

func (r *chainRegistry) ControllerOf(projectID uint64) sdk.Address {
	ptr := sdk.ContractStateGet(registryContractID, "controller:"+UInt64ToString(projectID))
	if ptr == nil {
		return ""
	}
	return AddressFromString(*ptr)
}

func (r *chainRegistry) CreateProject(owner sdk.Address, handle string) uint64 {
	payload := owner.String() + "|" + handle
	ret := sdk.ContractCall(registryContractID, "projects_create", payload, nil)
	if ret == nil {
		sdk.Abort("registry create returned nothing")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(*ret), 10, 64)
	if err != nil {
		sdk.Abort("registry returned bad project id: " + *ret)
	}
	return id
}

type chainPayoutStore struct{}

func (p *chainPayoutStore) PayoutSplitsOf(cycleID uint64) []PayoutSplit {
	ptr := sdk.ContractStateGet(payoutStoreContractID, "splits:"+UInt64ToString(cycleID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodePayoutSplits(*ptr)
}

func (p *chainPayoutStore) SetPayoutSplits(projectID uint64, cycleID uint64, splits []PayoutSplit) {
	payload := UInt64ToString(projectID) + "|" + UInt64ToString(cycleID) + "|" + encodePayoutSplits(splits)
	sdk.ContractCall(payoutStoreContractID, "payouts_set", payload, nil)
}

type chainPassToken struct{}

func (t *chainPassToken) BatchMint(user sdk.Address, tiers []uint64, amounts []uint64) {
	payload := user.String() + "|" + UInt64SliceToString(tiers) + "|" + UInt64SliceToString(amounts)
	sdk.ContractCall(passTokenContractID, "pass_batch_mint", payload, nil)
}

type chainVoucher struct{}

func (v *chainVoucher) BalanceOf(voucherAddr sdk.Address, owner sdk.Address) int64 {
	ptr := sdk.ContractStateGet(voucherAddr.String(), "balance:"+owner.String())
	if ptr == nil || *ptr == "" {
		return 0
	}
	bal, _ := strconv.ParseInt(*ptr, 10, 64)
	return bal
}

// encodePayoutSplits flattens splits to addr:bp;addr:bp wire text.
func encodePayoutSplits(splits []PayoutSplit) string {
	parts := make([]string, len(splits))
	for i, s := range splits {
		parts[i] = s.Beneficiary.String() + ":" + strconv.FormatUint(s.PercentBP, 10)
	}
	return strings.Join(parts, ";")
}

// decodePayoutSplits parses the addr:bp;addr:bp wire text back.
func decodePayoutSplits(data string) []PayoutSplit {
	entries := strings.Split(data, ";")
	splits := make([]PayoutSplit, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.LastIndex(entry, ":")
		if idx <= 0 {
			continue
		}
		bp, err := strconv.ParseUint(entry[idx+1:], 10, 64)
		if err != nil {
			continue
		}
		splits = append(splits, PayoutSplit{
			Beneficiary: AddressFromString(entry[:idx]),
			PercentBP:   bp,
		})
	}
	return splits
}

// -----------------------------------------------------------------------------
// Mocks (host build + tests)
// -----------------------------------------------------------------------------

// MockRegistry keeps controllers in memory and hands out sequential ids.
type MockRegistry struct {
	Controllers map[uint64]sdk.Address
	NextID      uint64
}

func NewMockRegistry() *MockRegistry {
	return &MockRegistry{Controllers: map[uint64]sdk.Address{}, NextID: 1}
}

func (r *MockRegistry) ControllerOf(projectID uint64) sdk.Address {
	return r.Controllers[projectID]
}

func (r *MockRegistry) CreateProject(owner sdk.Address, handle string) uint64 {
	id := r.NextID
	r.NextID++
	r.Controllers[id] = owner
	return id
}

// SetController lets tests hand project control to an address directly.
func (r *MockRegistry) SetController(projectID uint64, addr sdk.Address) {
	r.Controllers[projectID] = addr
	if projectID >= r.NextID {
		r.NextID = projectID + 1
	}
}

// MockPayoutStore keeps the split table in memory per cycle.
type MockPayoutStore struct {
	Splits map[uint64][]PayoutSplit
}

func NewMockPayoutStore() *MockPayoutStore {
	return &MockPayoutStore{Splits: map[uint64][]PayoutSplit{}}
}

func (p *MockPayoutStore) PayoutSplitsOf(cycleID uint64) []PayoutSplit {
	return p.Splits[cycleID]
}

func (p *MockPayoutStore) SetPayoutSplits(projectID uint64, cycleID uint64, splits []PayoutSplit) {
	p.Splits[cycleID] = splits
}

// MintRecord captures one pass-token mint for assertions.
type MintRecord struct {
	User    sdk.Address
	Tiers   []uint64
	Amounts []uint64
}

// MockPassToken records mints instead of touching a token contract.
type MockPassToken struct {
	Mints []MintRecord
}

func NewMockPassToken() *MockPassToken {
	return &MockPassToken{}
}

func (t *MockPassToken) BatchMint(user sdk.Address, tiers []uint64, amounts []uint64) {
	t.Mints = append(t.Mints, MintRecord{User: user, Tiers: tiers, Amounts: amounts})
}

// MockVoucher answers balance checks from a settable map.
type MockVoucher struct {
	Balances map[string]int64 // voucher|owner -> balance
}

func NewMockVoucher() *MockVoucher {
	return &MockVoucher{Balances: map[string]int64{}}
}

func (v *MockVoucher) BalanceOf(voucherAddr sdk.Address, owner sdk.Address) int64 {
	return v.Balances[voucherAddr.String()+"|"+owner.String()]
}

// SetBalance seeds voucher ownership for tests.
func (v *MockVoucher) SetBalance(voucherAddr sdk.Address, owner sdk.Address, bal int64) {
	v.Balances[voucherAddr.String()+"|"+owner.String()] = bal
}
