//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// Host build: everything the wasm imports provide is simulated in memory so
// the contract logic can run inside plain go test. The double is stateful on
// purpose: balances move, transfers are recorded, state survives between
// calls until MockReset.

// TransferRecord captures a single outgoing HiveTransfer for assertions.
type TransferRecord struct {
	To     Address
	Amount int64
	Asset  Asset
}

// DrawRecord captures a HiveDraw (caller into contract custody).
type DrawRecord struct {
	From   Address
	Amount int64
	Asset  Asset
}

type mockHost struct {
	kv        map[string]string
	env       Env
	balances  map[string]int64 // address|asset -> ledger balance
	transfers []TransferRecord
	draws     []DrawRecord
	logs      []string
	// foreign contract state for ContractStateGet
	contractKV map[string]map[string]string
	// optional handler for inter-contract calls; nil returns nil result
	callHandler func(contractId, method, payload string) *string
	// per-sender transfer.allow consumption guard
	drawn map[string]int64
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		kv:         map[string]string{},
		balances:   map[string]int64{},
		contractKV: map[string]map[string]string{},
		drawn:      map[string]int64{},
		env: Env{
			ContractId:  "contract:passbooth",
			TxId:        "tx-0",
			BlockId:     "block-0",
			BlockHeight: 1,
			Timestamp:   "2025-01-01T00:00:00",
			Sender:      Sender{Address: "hive:tester"},
			Caller:      Caller{Address: "hive:tester"},
			Payer:       "hive:tester",
		},
	}
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// Log records the line so tests can assert on emitted events.
func Log(s string) {
	host.logs = append(host.logs, s)
}

// Abort mirrors the wasm abort by panicking with the raw message.
func Abort(msg string) {
	panic(msg)
}

// Revert raises the typed RevertError tests unwrap via recover.
func Revert(msg string, symbol string) {
	panic(RevertError{Symbol: symbol, Msg: msg})
}

func StateSetObject(key string, value string) {
	host.kv[key] = value
}

func StateGetObject(key string) *string {
	val, ok := host.kv[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(host.kv, key)
}

func GetEnv() Env {
	return host.env
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "block.timestamp":
		val = host.env.Timestamp
	case "tx.id":
		val = host.env.TxId
	case "block.height":
		val = strconv.FormatUint(host.env.BlockHeight, 10)
	case "contract.id":
		val = host.env.ContractId
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return host.balances[balanceKey(address, asset)]
}

// HiveDraw moves funds from the tx sender into contract custody, enforcing
// both the sender balance and the transfer.allow limit like the real host.
func HiveDraw(amount int64, asset Asset) {
	sender := host.env.Sender.Address
	key := balanceKey(sender, asset)
	if host.balances[key] < amount {
		Revert(fmt.Sprintf("draw %d exceeds balance of %s", amount, sender), "ledger_error")
	}
	limit, ok := transferAllowLimit(host.env.Intents, asset)
	if !ok {
		Revert("no transfer.allow intent for "+asset.String(), "ledger_error")
	}
	if host.drawn[key]+amount > limit {
		Revert("draw exceeds transfer.allow limit", "ledger_error")
	}
	host.drawn[key] += amount
	host.balances[key] -= amount
	contractKey := balanceKey(Address(host.env.ContractId), asset)
	host.balances[contractKey] += amount
	host.draws = append(host.draws, DrawRecord{From: sender, Amount: amount, Asset: asset})
}

// HiveTransfer pays out of contract custody towards a user address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	contractKey := balanceKey(Address(host.env.ContractId), asset)
	if host.balances[contractKey] < amount {
		Revert(fmt.Sprintf("transfer %d exceeds contract custody", amount), "ledger_error")
	}
	host.balances[contractKey] -= amount
	host.balances[balanceKey(to, asset)] += amount
	host.transfers = append(host.transfers, TransferRecord{To: to, Amount: amount, Asset: asset})
}

func ContractStateGet(contractId string, key string) *string {
	kv, ok := host.contractKV[contractId]
	if !ok {
		return nil
	}
	val, ok := kv[key]
	if !ok {
		return nil
	}
	return &val
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	if host.callHandler == nil {
		return nil
	}
	return host.callHandler(contractId, method, payload)
}

func transferAllowLimit(intents []Intent, asset Asset) (int64, bool) {
	for _, intent := range intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			return 0, false
		}
		return int64(limit * 1000), true
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Test controls
// ---------------------------------------------------------------------------

// MockReset wipes the whole host double back to a pristine ledger.
func MockReset() {
	host = newMockHost()
}

// MockSetTimestamp fast-forwards the chain clock for expiry tests.
// Accepts unix seconds or the iso-ish formats the env uses.
func MockSetTimestamp(ts string) {
	host.env.Timestamp = ts
}

// MockSetSender switches the signing account (and payer) for the next calls.
// Bumps the tx id so per-tx caches in the contract refresh.
func MockSetSender(addr Address) {
	host.env.Sender.Address = addr
	host.env.Caller.Address = addr
	host.env.Payer = addr.String()
	bumpMockTx()
}

// MockSetIntents installs the intents slice for the next calls and starts a
// fresh tx so the new allowance is picked up.
func MockSetIntents(intents []Intent) {
	host.env.Intents = intents
	bumpMockTx()
}

// MockSetTx pins an explicit tx id.
func MockSetTx(txId string) {
	host.env.TxId = txId
	host.drawn = map[string]int64{}
}

var mockTxCounter uint64

func bumpMockTx() {
	mockTxCounter++
	host.env.TxId = "mock-tx-" + strconv.FormatUint(mockTxCounter, 10)
	host.drawn = map[string]int64{}
}

// MockDeposit credits a ledger balance out of thin air, test setup only.
func MockDeposit(addr Address, amount int64, asset Asset) {
	host.balances[balanceKey(addr, asset)] += amount
}

// MockBalance reads a ledger balance without going through GetBalance.
func MockBalance(addr Address, asset Asset) int64 {
	return host.balances[balanceKey(addr, asset)]
}

// MockTransfers returns every outgoing transfer recorded since reset.
func MockTransfers() []TransferRecord {
	return host.transfers
}

// MockDraws returns every draw recorded since reset.
func MockDraws() []DrawRecord {
	return host.draws
}

// MockLogs returns the captured log lines (the contract's event stream).
func MockLogs() []string {
	return host.logs
}

// MockSetContractState seeds a foreign contract's kv for ContractStateGet.
func MockSetContractState(contractId, key, value string) {
	if host.contractKV[contractId] == nil {
		host.contractKV[contractId] = map[string]string{}
	}
	host.contractKV[contractId][key] = value
}

// MockSetCallHandler installs a handler for inter-contract calls.
func MockSetCallHandler(fn func(contractId, method, payload string) *string) {
	host.callHandler = fn
}

// MockSnapshot captures kv and balances and returns a restore func, letting
// tests emulate the host's transaction rollback around an expected revert.
func MockSnapshot() func() {
	kv := make(map[string]string, len(host.kv))
	for k, v := range host.kv {
		kv[k] = v
	}
	balances := make(map[string]int64, len(host.balances))
	for k, v := range host.balances {
		balances[k] = v
	}
	return func() {
		host.kv = kv
		host.balances = balances
	}
}
