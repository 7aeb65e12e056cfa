package sdk

// Intent is a signed permission attached to the transaction, like transfer.allow.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender describes who signed the current transaction.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller is the direct caller, which differs from Sender on inter-contract calls.
type Caller struct {
	Address Address `json:"id"`
}

// Env is the execution environment snapshot the host hands to the contract.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"sender"`
	Caller      Caller   `json:"caller"`
	Payer       string   `json:"payer"`
	Intents     []Intent `json:"intents"`
}

// ContractCallOptions carries optional intents forwarded on inter-contract calls.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// RevertError is the typed value a Revert raises on the host build so tests
// can match on the short symbol instead of parsing messages.
type RevertError struct {
	Symbol string
	Msg    string
}

// Error formats like the on-chain revert line: symbol then message.
func (e RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}
