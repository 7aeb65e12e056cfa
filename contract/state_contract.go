package contract

import (
	"strings"

	"passbooth_dao/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// isGovernor gates the treasury unlock escape valve.
func isGovernor(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Governor == addr
}

// devTreasuryAddress returns where protocol fees are disbursed.
func devTreasuryAddress() sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return ""
	}
	return cfg.DevTreasury
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|governor|devTreasury
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String() + "|" + cfg.Governor.String() + "|" + cfg.DevTreasury.String()
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 3 {
		return nil
	}
	return &ContractConfig{
		Owner:       AddressFromString(parts[0]),
		Governor:    AddressFromString(parts[1]),
		DevTreasury: AddressFromString(parts[2]),
	}
}
