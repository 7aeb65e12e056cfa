package contract

import (
	"strconv"

	"passbooth_dao/sdk"
)

// getProjectBalance retrieves the custody balance held for a project.
// Created implicitly on first deposit, never deleted (can reach zero).
func getProjectBalance(projectID uint64) Amount {
	ptr := sdk.StateGetObject(projectBalanceKey(projectID))
	if ptr == nil || *ptr == "" {
		return 0
	}
	balance, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setProjectBalance writes the custody balance back as a decimal string.
func setProjectBalance(projectID uint64, amount Amount) {
	sdk.StateSetObject(projectBalanceKey(projectID), strconv.FormatInt(int64(amount), 10))
}

// addProjectBalance credits custody after an incoming draw.
func addProjectBalance(projectID uint64, amount Amount) {
	setProjectBalance(projectID, getProjectBalance(projectID)+amount)
}

// removeProjectBalance debits custody; reverts when the project cannot cover it.
func removeProjectBalance(projectID uint64, amount Amount) {
	current := getProjectBalance(projectID)
	if current < amount {
		fail(ErrInsufficientBalance, "project balance cannot cover disbursement")
	}
	setProjectBalance(projectID, current-amount)
}
