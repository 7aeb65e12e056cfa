//go:build !wasm

package main

import (
	"fmt"

	"passbooth_dao/contract"
	"passbooth_dao/sdk"
)

// Local smoke run against the in-memory host double. Builds a dao, buys a
// few passes and prints the resulting cycle record plus the event lines.
func main() {
	sdk.MockReset()
	sdk.MockSetSender("hive:owner")
	contract.InitCollaborators(true)

	fmt.Println(*contract.ContractInit(ptr("hive:governor|hive:devfund")))
	fmt.Println(*contract.CreateDao(ptr(
		"demo-dao|10,5,1|100,200,400|4,2,1|30|4|500|4000|" +
			"8:8:50:5:0:contract:og-voucher;4:2:100:10:0:;1:1:200:20:0:|" +
			"hive:owner:10000")))

	sdk.MockSetSender("hive:alice")
	sdk.MockDeposit("hive:alice", 1_000_000, sdk.AssetHive)
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": sdk.AssetHive.String(), "limit": "100"},
	}})
	fmt.Println(*contract.Contribute(ptr("1|0,2|2,10|first buy")))

	fmt.Println(*contract.GetCurrentCycle(ptr("1")))
	for _, line := range sdk.MockLogs() {
		fmt.Println(line)
	}
}

func ptr(s string) *string { return &s }
