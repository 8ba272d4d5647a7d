// main.go
package main

import (
	"fmt"

	"github.com/runtimecontracts/contract/pkg/chain"
	"github.com/runtimecontracts/contract/pkg/contract"
)

// addTwo guards its inputs with preconditions and its output with a
// postcondition.
func addTwo(i, j int) (int, error) {
	if err := contract.Requires(func() bool { return i > 0 }, "i must be greater than 0"); err != nil {
		return 0, err
	}
	if err := contract.Requires(func() bool { return j > 0 }, "j must be greater than 0"); err != nil {
		return 0, err
	}
	return contract.Ensures(i+j, contract.Positive[int](), "the sum of i and j must be greater than 0")
}

// account is a minimal balance holder used to demonstrate invariant checks.
type account struct {
	balance int
}

// withdraw takes amount from the account, asserting the balance invariant
// after the mutation.
func (a *account) withdraw(amount int) error {
	if err := contract.Requiresf(func() bool { return amount > 0 }, "withdrawal amount must be positive, got %d", amount); err != nil {
		return err
	}
	a.balance -= amount
	return contract.Check(func() bool { return a.balance >= 0 }, "balance invariant broken")
}

func main() {
	// ---------------------------
	// Precondition / Postcondition Example
	// ---------------------------
	if sum, err := addTwo(5, 6); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Printf("addTwo(5, 6) = %d\n", sum)
	}

	if _, err := addTwo(-2, 3); err != nil {
		fmt.Println("Expected precondition failure:", err)
	}

	if _, err := addTwo(5, -5); err != nil {
		fmt.Println("Expected postcondition failure:", err)
	}

	// ---------------------------
	// Invariant Example
	// ---------------------------
	acct := &account{balance: 10}
	if err := acct.withdraw(25); err != nil {
		if contract.IsKind(err, contract.KindCheck) {
			fmt.Println("Invariant violation (likely a bug):", err)
		} else {
			fmt.Println("Rejected input:", err)
		}
	}

	// ---------------------------
	// Chain Example
	// ---------------------------
	input := 10
	result, err := chain.Return(input).
		Requires(func() bool { return input > 0 }, "input must be positive").
		Then(func(n int) int { return n + 10 }).
		Then(func(n int) int { return n * 2 }).
		Ensures(contract.Positive[int](), "result must be positive").
		Run()
	if err != nil {
		fmt.Println("Chain error:", err)
	} else {
		fmt.Printf("Chain result: %d\n", result)
	}
}
