package calculator_test

import (
	"fmt"

	"github.com/ddaro/billsplit/bill"
	"github.com/ddaro/billsplit/calculator"
)

func ExampleCalculate() {
	b := bill.New(bill.Config{ServiceChargePercent: 5, TaxPercent: 10})
	alice := b.AddParticipant("Alice")
	bob := b.AddParticipant("Bob")
	b.AddItem("Coffee", 20000, []string{alice.ID, bob.ID})

	sum := calculator.Calculate(b.Snapshot())

	fmt.Println(sum.Subtotal, sum.ServiceChargeAmount, sum.TaxAmount, sum.Total)
	fmt.Println(sum.Splits[alice.ID].Total == sum.Splits[bob.ID].Total)
	// Output:
	// 20000 1000 2100 23100
	// true
}
