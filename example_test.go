package mantiq_test

import (
	"fmt"

	"github.com/mantiq-labs/mantiq"
)

func ExampleVerify() {
	s := mantiq.NewSyllogism(
		mantiq.All("greeks", "men"),
		mantiq.All("men", "mortal"),
		mantiq.All("greeks", "mortal"),
	)
	verdict, err := mantiq.Verify(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(verdict.Valid, verdict.Form)
	// Output: true Barbara
}

func ExampleVerify_invalid() {
	s := mantiq.NewSyllogism(
		mantiq.All("dogs", "animals"),
		mantiq.All("cats", "animals"),
		mantiq.All("dogs", "cats"),
	)
	verdict, err := mantiq.Verify(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(verdict.Valid)
	for _, violation := range verdict.Violations {
		fmt.Println(violation.Rule, violation.Fallacy)
	}
	// Output:
	// false
	// undistributed-middle Undistributed Middle
}

func ExampleConclude() {
	conclusions, err := mantiq.Conclude(
		mantiq.All("whales", "mammals"),
		mantiq.All("mammals", "animals"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range conclusions {
		fmt.Println(c)
	}
	// Output: All whales is animals
}

func ExampleDeriveMood() {
	s := mantiq.NewSyllogism(
		mantiq.Some("pets", "mammals"),
		mantiq.All("mammals", "animals"),
		mantiq.Some("pets", "animals"),
	)
	fmt.Println(mantiq.DeriveMood(s))
	// Output: AII
}
