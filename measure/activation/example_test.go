package activation_test

import (
	"fmt"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/measure/activation"
)

func ExampleEvaluatePotential() {
	td, err := bvd.New(24.764, 38.959e-3, 400.33e-12, 3970.1e-12)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pot, err := activation.EvaluatePotential(td, 40, 60)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("switch at:    %.3f ms\n", pot.SwitchTime*1e3)
	fmt.Printf("settle plain: %.3f ms\n", pot.SettleWithoutBoost*1e3)
	fmt.Printf("settle boost: %.3f ms\n", pot.SettleWithBoost*1e3)
	fmt.Printf("improvement:  %.1f %%\n", pot.ImprovementPercent)
	// Output:
	// switch at:    3.457 ms
	// settle plain: 12.640 ms
	// settle boost: 3.457 ms
	// improvement:  72.7 %
}

func ExampleSwitchingTime() {
	td, err := bvd.New(24.764, 38.959e-3, 400.33e-12, 3970.1e-12)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tsw, err := activation.SwitchingTime(td, 40, 60)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("optimal switch: %.3f ms\n", tsw*1e3)
	// Output:
	// optimal switch: 3.457 ms
}
