package report_test

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/report"
)

func ExampleWriteTransducer() {
	td, err := bvd.Presets().Select("SMBLTD45F40H_1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := report.WriteTransducer(os.Stdout, td); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Transducer: SMBLTD45F40H_1
	// Manufacturer: STEINER & MARTINS INC., Davenport, USA
	//   rs: 21.050 Ω
	//   ls: 35.150 mH
	//   cs: 448.620 pF
	//   c0: 4.076 nF
	//   fr: 40.079 kHz
}
