package knee_test

import (
	"fmt"

	"github.com/cwbudde/algo-response/dsp/dynamics/knee"
)

func ExampleComputer() {
	c := knee.New()
	c.SetThreshold(-18)
	c.SetRatio(4)
	c.SetKneeWidth(6)
	c.SetCurve(0)

	// Apply the pending parameter changes (audio-thread side).
	c.Update()

	fmt.Printf("at -30 dB: %+.1f dB\n", c.Process(-30))
	fmt.Printf("at   0 dB: %+.1f dB\n", c.Process(0))
	// Output:
	// at -30 dB: +0.0 dB
	// at   0 dB: -13.5 dB
}
