package freqdomain_test

import (
	"fmt"
	"log"
	"math"

	"github.com/cardiolab/hrv/freqdomain"
	"github.com/cardiolab/hrv/rr"
)

// ExampleAnalyze demonstrates spectral analysis of a rhythm modulated at
// a respiratory 0.25 Hz: the power lands in the HF band.
func ExampleAnalyze() {
	var beats []rr.Beat
	t := 0.0
	for i := 0; i < 300; i++ {
		beats = append(beats, rr.Beat{Time: t, Label: rr.LabelNormal})
		t += 0.8 + 0.05*math.Sin(2*math.Pi*0.25*t)
	}
	series, err := rr.FromBeats(beats)
	if err != nil {
		log.Fatal(err)
	}

	res, err := freqdomain.Analyze(series, freqdomain.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("HF > LF:", res.Value("HF") > res.Value("LF"))
	fmt.Println("HF > VLF:", res.Value("HF") > res.Value("VLF"))

	// Output:
	// HF > LF: true
	// HF > VLF: true
}
