package dataset

import (
	_ "embed"
	"fmt"
)

//go:embed sample.tsv
var sampleTSV string

// SampleTSV returns the raw text of the built-in temperature table.
func SampleTSV() string {
	return sampleTSV
}

// Sample returns the built-in temperature table: three cities, six months of 2018.
func Sample() *Dataset {
	d, err := Parse(sampleTSV, DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded sample is invalid: %v", err))
	}
	return d
}
