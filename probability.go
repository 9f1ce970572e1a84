package lumina

import (
	"math/rand"
	"strings"
)

//
// The probability-name table from spec.md section 6: 101 entries, one
// per percentile from TRUE (1.00) down to FALSE (0.00).  Two names
// recur at distinct percentages (BARELYLIKELY, PROBABLYNOT); the
// canonical mapping used for lookup is whichever occurs first in this
// table, which is documented in DESIGN.md.  Modeled on the teacher's
// table-driven bifsHack/stringOps style in definitions.go: a flat
// slice literal, turned into a lookup map once at package init
//

type probabilityEntry struct {
	name string
	p    float64
}

var probabilityTable = []probabilityEntry{
	{name: "TRUE", p: 1.00},
	{name: "ALMOSTCERTAIN99", p: 0.99},
	{name: "ALMOSTCERTAIN98", p: 0.98},
	{name: "ALMOSTCERTAIN97", p: 0.97},
	{name: "ALMOSTCERTAIN96", p: 0.96},
	{name: "ALMOSTCERTAIN95", p: 0.95},
	{name: "VERYLIKELY94", p: 0.94},
	{name: "VERYLIKELY93", p: 0.93},
	{name: "VERYLIKELY92", p: 0.92},
	{name: "VERYLIKELY91", p: 0.91},
	{name: "VERYLIKELY90", p: 0.90},
	{name: "VERYLIKELY89", p: 0.89},
	{name: "VERYLIKELY88", p: 0.88},
	{name: "VERYLIKELY87", p: 0.87},
	{name: "VERYLIKELY86", p: 0.86},
	{name: "VERYLIKELY85", p: 0.85},
	{name: "LIKELY84", p: 0.84},
	{name: "LIKELY83", p: 0.83},
	{name: "LIKELY82", p: 0.82},
	{name: "LIKELY81", p: 0.81},
	{name: "LIKELY80", p: 0.80},
	{name: "LIKELY79", p: 0.79},
	{name: "LIKELY78", p: 0.78},
	{name: "LIKELY77", p: 0.77},
	{name: "LIKELY76", p: 0.76},
	{name: "LIKELY75", p: 0.75},
	{name: "PROBABLE74", p: 0.74},
	{name: "PROBABLE73", p: 0.73},
	{name: "PROBABLE72", p: 0.72},
	{name: "PROBABLE71", p: 0.71},
	{name: "PROBABLE70", p: 0.70},
	{name: "PROBABLE69", p: 0.69},
	{name: "PROBABLE68", p: 0.68},
	{name: "PROBABLE67", p: 0.67},
	{name: "PROBABLE66", p: 0.66},
	{name: "PROBABLE65", p: 0.65},
	{name: "FAIRLYLIKELY64", p: 0.64},
	{name: "FAIRLYLIKELY63", p: 0.63},
	{name: "FAIRLYLIKELY62", p: 0.62},
	{name: "FAIRLYLIKELY61", p: 0.61},
	{name: "FAIRLYLIKELY60", p: 0.60},
	{name: "FAIRLYLIKELY59", p: 0.59},
	{name: "FAIRLYLIKELY58", p: 0.58},
	{name: "FAIRLYLIKELY57", p: 0.57},
	{name: "FAIRLYLIKELY56", p: 0.56},
	{name: "SLIGHTLYLIKELY55", p: 0.55},
	{name: "SLIGHTLYLIKELY54", p: 0.54},
	{name: "SLIGHTLYLIKELY53", p: 0.53},
	{name: "SLIGHTLYLIKELY52", p: 0.52},
	{name: "BARELYLIKELY", p: 0.51},
	{name: "MAYBE", p: 0.50},
	{name: "PROBABLYNOT", p: 0.49},
	{name: "SLIGHTLYUNLIKELY48", p: 0.48},
	{name: "SLIGHTLYUNLIKELY47", p: 0.47},
	{name: "SLIGHTLYUNLIKELY46", p: 0.46},
	{name: "SLIGHTLYUNLIKELY45", p: 0.45},
	{name: "FAIRLYUNLIKELY44", p: 0.44},
	{name: "FAIRLYUNLIKELY43", p: 0.43},
	{name: "FAIRLYUNLIKELY42", p: 0.42},
	{name: "FAIRLYUNLIKELY41", p: 0.41},
	{name: "FAIRLYUNLIKELY40", p: 0.40},
	{name: "FAIRLYUNLIKELY39", p: 0.39},
	{name: "FAIRLYUNLIKELY38", p: 0.38},
	{name: "FAIRLYUNLIKELY37", p: 0.37},
	{name: "FAIRLYUNLIKELY36", p: 0.36},
	{name: "IMPROBABLE35", p: 0.35},
	{name: "IMPROBABLE34", p: 0.34},
	{name: "IMPROBABLE33", p: 0.33},
	{name: "IMPROBABLE32", p: 0.32},
	{name: "IMPROBABLE31", p: 0.31},
	{name: "IMPROBABLE30", p: 0.30},
	{name: "IMPROBABLE29", p: 0.29},
	{name: "IMPROBABLE28", p: 0.28},
	{name: "IMPROBABLE27", p: 0.27},
	{name: "IMPROBABLE26", p: 0.26},
	{name: "UNLIKELY25", p: 0.25},
	{name: "UNLIKELY24", p: 0.24},
	{name: "UNLIKELY23", p: 0.23},
	{name: "UNLIKELY22", p: 0.22},
	{name: "UNLIKELY21", p: 0.21},
	{name: "UNLIKELY20", p: 0.20},
	{name: "UNLIKELY19", p: 0.19},
	{name: "UNLIKELY18", p: 0.18},
	{name: "UNLIKELY17", p: 0.17},
	{name: "UNLIKELY16", p: 0.16},
	{name: "VERYUNLIKELY15", p: 0.15},
	{name: "VERYUNLIKELY14", p: 0.14},
	{name: "VERYUNLIKELY13", p: 0.13},
	{name: "BARELYLIKELY", p: 0.12},
	{name: "VERYUNLIKELY11", p: 0.11},
	{name: "VERYUNLIKELY10", p: 0.10},
	{name: "VERYUNLIKELY9", p: 0.09},
	{name: "PROBABLYNOT", p: 0.08},
	{name: "VERYUNLIKELY7", p: 0.07},
	{name: "VERYUNLIKELY6", p: 0.06},
	{name: "ALMOSTNEVER5", p: 0.05},
	{name: "ALMOSTNEVER4", p: 0.04},
	{name: "ALMOSTNEVER3", p: 0.03},
	{name: "ALMOSTNEVER2", p: 0.02},
	{name: "ALMOSTNEVER1", p: 0.01},
	{name: "FALSE", p: 0.00},
}

var probabilityByName map[string]float64

func init() {

	probabilityByName = make(map[string]float64, len(probabilityTable))

	for _, e := range probabilityTable {
		key := strings.ToUpper(e.name)
		if _, exists := probabilityByName[key]; !exists {
			probabilityByName[key] = e.p
		}
	}
}

func lookupProbability(token string) (float64, bool) {

	p, ok := probabilityByName[strings.ToUpper(token)]
	return p, ok
}

//
// drawProbability draws u ~ Uniform[0,1) and returns Boolean(u < p),
// per spec.md section 4.2.  TRUE/FALSE are entries in the same table
// (p=1.0, p=0.0) so they fall out of the same draw with no special
// casing needed
//

func drawProbability(p float64) bool {

	return rand.Float64() < p
}

//
// Number words zero..ten, per spec.md section 6
//

var numberWords = map[string]float64{
	"ZERO":  0,
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
	"SIX":   6,
	"SEVEN": 7,
	"EIGHT": 8,
	"NINE":  9,
	"TEN":   10,
}

func lookupNumberWord(token string) (float64, bool) {

	n, ok := numberWords[strings.ToUpper(token)]
	return n, ok
}
