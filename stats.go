package lumina

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tklauser/go-sysconf"
)

//
// RunStats accumulates counters over one Run, surfaced through the
// -stats CLI flag.  Grounded on the teacher's getCPUInfo/formatUptime
// pair (utils.go): the /proc/self/stat CPU-tick read is reused
// verbatim for user/system time, and dustin/go-humanize takes over
// the teacher's hand-rolled %02d:%02d:%02d formatting for everything
// that isn't a clock face
//

type RunStats struct {
	started time.Time

	StatementsExecuted uint64
	ReverseToggles     uint64
	NamesExpired       uint64
	FunctionCalls      uint64

	maxFrameDepth int
}

func newRunStats() *RunStats {
	return &RunStats{started: time.Now()}
}

// Report renders a human-readable summary, using go-humanize for the
// counts and the /proc/self/stat CPU-tick read for process CPU time
func (s *RunStats) Report() string {

	var b strings.Builder

	fmt.Fprintf(&b, "statements executed: %s\n", humanize.Comma(int64(s.StatementsExecuted)))
	fmt.Fprintf(&b, "reverse toggles:     %s\n", humanize.Comma(int64(s.ReverseToggles)))
	fmt.Fprintf(&b, "names expired:       %s\n", humanize.Comma(int64(s.NamesExpired)))
	fmt.Fprintf(&b, "function calls:      %s\n", humanize.Comma(int64(s.FunctionCalls)))
	fmt.Fprintf(&b, "max frame depth:     %d\n", s.maxFrameDepth)
	fmt.Fprintf(&b, "wall clock:          %s\n", humanize.RelTime(s.started, time.Now(), "", ""))

	if user, sys, err := processCPUTicks(); err == nil {
		fmt.Fprintf(&b, "cpu time:            user %.2fs, sys %.2fs\n", user, sys)
	}

	return b.String()
}

// processCPUTicks reads /proc/self/stat the same way the teacher's
// getCPUInfo does, converting ticks to seconds via SC_CLK_TCK
func processCPUTicks() (userSecs, sysSecs float64, err error) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, 0, err
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0, err
	}

	fields := strings.Fields(string(contents))
	if len(fields) < 15 {
		return 0, 0, fmt.Errorf("unexpected /proc/self/stat field count %d", len(fields))
	}

	utime, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	stime, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return float64(utime) / float64(clktck), float64(stime) / float64(clktck), nil
}
