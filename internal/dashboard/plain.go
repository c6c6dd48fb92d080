package dashboard

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/ttop/internal/errors"
	"github.com/rileyhilliard/ttop/internal/probe"
)

// RunPlain renders the dashboard without the TUI: clear the screen,
// print the summary block, sleep, repeat. Used for terminals the TUI
// cannot drive and for piped output, and stops on interrupt.
func RunPlain(sampler probe.Sampler, out *termenv.Output) error {
	prev, err := sampler.SampleCPU()
	if err != nil {
		return wrapCPUError(err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			return nil
		case <-ticker.C:
			stats, err := Collect(sampler, prev)
			if err != nil {
				return wrapCPUError(err)
			}
			prev = stats.CPU

			out.ClearScreen()
			for _, line := range SummaryLines(stats) {
				fmt.Fprintln(out, line)
			}
		}
	}
}

func wrapCPUError(err error) error {
	return errors.WrapWithCode(err, errors.ErrProbe,
		"Failed to read CPU statistics",
		"Check that the platform exposes CPU tick counters (on Linux, /proc must be mounted)")
}
