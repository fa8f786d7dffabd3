package export

import "time"

// progressCeiling is the highest percentage synthetic ticks may reach. The
// final jump to 100 belongs to the generator's completion.
const progressCeiling = 90

// tickerCadence returns the synthetic progress cadence for a format. Slower
// formats tick slower so progress stays believable.
func tickerCadence(format Format) time.Duration {
	switch format {
	case FormatPDF:
		return 400 * time.Millisecond
	case FormatDOCX:
		return 350 * time.Millisecond
	case FormatXLSX:
		return 250 * time.Millisecond
	default:
		return 120 * time.Millisecond
	}
}

// progressTicker advances a format's progress while its generator runs. Its
// lifetime is scoped to one format's window: stop joins the goroutine before
// the caller moves on.
type progressTicker struct {
	done    chan struct{}
	stopped chan struct{}
}

// startProgress begins ticking progress for one job format.
func startProgress(board *StatusBoard, jobID string, format Format, cadence time.Duration) *progressTicker {
	if cadence <= 0 {
		cadence = tickerCadence(format)
	}
	t := &progressTicker{
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go func() {
		defer close(t.stopped)
		ticker := time.NewTicker(cadence)
		defer ticker.Stop()

		progress := 0
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				if progress >= progressCeiling {
					continue
				}
				progress += 7
				if progress > progressCeiling {
					progress = progressCeiling
				}
				_ = board.SetProgress(jobID, format, progress)
			}
		}
	}()

	return t
}

// stop halts ticking and blocks until the goroutine has exited.
func (t *progressTicker) stop() {
	if t == nil {
		return
	}
	close(t.done)
	<-t.stopped
}
