// Command strokedemo replays a recorded pointer-event fixture through
// a StrokeModeler and logs a summary of the run. It is deliberately
// single-threaded: the modeler it drives is single-owner and
// non-blocking, and a harness that spawned goroutines around it would
// misrepresent the contract it demonstrates.
package main

import (
	"flag"
	"log"

	"strokemodel"
	"strokemodel/internal/diag"
	"strokemodel/internal/fixture"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	fixtureDir := flag.String("fixture-dir", "fixtures", "directory containing replay CSV files")
	fixtureFile := flag.String("fixture-file", "", "exact replay CSV file to load (overrides -fixture-dir)")
	flag.Parse()

	log.Println("Starting strokedemo replay harness...")

	var events []strokemodel.InputEvent
	if *fixtureFile != "" {
		events = fixture.LoadCSVFile(*fixtureFile)
	} else {
		events = fixture.LoadLatestCSV(*fixtureDir)
	}
	if len(events) == 0 {
		log.Println("no replay events loaded, nothing to do")
		return
	}

	modeler, err := strokemodel.NewStrokeModeler(strokemodel.SuggestedParams())
	if err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	counters := diag.NewCounters()
	strokes := 0

	for _, event := range events {
		if event.Kind == strokemodel.Down {
			strokes++
		}

		results, err := modeler.Update(event)
		if err != nil {
			counters.ObserveError(err)
			log.Printf("rejected %s event at t=%.4f: %v", event.Kind, event.Time, err)
			continue
		}
		counters.ObserveBatch(len(results))

		if event.Kind == strokemodel.Up {
			// Update does not report the catch-up tail separately, so
			// the histogram receives the whole Up batch: the upsampled
			// steps plus the emitted tail samples (or the one synthetic
			// sample). Overshoot retries that emit nothing are not counted.
			counters.ObserveCatchUpIterations(len(results))
		}
	}

	log.Printf("replayed %d events across %d strokes", len(events), strokes)
	log.Printf("rejected events: %d (down=%d move=%d up=%d no-stroke=%d)",
		counters.TotalRejected(),
		counters.RejectedUnexpectedDown, counters.RejectedUnexpectedMove,
		counters.RejectedUnexpectedUp, counters.RejectedNoStrokeInProgress)
	log.Printf("result batches: max=%d avg=%.2f", counters.MaxBatchSize(), counters.AverageBatchSize())
}
