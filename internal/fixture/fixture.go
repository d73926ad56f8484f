// Package fixture loads recorded pointer-event replays for the demo
// harness: CSV files of kind,x,y,time,pressure rows, one event per
// line, the same column-index-by-header-name shape the teacher's
// snapshot loader used for restart recovery.
package fixture

import (
	"bufio"
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"strokemodel"
	"strokemodel/internal/geom"
)

// LoadLatestCSV finds the most recently named *.csv file under dir
// (sorted lexically, so timestamped filenames pick the latest) and
// parses it into a sequence of InputEvents. Malformed rows are
// skipped; a missing or unreadable directory yields a nil slice.
func LoadLatestCSV(dir string) []strokemodel.InputEvent {
	pattern := filepath.Join(dir, "*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil || len(files) == 0 {
		log.Printf("[fixture] no CSV files found in %s", dir)
		return nil
	}

	sort.Strings(files)
	latest := files[len(files)-1]
	log.Printf("[fixture] loading replay from %s", latest)

	return LoadCSVFile(latest)
}

// LoadCSVFile parses a single CSV replay file.
func LoadCSVFile(path string) []strokemodel.InputEvent {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[fixture] failed to open %s: %v", path, err)
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReaderSize(f, 1<<16))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Printf("[fixture] failed to read header: %v", err)
		return nil
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	events := make([]strokemodel.InputEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, csvRowToEvent(row, idx))
	}
	log.Printf("[fixture] parsed %d events from %s", len(events), path)
	return events
}

func csvRowToEvent(row []string, idx map[string]int) strokemodel.InputEvent {
	get := func(col string) float64 {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return 0
		}
		v, _ := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		return v
	}

	kind := strokemodel.Move
	if i, ok := idx["kind"]; ok && i < len(row) {
		switch strings.ToLower(strings.TrimSpace(row[i])) {
		case "down":
			kind = strokemodel.Down
		case "up":
			kind = strokemodel.Up
		}
	}

	pressure := get("pressure")
	if pressure == 0 {
		pressure = 1
	}

	return strokemodel.InputEvent{
		Kind:     kind,
		Pos:      geom.Vec2{X: float32(get("x")), Y: float32(get("y"))},
		Time:     get("time"),
		Pressure: float32(pressure),
	}
}
