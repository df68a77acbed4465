package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

// dateFormats lists the accepted calendar date layouts, tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// itemRecord is the wire form of a scheduled item. Dates come in as strings
// so that plain calendar dates and RFC3339 timestamps both work.
type itemRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"startDate,omitempty"`
	Due      string `json:"dueDate,omitempty"`
	Priority string `json:"priority,omitempty"`
	Phase    int    `json:"phase,omitempty"`
}

// document is the object form of a JSON input file: the item list plus an
// optional phase-number to display-name map.
type document struct {
	Items      []itemRecord      `json:"items"`
	PhaseNames map[string]string `json:"phaseNames,omitempty"`
}

// Load reads scheduled items from a JSON or CSV file, dispatching on the
// file extension. The second return value is the phase-name lookup, which
// only JSON documents can carry.
func Load(path string) ([]model.ScheduledItem, map[int]string, error) {
	util.LogDebugf("Loading items from %s", path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		items, err := LoadCSV(path)
		return items, nil, err
	default:
		return nil, nil, fmt.Errorf("unsupported input format %q (expected .json or .csv)", filepath.Ext(path))
	}
}

// LoadJSON reads a JSON input file. The file may be a bare array of items or
// an object with "items" and "phaseNames" keys.
func LoadJSON(path string) ([]model.ScheduledItem, map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading input file: %w", err)
	}

	var doc document
	var records []itemRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("error parsing input file: %w", err)
		}
		records = doc.Items
	}

	items := make([]model.ScheduledItem, 0, len(records))
	for i, rec := range records {
		item, err := rec.toItem()
		if err != nil {
			return nil, nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	var names map[int]string
	if len(doc.PhaseNames) > 0 {
		names = make(map[int]string, len(doc.PhaseNames))
		for key, name := range doc.PhaseNames {
			n, err := strconv.Atoi(key)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid phase key %q: %w", key, err)
			}
			names[n] = name
		}
	}

	util.LogDebugf("Loaded %d items from %s", len(items), path)
	return items, names, nil
}

// LoadCSV reads a CSV input file. The header row maps columns by name,
// case-insensitively; only the id column is required.
func LoadCSV(path string) ([]model.ScheduledItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := columnMap["id"]; !ok {
		return nil, fmt.Errorf("id column not found in CSV. Available columns: %v", header)
	}

	var items []model.ScheduledItem
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		line++

		rec := itemRecord{
			ID:       fieldAt(record, columnMap, "id"),
			Title:    fieldAt(record, columnMap, "title"),
			Start:    firstField(record, columnMap, "startdate", "start_date", "start"),
			Due:      firstField(record, columnMap, "duedate", "due_date", "due"),
			Priority: fieldAt(record, columnMap, "priority"),
		}
		if raw := firstField(record, columnMap, "phase", "groupkey", "group_key"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid phase %q: %w", line, raw, err)
			}
			rec.Phase = n
		}

		item, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}

	util.LogDebugf("Loaded %d items from %s", len(items), path)
	return items, nil
}

// toItem validates a record and converts it to the engine's item type.
func (r itemRecord) toItem() (model.ScheduledItem, error) {
	if r.ID == "" {
		return model.ScheduledItem{}, fmt.Errorf("missing id")
	}

	item := model.ScheduledItem{
		ID:       r.ID,
		Title:    r.Title,
		Priority: model.ParsePriority(r.Priority),
		GroupKey: r.Phase,
	}

	if r.Start != "" {
		t, err := parseDate(r.Start)
		if err != nil {
			return model.ScheduledItem{}, fmt.Errorf("start date: %w", err)
		}
		item.StartDate = &t
	}
	if r.Due != "" {
		t, err := parseDate(r.Due)
		if err != nil {
			return model.ScheduledItem{}, fmt.Errorf("due date: %w", err)
		}
		item.DueDate = &t
	}

	return item, nil
}

// parseDate tries each accepted layout in turn.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}

func fieldAt(record []string, columnMap map[string]int, name string) string {
	if idx, ok := columnMap[name]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// firstField returns the first non-empty value among the column aliases.
func firstField(record []string, columnMap map[string]int, names ...string) string {
	for _, name := range names {
		if v := fieldAt(record, columnMap, name); v != "" {
			return v
		}
	}
	return ""
}
