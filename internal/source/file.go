package source

import (
	"encoding/json"
	"fmt"
	"os"

	"CollectIQ/internal/aggregate"
	"CollectIQ/internal/model"
)

// FileSource reads pre-parsed listings and export history from JSON
// files dropped by an external scrape layer. Missing files are treated
// as empty, not as errors: the scraper may not have run yet.
type FileSource struct {
	ListingsPath string
	HistoryPath  string
}

func NewFileSource(listingsPath, historyPath string) *FileSource {
	return &FileSource{ListingsPath: listingsPath, HistoryPath: historyPath}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) FetchListings(_ string) ([]model.ListingRecord, error) {
	var listings []model.ListingRecord
	if err := readJSON(f.ListingsPath, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (f *FileSource) FetchHistory(_ string) ([]aggregate.ChartPoint, error) {
	var points []aggregate.ChartPoint
	if err := readJSON(f.HistoryPath, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func readJSON(path string, v any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
