package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"CollectIQ/internal/aggregate"
	"CollectIQ/internal/model"
	"CollectIQ/internal/pipeline"
	"CollectIQ/internal/report"
	"CollectIQ/internal/source"
	"CollectIQ/internal/store"
)

// Scheduler owns the refresh cadence: on each tick it pulls fresh
// listings and history from the source, runs the pipeline, persists the
// aggregated points, and logs the resulting grade. The pipeline itself
// has no notion of time or retries; that discipline lives here.
type Scheduler struct {
	Cron     *cron.Cron
	Source   source.Source
	Pipeline *pipeline.Pipeline
	Store    store.Store
	Profile  model.ProductProfile
	Ctx      context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, src source.Source, p *pipeline.Pipeline, st store.Store, profile model.ProductProfile) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   src,
		Pipeline: p,
		Store:    st,
		Profile:  profile,
		Ctx:      ctx,
	}
}

// Register adds the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	runID := uuid.NewString()
	log.Printf("[INFO] refresh run %s: %s via %s", runID, s.Profile.Name, s.Source.Name())

	listings, err := s.Source.FetchListings(s.Profile.Name)
	if err != nil {
		log.Printf("[ERROR] refresh run %s: fetch listings: %v", runID, err)
		return
	}
	history, err := s.Source.FetchHistory(s.Profile.Name)
	if err != nil {
		log.Printf("[WARN] refresh run %s: fetch history: %v", runID, err)
	}

	exports := aggregate.FromChartPoints(history, s.Source.Name())
	points, result := s.Pipeline.Process(listings, exports, s.Profile)
	log.Printf("[INFO] refresh run %s: %s", runID, report.FormatFilterSummary(
		result.Summary.Total, result.Summary.Kept,
		result.Summary.RemovedSuspicious, result.Summary.RemovedStatistical,
		result.RemovedSuspicious))

	if err := s.Store.UpsertPoints(s.Profile.Name, points); err != nil {
		log.Printf("[ERROR] refresh run %s: persist points: %v", runID, err)
	}

	series, err := s.Store.Series(s.Profile.Name)
	if err != nil {
		log.Printf("[WARN] refresh run %s: load series: %v, grading this run only", runID, err)
	}
	if len(series) == 0 {
		series = points
	}

	bundle := s.Pipeline.ComputeMetrics(series)
	grade := s.Pipeline.Grade(bundle)
	log.Printf("[INFO] refresh run %s:\n%s", runID, report.FormatGradeReport(s.Profile.Name, bundle, grade))
}
