package watcher

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"NavRater/internal/analysis"
	"NavRater/internal/model"
	"NavRater/internal/recorder"
	"NavRater/internal/report"
)

// Watcher re-analyzes a NAV file on a cron schedule, refreshes the
// Excel report, and records the outcome. A grade change between runs
// is logged prominently.
type Watcher struct {
	Cron     *cron.Cron
	File     string
	Output   string
	Recorder recorder.Recorder

	lastGrade model.Grade
}

// New creates a Watcher. Output may be empty to skip the Excel report.
func New(file, output string, rec recorder.Recorder) *Watcher {
	return &Watcher{
		Cron:     cron.New(cron.WithSeconds()),
		File:     file,
		Output:   output,
		Recorder: rec,
	}
}

// Register schedules the periodic re-analysis.
func (w *Watcher) Register(spec string) error {
	if _, err := w.Cron.AddFunc(spec, w.runOnce); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Println("[INFO] watcher started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// RunNow executes one analysis immediately (manual trigger / RUN_ON_START).
func (w *Watcher) RunNow() {
	w.runOnce()
}

func (w *Watcher) runOnce() {
	log.Printf("[INFO] analyzing %s", w.File)
	a, err := analysis.AnalyzeFile(w.File)
	if err != nil {
		log.Printf("[ERROR] analyze: %v", err)
		return
	}

	row, rating := a.Latest()
	log.Printf("[INFO] %s: grade %s (%s), price %.4f",
		row.Date.Format("2006-01-02"), rating.Grade, rating.Name, row.Price)
	if w.lastGrade != "" && w.lastGrade != rating.Grade {
		log.Printf("[WARN] grade changed: %s -> %s (%s)",
			w.lastGrade, rating.Grade, rating.Description)
	}
	w.lastGrade = rating.Grade

	if w.Output != "" {
		if err := report.WriteExcel(a, w.Output); err != nil {
			log.Printf("[ERROR] write excel: %v", err)
		}
	}
	if err := w.Recorder.RecordRun(recorder.NewRunRecord(w.File, a)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
