package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"NavRater/internal/analysis"
	"NavRater/internal/config"
	"NavRater/internal/ingest"
	"NavRater/internal/recorder"
	"NavRater/internal/report"
	"NavRater/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] NavRater starting...")

	// Optional .env for local runs
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Positional argument overrides the configured input file
	if len(os.Args) > 1 && os.Args[1] != "" {
		cfg.Input.File = os.Args[1]
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Watch mode: keep re-analyzing on the configured cron schedule
	if os.Getenv("WATCH") == "true" {
		w := watcher.New(cfg.Input.File, cfg.Export.XLSXPath, rec)
		if err := w.Register(cfg.Watch.Cron); err != nil {
			log.Fatalf("[FATAL] register watch task: %v", err)
		}
		w.Start()
		defer w.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, analyzing now")
			go w.RunNow()
		}

		log.Println("[INFO] NavRater is watching. Press Ctrl+C to stop.")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		return
	}

	// One-shot analysis
	a, err := analysis.AnalyzeFile(cfg.Input.File)
	if err != nil {
		var colErr *ingest.ColumnError
		if errors.As(err, &colErr) {
			log.Fatalf("[FATAL] %v", colErr)
		}
		log.Fatalf("[FATAL] analyze %s: %v", cfg.Input.File, err)
	}

	fmt.Println(report.FormatSummary(a))

	if cfg.Export.XLSXPath != "" {
		if err := report.WriteExcel(a, cfg.Export.XLSXPath); err != nil {
			log.Fatalf("[FATAL] write excel report: %v", err)
		}
		log.Printf("[INFO] report written: %s", cfg.Export.XLSXPath)
	}
	if err := rec.RecordRun(recorder.NewRunRecord(cfg.Input.File, a)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	log.Println("[INFO] NavRater done")
}
