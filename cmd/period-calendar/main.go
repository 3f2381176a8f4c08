package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klabast/wb-services/period-calendar/internal/app"
	"github.com/klabast/wb-services/period-calendar/internal/calendar"
	"github.com/klabast/wb-services/period-calendar/internal/commands"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed static/index.html
var indexHTML []byte

func main() {
	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			commands.HashPassword(os.Args[2:])
			return
		case "print":
			commands.Print(os.Args[2:])
			return
		}
	}

	// Parse flags
	port := flag.Int("port", 8080, "Port to listen on")
	flag.BoolVar(&app.EditMode, "edit", false, "Enable the settings editor (default is serve mode)")
	flag.StringVar(&app.DataPath, "data", app.DataPath, "Data directory (settings.json, holidays/<year>.json)")
	flag.Parse()

	// Make embedded files available to app package
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("Failed to load static files: %v", err)
	}
	app.StaticFiles = static
	app.IndexHTML = indexHTML

	// Load and validate auth credentials (if edit mode)
	if app.EditMode {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	// Load settings (with tmp check in edit mode)
	var loadErr error
	if app.EditMode {
		loadErr = app.LoadSettingsWithTmpCheck()
	} else {
		loadErr = app.LoadSettings()
	}
	if loadErr != nil {
		log.Fatalf("Failed to load settings: %v", loadErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go refreshTodayAtMidnight(ctx)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("/", app.ServeIndex)
	mux.HandleFunc("/api/config", app.GetConfig)
	mux.HandleFunc("/api/calendar", app.HandleCalendar)
	mux.HandleFunc("/api/period", app.HandlePeriod)
	mux.HandleFunc("/api/holidays", app.HandleHolidays)
	mux.HandleFunc("/api/download", app.HandleDownload)

	// Edit mode routes (protected with Basic Auth)
	if app.EditMode {
		mux.HandleFunc("/api/settings", app.RequireAuth(app.HandleSettings))
		mux.HandleFunc("/api/settings/commit", app.RequireAuth(app.HandleSettingsCommit))
		mux.HandleFunc("/api/settings/revert", app.RequireAuth(app.HandleSettingsRevert))
		mux.HandleFunc("/api/settings/status", app.RequireAuth(app.HandleSettingsStatus))
	}

	// Serve static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(app.StaticFiles))))

	mode := app.ModeServe
	if app.EditMode {
		mode = app.ModeEdit
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("Starting period calendar in %s mode on http://localhost:%d", mode, *port)
	log.Printf("Data directory: %s", app.DataPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// refreshTodayAtMidnight drops the memoized "today" at each local midnight
// so a long-running server does not keep rendering yesterday
func refreshTodayAtMidnight(ctx context.Context) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 1, 0, now.Location())
		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			calendar.ResetToday()
			log.Printf("Date changed, today is %s", calendar.Today())
		}
	}
}
