// Command lookup runs a batch lookup from the terminal, without the HTTP
// service: read case numbers, scrape both tiers, write the two reports.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"esaj-lookup/internal/caseid"
	"esaj-lookup/internal/classify"
	"esaj-lookup/internal/esaj"
	"esaj-lookup/internal/export"
	"esaj-lookup/internal/logger"
)

var (
	app = kingpin.New("lookup", "Batch TJSP e-SAJ case lookup.")

	numbers     = app.Flag("numbers", "Comma-separated case numbers.").Short('n').String()
	inputFile   = app.Flag("file", "File to scan for case numbers.").Short('f').ExistingFile()
	outDir      = app.Flag("out", "Directory for the generated reports.").Short('o').Default(".").String()
	baseURL     = app.Flag("base-url", "e-SAJ base URL.").Default(esaj.DefaultBaseURL).String()
	headless    = app.Flag("headless", "Run the browser headless.").Default("true").Bool()
	snapshotDir = app.Flag("snapshot-dir", "Save page snapshots of unexplained cases here.").String()
	pause       = app.Flag("pause", "Pause between cases.").Default("800ms").Duration()
	logLevel    = app.Flag("log-level", "debug, info, warn or error.").Default("warn").String()
	timezone    = app.Flag("timezone", "Timezone for report timestamps.").Default("America/Sao_Paulo").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	zlog, err := logger.New(*logLevel, "console")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	tz, err := time.LoadLocation(*timezone)
	if err != nil {
		app.Fatalf("timezone: %v", err)
	}

	var fileContents string
	if *inputFile != "" {
		raw, err := os.ReadFile(*inputFile)
		if err != nil {
			app.Fatalf("read %s: %v", *inputFile, err)
		}
		fileContents = string(raw)
	}

	cases := caseid.Recognize(*numbers, fileContents)
	if len(cases) == 0 {
		app.Fatalf("no valid case numbers in the input")
	}
	fmt.Printf("Processing %d case number(s)...\n", len(cases))

	trial := esaj.NewTrialClient(&http.Client{Timeout: 30 * time.Second}, *baseURL, zlog)
	sessionCfg := esaj.DefaultSessionConfig()
	sessionCfg.BaseURL = *baseURL
	sessionCfg.Headless = *headless
	newSession := func() (classify.AppellateSession, error) {
		return esaj.NewSession(sessionCfg, zlog)
	}

	runner := classify.NewRunner(newSession, trial, *pause, *snapshotDir, zlog)
	batch := runner.Run(context.Background(), cases, func(current, total int) {
		fmt.Printf("\r  %d/%d", current, total)
	})
	fmt.Println()

	now := time.Now().In(tz)

	xlsx, err := export.Excel(batch)
	if err != nil {
		app.Fatalf("excel: %v", err)
	}
	xlsxPath := filepath.Join(*outDir, export.Filename("xlsx", now))
	if err := os.WriteFile(xlsxPath, xlsx.Bytes(), 0o644); err != nil {
		app.Fatalf("write %s: %v", xlsxPath, err)
	}

	txtPath := filepath.Join(*outDir, export.Filename("txt", now))
	if err := os.WriteFile(txtPath, export.Text(batch, now), 0o644); err != nil {
		app.Fatalf("write %s: %v", txtPath, err)
	}

	color.Green("results:      %d", len(batch.Results))
	color.Red("errors:       %d", len(batch.Errors))
	color.Yellow("inconclusive: %d", len(batch.Inconclusive))
	fmt.Printf("\nreports written to %s and %s\n", xlsxPath, txtPath)
}
