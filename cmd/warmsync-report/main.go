package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"warmsync.app/warmsync/config"
	"warmsync.app/warmsync/core"
	"warmsync.app/warmsync/export"
	"warmsync.app/warmsync/ingest"
	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/store"
)

// warmsync-report builds one monthly report from the command line, without
// the server: fetch or read the punch data, aggregate, print, and
// optionally save the printable workbook.
func main() {
	url := flag.String("url", "", "punch data endpoint (defaults to the saved source URL)")
	file := flag.String("file", "", "read a local .csv or .xlsx instead of fetching")
	sheet := flag.String("sheet", "", "workbook sheet name (first sheet if empty)")
	name := flag.String("name", "", "employee name filter (defaults to the saved name)")
	month := flag.String("month", time.Now().Format("2006-01"), "report month, yyyy-MM")
	rate := flag.Float64("rate", -1, "hourly rate (defaults to the saved rate)")
	out := flag.String("out", "", "write the printable report to this .xlsx path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	settings, err := db.Load()
	if err != nil {
		log.Fatal(err)
	}

	if *name == "" {
		*name = settings.EmployeeName
	}
	if *rate < 0 {
		*rate = cfg.DefaultRate
		if settings.HourlyRate > 0 {
			*rate = settings.HourlyRate
		}
	}

	when, err := time.Parse("2006-01", *month)
	if err != nil {
		log.Fatalf("bad -month value %q, want yyyy-MM", *month)
	}

	payload, err := loadPayload(*url, *file, *sheet, settings, cfg)
	if err != nil {
		log.Fatal(err)
	}

	shifts := core.NormalizeRows(payload.Rows)
	report := core.BuildReport(shifts, core.ReportOptions{
		EmployeeName: *name,
		Year:         when.Year(),
		Month:        when.Month(),
		HourlyRate:   *rate,
		Rounding:     cfg.RoundingPolicy(),
		EndFallback:  cfg.Fallback(),
	})
	if report == nil {
		fmt.Printf("no shifts for %q in %s\n", *name, *month)
		if names := core.DetectNames(shifts); len(names) > 0 {
			fmt.Printf("names in the data: %s\n", strings.Join(names, ", "))
		}
		os.Exit(1)
	}

	printReport(report)

	if *out != "" {
		if err := export.SaveReport(report, *name, *out); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

func loadPayload(url, file, sheet string, settings model.Settings, cfg *config.Config) (*ingest.Payload, error) {
	if file != "" {
		if strings.EqualFold(filepath.Ext(file), ".csv") {
			f, err := os.Open(file)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return ingest.ParseDelimited(f)
		}
		return ingest.ReadWorkbook(file, sheet)
	}

	if url == "" {
		url = settings.SourceURL
	}
	if url == "" {
		return nil, fmt.Errorf("no data source: pass -url or -file, or save a source URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return ingest.NewClient(cfg.SourceToken).FetchRows(ctx, url)
}

func printReport(report *model.MonthlyReport) {
	fmt.Printf("Month %s  hours %.2f  rate %g  pay %d\n\n", report.Month, report.TotalHours, report.HourlyRate, report.TotalPay)
	for _, s := range report.Shifts {
		notes := s.Notes
		if notes != "" {
			notes = "  " + notes
		}
		fmt.Printf("%s  %5s - %5s  %5.2fh%s\n", s.Date, s.StartTime, s.EndTime, s.TotalHours, notes)
	}
}
