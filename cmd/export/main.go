package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"familyhub/internal/config"
	"familyhub/internal/database"
	"familyhub/internal/repository"
	"familyhub/internal/service"
)

// export dumps one family's data as CSV from the command line, for
// ad-hoc backups without going through the HTTP API.
func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFamily := exportCmd.Int64("family", 0, "Family ID to export (required)")
	exportKind := exportCmd.String("kind", "", "What to export: chores, moods, events, or shopping (required)")
	exportOutput := exportCmd.String("output", "", "Output file path (default: familyhub_<kind>_YYYY-MM-DD.csv)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	exportService := service.NewExportService(
		repository.NewMemberRepository(db),
		repository.NewChoreRepository(db),
		repository.NewMoodRepository(db),
		repository.NewEventRepository(db),
		repository.NewShoppingRepository(db),
	)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if *exportFamily == 0 || *exportKind == "" {
			fmt.Println("Error: -family and -kind flags are required")
			exportCmd.PrintDefaults()
			os.Exit(1)
		}
		handleExport(exportService, *exportFamily, *exportKind, *exportOutput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(exportService *service.ExportService, familyID int64, kind, outputPath string) {
	if outputPath == "" {
		outputPath = service.ExportFilename(kind, time.Now())
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	switch kind {
	case "chores":
		err = exportService.ExportChores(f, familyID)
	case "moods":
		err = exportService.ExportMoods(f, familyID)
	case "events":
		err = exportService.ExportEvents(f, familyID)
	case "shopping":
		err = exportService.ExportShopping(f, familyID)
	default:
		log.Fatalf("Unknown export kind %q", kind)
	}
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fmt.Printf("Exported %s for family %d to %s\n", kind, familyID, outputPath)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  export -family <id> -kind <chores|moods|events|shopping> [-output <path>]")
}
