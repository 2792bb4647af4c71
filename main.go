package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/skool/internal/database"
	"github.com/example/skool/internal/excel"
	"github.com/example/skool/internal/notify"
	"github.com/example/skool/internal/scheduler"
)

func main() {
	importPath := flag.String("import", "", "import items from an .xlsx or .csv file and exit")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importPath != "" {
		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = *importPath
		result, err := excel.ImportItems(importConfig)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Import done: %d processed, %d created, %d updated, %d skipped, %d errors",
			result.TotalProcessed, result.Created, result.Updated, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
		return
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	notifier, err := notify.NewTelegramNotifier(token)
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	sched := scheduler.New(notifier)
	sched.Start()
	log.Println("Reminder scheduler started. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	sched.Stop()
	log.Println("Scheduler stopped successfully")
}
