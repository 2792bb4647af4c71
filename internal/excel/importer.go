package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/skool/internal/database"
	"github.com/example/skool/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath   string // Path to the Excel or CSV file
	SheetName  string // Name of the sheet to import
	StartRow   int    // The row to start importing from (1-based index)
}

// Expected columns: A=label, B=reading, C=meaning, D=image_url, E=audience

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  2, // skip header
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportItems imports learning items from an Excel or CSV file
func ImportItems(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	itemRepo := database.NewItemRepository()

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, itemRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	itemRepo := database.NewItemRepository()

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, itemRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow creates or updates one item from a raw row
func processRow(row []string, itemRepo *database.ItemRepository, result *ImportResult) error {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	label := get(0)
	if label == "" {
		result.Skipped++
		return nil
	}

	item := models.Item{
		Label:    label,
		Reading:  get(1),
		Meaning:  get(2),
		ImageURL: get(3),
		Audience: get(4),
	}
	if item.Audience == "" {
		item.Audience = "all"
	}

	existing, err := itemRepo.GetByLabel(label)
	if err != nil {
		return err
	}
	if existing != nil {
		item.ID = existing.ID
		if err := itemRepo.Update(&item); err != nil {
			return err
		}
		result.Updated++
		return nil
	}

	if err := itemRepo.Create(&item); err != nil {
		return err
	}
	result.Created++
	return nil
}
