package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vitrina/vitrina-backend/config"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/internal/db"
	"github.com/vitrina/vitrina-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Seed importer for catalog spreadsheets.
//
// Expected columns: Name | Description | SKU | Price | Options
// The Options column lists options and their values, for example:
//
//	Размер: S, M, L | Цвет: Красный, Синий
type seedProduct struct {
	product model.Product
	options []seedOption
}

type seedOption struct {
	name   string
	values []string
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	optionRepo := repository.NewOptionRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for _, p := range products {
		product := p.product
		if err := productRepo.Create(&product); err != nil {
			fmt.Printf("  Skipped %q: %v\n", product.Name, err)
			continue
		}

		for _, opt := range p.options {
			option := model.ProductOption{
				ProductID: product.ID,
				Name:      opt.name,
				Slug:      util.Slugify(opt.name),
				Type:      model.OptionTypeText,
				Metadata:  "{}",
			}
			if err := optionRepo.Create(&option); err != nil {
				fmt.Printf("  Skipped option %q of %q: %v\n", opt.name, product.Name, err)
				continue
			}
			for i, v := range opt.values {
				value := model.ProductOptionValue{
					OptionID:    option.ID,
					Value:       v,
					DisplayName: v,
					SortOrder:   i + 1,
					Metadata:    "{}",
				}
				if err := optionRepo.CreateValue(&value); err != nil {
					fmt.Printf("  Skipped value %q of %q: %v\n", v, opt.name, err)
				}
			}
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func readProductsFromXLSX(filePath string) ([]seedProduct, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []seedProduct
	seenSlugs := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < 4 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		sku := strings.TrimSpace(row[2])
		priceStr := strings.TrimSpace(row[3])

		if name == "" || priceStr == "" {
			skippedCount++
			continue
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			skippedCount++
			continue
		}

		slug := util.Slugify(name)
		if seenSlugs[slug] {
			skippedCount++
			continue
		}
		seenSlugs[slug] = true

		entry := seedProduct{
			product: model.Product{
				Name:        name,
				Slug:        slug,
				Description: description,
				SKU:         sku,
				Price:       price,
				IsActive:    true,
			},
		}
		if len(row) > 4 {
			entry.options = parseOptions(row[4])
		}

		products = append(products, entry)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return products, nil
}

// parseOptions parses "Размер: S, M, L | Цвет: Красный, Синий" into
// option groups. Malformed segments are dropped.
func parseOptions(cell string) []seedOption {
	var options []seedOption
	for _, segment := range strings.Split(cell, "|") {
		parts := strings.SplitN(segment, ":", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		var values []string
		seen := make(map[string]bool)
		for _, v := range strings.Split(parts[1], ",") {
			v = strings.TrimSpace(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		options = append(options, seedOption{name: name, values: values})
	}
	return options
}
