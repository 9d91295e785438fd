package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"menuhub/internal/bilingual"
	"menuhub/internal/catalog"
	"menuhub/internal/translate"
	"menuhub/pkg/database"
	"menuhub/pkg/utils"
)

// Bulk menu import. Rows with only one name filled get the other derived
// through the translation cache, same as items entered by hand.
func main() {
	var (
		itemsIn = flag.String("items", "data/menu_items.csv", "input CSV path for menu items")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := catalog.NewRepo(db)
	if err := repo.SeedDefaults(ctx); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	trCfg := utils.LoadTranslateConfig()
	memo := translate.NewMemoizer(translate.NewMyMemory(trCfg))
	engine := bilingual.NewEngine(memo, trCfg.PrimaryTag, trCfg.SecondaryTag)

	n, err := importItems(ctx, repo, engine, *itemsIn)
	if err != nil {
		log.Fatalf("import items failed: %v", err)
	}

	log.Printf("imported %d menu items from %s", n, *itemsIn)
}

func importItems(ctx context.Context, repo *catalog.Repo, engine *bilingual.Engine, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, err
		}
		if len(row) == 0 {
			continue
		}

		nameEN := valueAt(header, row, "name_en")
		nameAR := valueAt(header, row, "name_ar")
		if nameEN == "" && nameAR == "" {
			continue
		}

		nameEN, nameAR = engine.Complete(ctx, nameEN, nameAR)

		category := valueAt(header, row, "category")
		if category != "" {
			// register unseen categories; duplicates just report exists
			if _, err := repo.AddCategory(ctx, category); err != nil {
				return imported, err
			}
		}

		if _, err := repo.CreateItem(ctx, catalog.ItemFields{
			Category: category,
			NameEN:   nameEN,
			NameAR:   nameAR,
			Price:    valueAt(header, row, "price"),
			Origin:   valueAt(header, row, "origin"),
			Process:  valueAt(header, row, "process"),
			Flavors:  valueAt(header, row, "flavors"),
			Image:    valueAt(header, row, "image"),
		}); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
