package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"menuhub/internal/catalog"
	"menuhub/pkg/database"
)

// Dumps the catalog to CSV files the import-csv tool can read back.
func main() {
	var (
		itemsOut      = flag.String("items", "data/menu_items.csv", "output CSV path for menu items")
		categoriesOut = flag.String("categories", "data/categories.csv", "output CSV path for categories")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := catalog.NewRepo(db)

	if err := exportItems(ctx, repo, *itemsOut); err != nil {
		log.Fatalf("export items failed: %v", err)
	}
	if err := exportCategories(ctx, repo, *categoriesOut); err != nil {
		log.Fatalf("export categories failed: %v", err)
	}

	log.Printf("✅ exported items to %s and categories to %s", *itemsOut, *categoriesOut)
}

func exportItems(ctx context.Context, repo *catalog.Repo, outPath string) error {
	f, err := createOut(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "category", "name_en", "name_ar", "price", "origin", "process", "flavors", "image"}); err != nil {
		return err
	}

	items, err := repo.ListItems(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		record := []string{it.ID, it.Category, it.NameEN, it.NameAR, it.Price, it.Origin, it.Process, it.Flavors, it.Image}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportCategories(ctx context.Context, repo *catalog.Repo, outPath string) error {
	f, err := createOut(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name"}); err != nil {
		return err
	}

	names, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := w.Write([]string{name}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func createOut(outPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, err
	}
	return os.Create(outPath)
}
