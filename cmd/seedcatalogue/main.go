// Command seedcatalogue converts a catalogue workbook into a SQL seed
// file. The workbook needs a Catalogues sheet (id, name, description)
// and a Products sheet (id, catalogue_id, name, description, price).
// Usage: go run ./cmd/seedcatalogue catalogue.xlsx
// Output: db/seeds/catalogue.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type catalogueRow struct {
	id          string
	name        string
	description string
}

type productRow struct {
	id          string
	catalogueID string
	name        string
	description string
	price       float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedcatalogue <workbook.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/catalogue.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	catalogues, err := parseCatalogues(f)
	if err != nil {
		return fmt.Errorf("parse Catalogues sheet: %w", err)
	}
	log.Printf("Catalogues sheet: %d entries", len(catalogues))

	products, err := parseProducts(f)
	if err != nil {
		return fmt.Errorf("parse Products sheet: %w", err)
	}
	log.Printf("Products sheet: %d entries", len(products))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	b.WriteString("-- Catalogue seed data generated from workbook.\n")
	fmt.Fprintf(&b, "-- %d catalogues, %d products.\n", len(catalogues), len(products))
	b.WriteString("BEGIN;\n\n")

	if len(catalogues) > 0 {
		b.WriteString("INSERT INTO catalogues (id, name, description) VALUES\n")
		for i, c := range catalogues {
			if i > 0 {
				b.WriteString(",\n")
			}
			fmt.Fprintf(&b, "  ('%s', '%s', '%s')",
				escapeSQL(c.id), escapeSQL(c.name), escapeSQL(c.description))
		}
		b.WriteString("\nON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(products) > 0 {
		b.WriteString("INSERT INTO products (id, catalogue_id, name, description, price) VALUES\n")
		for i, p := range products {
			if i > 0 {
				b.WriteString(",\n")
			}
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %.2f)",
				escapeSQL(p.id), escapeSQL(p.catalogueID), escapeSQL(p.name), escapeSQL(p.description), p.price)
		}
		b.WriteString("\nON CONFLICT (id) DO NOTHING;\n\n")
	}

	b.WriteString("COMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}

	log.Printf("Generated %s", outPath)
	return nil
}

// parseCatalogues reads the Catalogues sheet. Row 0 is the header.
func parseCatalogues(f *excelize.File) ([]catalogueRow, error) {
	rows, err := f.GetRows("Catalogues")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []catalogueRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		id := strings.TrimSpace(cellVal(row, 0))
		name := strings.TrimSpace(cellVal(row, 1))
		if id == "" || name == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, catalogueRow{
			id:          id,
			name:        name,
			description: strings.TrimSpace(cellVal(row, 2)),
		})
	}
	return out, nil
}

// parseProducts reads the Products sheet. Row 0 is the header.
func parseProducts(f *excelize.File) ([]productRow, error) {
	rows, err := f.GetRows("Products")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []productRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		id := strings.TrimSpace(cellVal(row, 0))
		catalogueID := strings.TrimSpace(cellVal(row, 1))
		name := strings.TrimSpace(cellVal(row, 2))
		if id == "" || catalogueID == "" || name == "" || seen[id] {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, 4)), 64)
		if err != nil {
			log.Printf("skipping product %s: bad price %q", id, cellVal(row, 4))
			continue
		}

		seen[id] = true
		out = append(out, productRow{
			id:          id,
			catalogueID: catalogueID,
			name:        name,
			description: strings.TrimSpace(cellVal(row, 3)),
			price:       price,
		})
	}
	return out, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
