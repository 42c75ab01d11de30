package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes a demo catalog and filter declaration the storefront can serve
// out of the box.
// Usage: go run cmd/seed/main.go [-dir data]
// This is a standalone CLI tool, not part of the main application.
func main() {
	dir := flag.String("dir", "data", "output directory for catalogo.json and filtri.json")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("DIDIEFFE STOREFRONT - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	catalogPath := filepath.Join(*dir, "catalogo.json")
	filtersPath := filepath.Join(*dir, "filtri.json")

	if err := writeJSON(catalogPath, demoCatalog()); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}
	log.Printf("✓ Wrote %s", catalogPath)

	if err := writeJSON(filtersPath, demoFilters()); err != nil {
		log.Fatalf("Failed to write filters: %v", err)
	}
	log.Printf("✓ Wrote %s", filtersPath)

	fmt.Println()
	fmt.Println("✅ Demo catalog created")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront server: go run main.go")
	fmt.Println("2. Search: GET /api/v1/store/products?q=maniglia&f_colore=Oro")
	os.Exit(0)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func demoCatalog() []models.Product {
	maniglieGroup := uuid.Must(uuid.NewV7()).String()

	return []models.Product{
		{
			Code: "A001",
			Name: models.LocalizedText{"it": "Maniglia Oro", "en": "Gold Handle"},
			Description: models.LocalizedText{
				"it": "Maniglia per porta in ottone, finitura oro lucido",
				"en": "Brass door handle, polished gold finish",
			},
			Price:  49.90,
			Image:  "/img/a001.jpg",
			Attributes: map[string]models.AttributeValue{
				"colore":   {Kind: models.AttributeText, Text: "Oro"},
				"maniglie": {Kind: models.AttributeBool, Bool: true},
				"materiale": {Kind: models.AttributeLabeled,
					Label: models.LocalizedText{"it": "Materiale", "en": "Material"},
					Value: &models.AttributeValue{Kind: models.AttributeLocalized,
						Localized: models.LocalizedText{"it": "Ottone", "en": "Brass"}}},
			},
		},
		{
			Code: "A002",
			Name: models.LocalizedText{"it": "Maniglia Argento", "en": "Silver Handle"},
			Description: models.LocalizedText{
				"it": "Maniglia per porta in alluminio, finitura argento satinato",
				"en": "Aluminium door handle, satin silver finish",
			},
			Price:  39.90,
			Image:  "/img/a002.jpg",
			Attributes: map[string]models.AttributeValue{
				"colore":   {Kind: models.AttributeText, Text: "Argento"},
				"maniglie": {Kind: models.AttributeBool, Bool: true},
			},
		},
		{
			Code: "B100",
			Name: models.LocalizedText{"it": "Pomolo Classico", "en": "Classic Knob"},
			Description: models.LocalizedText{
				"it": "Pomolo fisso per porta d'ingresso",
			},
			Price:          24.50,
			VariantGroupID: maniglieGroup,
			Attributes: map[string]models.AttributeValue{
				"pomoli": {Kind: models.AttributeBool, Bool: true},
			},
			Variants: []models.Variant{
				{
					Code:  "B100-ORO",
					Price: 27.00,
					Image: "/img/b100-oro.jpg",
					Attributes: map[string]models.AttributeValue{
						"colore": {Kind: models.AttributeText, Text: "Oro"},
						"pomoli": {Kind: models.AttributeBool, Bool: true},
					},
					Qualifiers: map[string]string{"colore": "Oro"},
				},
				{
					Code:  "B100-NERO",
					Price: 24.50,
					Image: "/img/b100-nero.jpg",
					Attributes: map[string]models.AttributeValue{
						"colore": {Kind: models.AttributeText, Text: "Nero"},
						"pomoli": {Kind: models.AttributeBool, Bool: true},
					},
					Qualifiers: map[string]string{"colore": "Nero"},
				},
			},
		},
	}
}

func demoFilters() models.FilterConfig {
	return models.FilterConfig{
		Categories: []models.CategoryDefinition{
			{Key: "maniglie", Label: models.LocalizedText{"it": "Maniglie", "en": "Handles"}},
			{Key: "pomoli", Label: models.LocalizedText{"it": "Pomoli", "en": "Knobs"}},
		},
		Filters: []models.FilterDefinition{
			{
				Key:    "colore",
				Type:   models.FilterCheckbox,
				Values: []string{"Oro", "Argento", "Nero"},
				Options: []models.FilterOption{
					{Value: "Oro", Label: models.LocalizedText{"it": "Oro", "en": "Gold"}},
					{Value: "Argento", Label: models.LocalizedText{"it": "Argento", "en": "Silver"}},
					{Value: "Nero", Label: models.LocalizedText{"it": "Nero", "en": "Black"}},
				},
			},
			{
				Key:    "materiale",
				Type:   models.FilterTags,
				Values: []string{"Ottone", "Alluminio", "Acciaio"},
			},
			{
				Key:    models.PriceFilterKey,
				Type:   models.FilterRange,
				Values: []string{},
			},
		},
	}
}
