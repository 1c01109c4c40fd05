package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"stylehub/internal/model"
)

// generateSampleCatalog creates a gzipped sample catalogue file matching
// the format the API loads at startup.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	now := time.Now().UTC()
	products := []model.Product{
		{
			ID:          "p-1001",
			Name:        "Classic Cotton Tee",
			Brand:       "UrbanThread",
			Price:       499,
			Category:    "men",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Navy"},
			Image:       "https://images.stylehub.test/p-1001.jpg",
			Description: "Everyday crew-neck tee in combed cotton.",
			CreatedAt:   now.AddDate(0, -3, 0),
		},
		{
			ID:          "p-1002",
			Name:        "Slim Fit Chinos",
			Brand:       "UrbanThread",
			Price:       1299,
			Category:    "men",
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Olive"},
			Image:       "https://images.stylehub.test/p-1002.jpg",
			Description: "Stretch-twill chinos with a tapered leg.",
			CreatedAt:   now.AddDate(0, -2, -10),
		},
		{
			ID:          "p-2001",
			Name:        "Floral Wrap Dress",
			Brand:       "Meadow",
			Price:       1799,
			Category:    "women",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Rose", "Teal"},
			Image:       "https://images.stylehub.test/p-2001.jpg",
			Description: "Lightweight wrap dress with an all-over floral print.",
			CreatedAt:   now.AddDate(0, -1, -5),
		},
		{
			ID:          "p-2002",
			Name:        "High-Rise Skinny Jeans",
			Brand:       "DenimCo",
			Price:       1599,
			Category:    "women",
			Sizes:       []string{"26", "28", "30", "32"},
			Colors:      []string{"Indigo", "Black"},
			Image:       "https://images.stylehub.test/p-2002.jpg",
			Description: "Five-pocket skinny jeans with recovery stretch.",
			CreatedAt:   now.AddDate(0, -1, 0),
		},
		{
			ID:          "p-3001",
			Name:        "Canvas Low-Top Sneakers",
			Brand:       "Strider",
			Price:       999,
			Category:    "footwear",
			Sizes:       []string{"7", "8", "9", "10", "11"},
			Colors:      []string{"White", "Red"},
			Image:       "https://images.stylehub.test/p-3001.jpg",
			Description: "Vulcanised canvas sneakers with a cushioned insole.",
			CreatedAt:   now.AddDate(0, 0, -20),
		},
		{
			ID:          "p-4001",
			Name:        "Leather Belt",
			Brand:       "Harness",
			Price:       699,
			Category:    "accessories",
			Colors:      []string{"Brown", "Black"},
			Image:       "https://images.stylehub.test/p-4001.jpg",
			Description: "Full-grain leather belt with a brushed buckle.",
			CreatedAt:   now.AddDate(0, 0, -12),
		},
		{
			ID:          "p-4002",
			Name:        "Wool Blend Scarf",
			Brand:       "Meadow",
			Price:       899,
			Category:    "accessories",
			Colors:      []string{"Grey", "Mustard"},
			Image:       "https://images.stylehub.test/p-4002.jpg",
			Description: "Soft wool-blend scarf for cooler evenings.",
			CreatedAt:   now.AddDate(0, 0, -3),
		},
	}

	filePath := filepath.Join(dataDir, "products.json.gz")
	if err := writeCatalogFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func writeCatalogFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	if err := json.NewEncoder(gzipWriter).Encode(products); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}

	return nil
}
