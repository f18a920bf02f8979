package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/TargetKart/targetkart-backend/internal/config"
	"github.com/TargetKart/targetkart-backend/internal/models"
	mongorepo "github.com/TargetKart/targetkart-backend/internal/repositories/mongodb"
	"github.com/TargetKart/targetkart-backend/pkg/mongodb"
)

// main imports customers from a CSV file into MongoDB.
// Knobs beyond the connection settings:
//
//	CSV_IMPORT_DRY_RUN    parse and report without writing (default false)
//	CSV_IMPORT_BATCH_SIZE insert batch size (default 500)
//	CSV_IMPORT_TAGS       comma-separated tags added to every imported customer
func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get CSV file path from command line arguments
	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	dryRun := config.GetEnvAsBool("CSV_IMPORT_DRY_RUN", false)
	batchSize := config.GetEnvAsInt("CSV_IMPORT_BATCH_SIZE", 500)
	if batchSize < 1 {
		batchSize = 500
	}
	extraTags := config.GetEnvAsSlice("CSV_IMPORT_TAGS", ",", nil)

	customers, err := readCustomers(csvFilePath, extraTags)
	if err != nil {
		log.Fatalf("Failed to read CSV file: %v", err)
	}

	if dryRun {
		log.Printf("Dry run: parsed %d customers, nothing imported", len(customers))
		return
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := config.GetEnv("MONGODB_DATABASE", "targetkart")

	// Connect to MongoDB
	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	repo := mongorepo.NewCustomerRepository(client.Database(dbName))
	for start := 0; start < len(customers); start += batchSize {
		end := start + batchSize
		if end > len(customers) {
			end = len(customers)
		}
		if err := repo.CreateMany(context.Background(), customers[start:end]); err != nil {
			log.Fatalf("Failed to import customers %d-%d: %v", start, end, err)
		}
	}

	log.Printf("Imported %d customers successfully", len(customers))
}

// readCustomers parses a CSV file into customer records, appending the
// extra tags to every row.
// Expected columns: name, email, totalSpend, visitCount, lastOrderDate, status, tags
func readCustomers(csvFilePath string, extraTags []string) ([]*models.Customer, error) {
	// Open CSV file
	file, err := os.Open(csvFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Parse CSV file
	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %v", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file has no data rows")
	}

	// Skip header row
	customers := make([]*models.Customer, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 7 {
			return nil, fmt.Errorf("row %d: expected 7 columns, got %d", i+2, len(record))
		}

		totalSpend, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid totalSpend %q", i+2, record[2])
		}

		visitCount, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid visitCount %q", i+2, record[3])
		}

		lastOrderDate, err := time.Parse("2006-01-02", strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid lastOrderDate %q", i+2, record[4])
		}

		status := models.CustomerStatus(strings.TrimSpace(record[5]))
		switch status {
		case models.CustomerStatusActive, models.CustomerStatusInactive, models.CustomerStatusNew:
		default:
			return nil, fmt.Errorf("row %d: invalid status %q", i+2, record[5])
		}

		var tags []string
		for _, tag := range strings.Split(record[6], ";") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		tags = append(tags, extraTags...)

		customers = append(customers, &models.Customer{
			ID:            uuid.NewString(),
			Name:          strings.TrimSpace(record[0]),
			Email:         strings.TrimSpace(record[1]),
			TotalSpend:    totalSpend,
			VisitCount:    visitCount,
			LastOrderDate: lastOrderDate,
			Status:        status,
			Tags:          tags,
			CreatedAt:     time.Now(),
		})
	}

	return customers, nil
}
