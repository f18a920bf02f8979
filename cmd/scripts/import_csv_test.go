package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// writeCSV drops a customer CSV file into a temp directory
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}
	return path
}

// TestReadCustomers ensures valid rows parse into customer records with
// the extra tags appended to every row.
func TestReadCustomers(t *testing.T) {
	path := writeCSV(t, "name,email,totalSpend,visitCount,lastOrderDate,status,tags\n"+
		"Rahul Sharma,rahul.sharma@example.com,15750,8,2023-01-15,active,premium;loyal\n"+
		"Priya Patel,priya.patel@example.com,4350,3,2022-11-30,new,\n")

	customers, err := readCustomers(path, []string{"import-batch-1"})
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(customers))
	}

	first := customers[0]
	if first.Name != "Rahul Sharma" || first.TotalSpend != 15750 || first.VisitCount != 8 {
		t.Fatalf("first row parsed as %+v", first)
	}
	if first.Status != models.CustomerStatusActive {
		t.Fatalf("first status = %q, want active", first.Status)
	}
	want := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !first.LastOrderDate.Equal(want) {
		t.Fatalf("first last order date = %v, want %v", first.LastOrderDate, want)
	}
	if len(first.Tags) != 3 || first.Tags[2] != "import-batch-1" {
		t.Fatalf("first tags = %v, want premium, loyal and the extra tag", first.Tags)
	}
	if first.ID == "" || first.ID == customers[1].ID {
		t.Fatal("rows did not get distinct generated IDs")
	}

	// Empty tag column still picks up the extra tags
	if len(customers[1].Tags) != 1 || customers[1].Tags[0] != "import-batch-1" {
		t.Fatalf("second tags = %v, want only the extra tag", customers[1].Tags)
	}
}

// TestReadCustomersRejectsBadRows ensures malformed rows fail the whole
// import with a row-numbered error.
func TestReadCustomersRejectsBadRows(t *testing.T) {
	header := "name,email,totalSpend,visitCount,lastOrderDate,status,tags\n"

	tests := []struct {
		name string
		row  string
	}{
		{"bad spend", "Rahul Sharma,rahul@example.com,lots,8,2023-01-15,active,\n"},
		{"bad visits", "Rahul Sharma,rahul@example.com,100,many,2023-01-15,active,\n"},
		{"bad date", "Rahul Sharma,rahul@example.com,100,8,January,active,\n"},
		{"bad status", "Rahul Sharma,rahul@example.com,100,8,2023-01-15,vip,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, header+tt.row)
			if _, err := readCustomers(path, nil); err == nil {
				t.Fatal("malformed row imported without error")
			}
		})
	}
}

// TestReadCustomersEmptyFile ensures a header-only file is rejected.
func TestReadCustomersEmptyFile(t *testing.T) {
	path := writeCSV(t, "name,email,totalSpend,visitCount,lastOrderDate,status,tags\n")
	if _, err := readCustomers(path, nil); err == nil {
		t.Fatal("header-only file imported without error")
	}
}
