package db

import (
	"testing"

	"github.com/Ziink4/Jerk/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{
		SitemapURL:     "https://bikez.com/sitemap/motorcycle-specs.xml",
		URLCount:       3,
		SuccessCount:   2,
		FailedCount:    1,
		ElapsedSeconds: 1.5,
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 ID")
	}

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun() error = %v", err)
	}
	if latest == nil {
		t.Fatal("LatestRun() = nil after insert")
	}
	if latest.RunID != runID || latest.SuccessCount != 2 || latest.FailedCount != 1 {
		t.Errorf("LatestRun() = %+v, want run %d with 2/1 counts", latest, runID)
	}
}

func TestLatestRunEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun() error = %v", err)
	}
	if latest != nil {
		t.Errorf("LatestRun() on empty archive = %+v, want nil", latest)
	}
}

func TestInsertAndGetRecords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{SitemapURL: "https://bikez.com/sitemap.xml", URLCount: 2, SuccessCount: 2})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	full := models.Record{
		Model:         models.String("Yamaha YZF-R1"),
		Year:          models.Int(2007),
		PowerHP:       models.Float(180),
		PowerKW:       models.Float(131.4),
		Torque:        models.String("112.7 Nm"),
		Displacement:  models.String("998.0 ccm"),
		WetWeightKG:   models.Float(199),
		WetWeightLB:   models.Float(438.7),
		DryWeightKG:   models.Float(177),
		DryWeightLB:   models.Float(390.2),
		PowerToWeight: models.Float(0.9045),
		URL:           "https://bikez.com/motorcycles/yamaha_yzf-r1_2007.php",
	}
	sparse := models.Record{
		URL: "https://bikez.com/motorcycles/sparse.php",
	}

	if _, err := db.InsertRecord(runID, "yamaha_yzf-r1_2007", full); err != nil {
		t.Fatalf("InsertRecord(full) error = %v", err)
	}
	if _, err := db.InsertRecord(runID, "sparse", sparse); err != nil {
		t.Fatalf("InsertRecord(sparse) error = %v", err)
	}

	records, err := db.GetRunRecords(runID)
	if err != nil {
		t.Fatalf("GetRunRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("GetRunRecords() returned %d records, want 2", len(records))
	}

	got := records[0]
	if got.URL != full.URL {
		t.Errorf("record URL = %q, want %q", got.URL, full.URL)
	}
	if got.Model == nil || *got.Model != "Yamaha YZF-R1" {
		t.Errorf("record Model = %v, want Yamaha YZF-R1", got.Model)
	}
	if got.Year == nil || *got.Year != 2007 {
		t.Errorf("record Year = %v, want 2007", got.Year)
	}
	if got.PowerHP == nil || *got.PowerHP != 180 {
		t.Errorf("record PowerHP = %v, want 180", got.PowerHP)
	}

	// Nil fields round-trip as nil, never as zero values.
	gotSparse := records[1]
	if gotSparse.Model != nil || gotSparse.Year != nil || gotSparse.PowerHP != nil {
		t.Errorf("sparse record came back with non-nil fields: %+v", gotSparse)
	}
	if gotSparse.URL != sparse.URL {
		t.Errorf("sparse record URL = %q, want %q", gotSparse.URL, sparse.URL)
	}
}
