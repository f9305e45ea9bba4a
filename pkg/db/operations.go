package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ziink4/Jerk/models"
)

// Run summarizes one archived scrape run.
type Run struct {
	RunID          int64
	SitemapURL     string
	URLCount       int
	SuccessCount   int
	FailedCount    int
	ElapsedSeconds float64
}

// InsertRun records a completed run and returns its run_id.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (sitemap_url, url_count, success_count, failed_count, elapsed_seconds)
		VALUES (?, ?, ?, ?, ?)
	`, run.SitemapURL, run.URLCount, run.SuccessCount, run.FailedCount, run.ElapsedSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRecord archives one extracted record under a run. Nil fields map
// to NULL columns directly since the record already uses pointers.
func (db *DB) InsertRecord(runID int64, pageName string, record models.Record) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO records (
			run_id, url, page_name, model, year,
			power_hp, power_kw, torque, displacement,
			wet_weight_kg, wet_weight_lb, dry_weight_kg, dry_weight_lb,
			power_weight_ratio
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, record.URL, pageName, record.Model, record.Year,
		record.PowerHP, record.PowerKW, record.Torque, record.Displacement,
		record.WetWeightKG, record.WetWeightLB, record.DryWeightKG, record.DryWeightLB,
		record.PowerToWeight)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	recordID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record ID: %w", err)
	}
	return recordID, nil
}

// GetRunRecords returns the archived records of a run, in insert order.
func (db *DB) GetRunRecords(runID int64) ([]models.Record, error) {
	rows, err := db.Query(`
		SELECT url, model, year, power_hp, power_kw, torque, displacement,
		       wet_weight_kg, wet_weight_lb, dry_weight_kg, dry_weight_lb,
		       power_weight_ratio
		FROM records WHERE run_id = ? ORDER BY record_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.URL, &r.Model, &r.Year, &r.PowerHP, &r.PowerKW,
			&r.Torque, &r.Displacement, &r.WetWeightKG, &r.WetWeightLB,
			&r.DryWeightKG, &r.DryWeightLB, &r.PowerToWeight); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LatestRun returns the most recent archived run, or nil when the
// archive is empty.
func (db *DB) LatestRun() (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, sitemap_url, url_count, success_count, failed_count, elapsed_seconds
		FROM runs ORDER BY run_id DESC LIMIT 1
	`).Scan(&run.RunID, &run.SitemapURL, &run.URLCount, &run.SuccessCount,
		&run.FailedCount, &run.ElapsedSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}
	return &run, nil
}
