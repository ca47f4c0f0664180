package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadTrend(t *testing.T) {
	dir := t.TempDir()
	trendPath := writeFile(t, dir, "trend.csv",
		"date,new_cases_smoothed,prediction\n"+
			"2021-06-01,1000.5,900.25\n"+
			"2021-06-02,1200,1250\n")

	source := NewSource(trendPath, filepath.Join(dir, "countries.csv"))

	records, err := source.LoadTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	want := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	if !records[0].Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, records[0].Date)
	}
	if records[0].SmoothedNewCases != 1000.5 || records[0].PredictedNewCases != 900.25 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestLoadCountries_ColumnOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	// Header order differs from the struct field order on purpose.
	countriesPath := writeFile(t, dir, "countries.csv",
		"location,iso_code,population,continent,total_cases,total_deaths,mortality_rate,vaccination_rate\n"+
			"France,FRA,67000000,Europe,100,5,5.0,70.0\n")

	source := NewSource(filepath.Join(dir, "trend.csv"), countriesPath)

	records, err := source.LoadCountries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ISOCode != "FRA" || rec.Location != "France" || rec.Continent != "Europe" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.TotalCases != 100 || rec.TotalDeaths != 5 {
		t.Fatalf("unexpected counts: %+v", rec)
	}
	if rec.VaccinationRate != 70 || rec.MortalityRate != 5 {
		t.Fatalf("unexpected rates: %+v", rec)
	}
	if rec.Population != 67000000 {
		t.Fatalf("unexpected population: %d", rec.Population)
	}
}

func TestLoadCountries_BlankNumericCellIsZero(t *testing.T) {
	dir := t.TempDir()
	countriesPath := writeFile(t, dir, "countries.csv",
		"iso_code,location,continent,total_cases,total_deaths,vaccination_rate,mortality_rate,population\n"+
			"VAT,Vatican,Europe,,0,,0,800\n")

	source := NewSource(filepath.Join(dir, "trend.csv"), countriesPath)

	records, err := source.LoadCountries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].TotalCases != 0 || records[0].VaccinationRate != 0 {
		t.Fatalf("expected blank cells to parse as zero, got %+v", records[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	source := NewSource(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "missing2.csv"))

	_, err := source.LoadTrend(context.Background())
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}

	_, err = source.LoadCountries(context.Background())
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestLoadTrend_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	trendPath := writeFile(t, dir, "trend.csv",
		"date,new_cases_smoothed\n2021-06-01,1000\n")

	source := NewSource(trendPath, filepath.Join(dir, "countries.csv"))

	_, err := source.LoadTrend(context.Background())
	if err == nil {
		t.Fatalf("expected an error for the missing prediction column")
	}
}
