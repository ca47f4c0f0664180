package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
)

// Source reads the two batch-job output files. Columns are located by header
// name, so column order in the files does not matter.
type Source struct {
	trendPath     string
	countriesPath string
}

func NewSource(trendPath, countriesPath string) *Source {
	return &Source{
		trendPath:     trendPath,
		countriesPath: countriesPath,
	}
}

var _ ports.DatasetSourcePort = (*Source)(nil)

const dateLayout = "2006-01-02"

func (s *Source) LoadTrend(ctx context.Context) ([]domain.TrendRecord, error) {
	rows, header, err := readTable(s.trendPath)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header, "date", "new_cases_smoothed", "prediction")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.trendPath, err)
	}

	records := make([]domain.TrendRecord, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse(dateLayout, row[cols["date"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.trendPath, i+2, err)
		}

		smoothed, err := parseNumber(row[cols["new_cases_smoothed"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.trendPath, i+2, err)
		}

		predicted, err := parseNumber(row[cols["prediction"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.trendPath, i+2, err)
		}

		records = append(records, domain.TrendRecord{
			Date:              date,
			SmoothedNewCases:  smoothed,
			PredictedNewCases: predicted,
		})
	}

	return records, nil
}

func (s *Source) LoadCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	rows, header, err := readTable(s.countriesPath)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header,
		"iso_code", "location", "continent",
		"total_cases", "total_deaths",
		"vaccination_rate", "mortality_rate", "population",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.countriesPath, err)
	}

	records := make([]domain.CountryRecord, 0, len(rows))
	for i, row := range rows {
		rec := domain.CountryRecord{
			ISOCode:   row[cols["iso_code"]],
			Location:  row[cols["location"]],
			Continent: row[cols["continent"]],
		}

		numeric := []struct {
			col  string
			dest *float64
		}{
			{"total_cases", &rec.TotalCases},
			{"total_deaths", &rec.TotalDeaths},
			{"vaccination_rate", &rec.VaccinationRate},
			{"mortality_rate", &rec.MortalityRate},
		}
		for _, n := range numeric {
			v, err := parseNumber(row[cols[n.col]])
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %s: %w", s.countriesPath, i+2, n.col, err)
			}
			*n.dest = v
		}

		pop, err := parseNumber(row[cols["population"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d column population: %w", s.countriesPath, i+2, err)
		}
		rec.Population = int64(pop)

		records = append(records, rec)
	}

	return records, nil
}

// readTable opens the file and returns its data rows plus the header row.
// An absent file is the fatal ResourceNotFound condition.
func readTable(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrResourceNotFound, path)
		}
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	return rows, header, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}

	cols := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		cols[name] = i
	}

	return cols, nil
}

// parseNumber treats an empty cell as zero; the batch job leaves blanks for
// countries with no reported data.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
