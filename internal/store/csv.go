// Package store persists record sets and reports. Records go to CSV with a
// fixed column layout that downstream tabular tooling depends on; reports
// go to JSON.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// recordHeader is the column contract of the record CSV. Order matters.
var recordHeader = []string{
	"id", "publication", "time_from", "time_to",
	"province", "findspot", "find_lat", "find_long",
	"text", "cleantext", "keywords", "material",
	"migrant", "origin_pid", "origin_name", "origin_path",
	"origin_lat", "origin_long", "distance_km", "ignored",
	"text_length", "funerary", "possible_migrant", "probable_migrant",
	"names", "gender",
}

// WriteRecords writes the record set as CSV. Absent optional fields are
// encoded with the "n/a" sentinel; flags are 0/1.
func WriteRecords(path string, records []model.MigrantRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := w.Write(row(&records[i])); err != nil {
			return fmt.Errorf("write record %s: %w", records[i].ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func row(rec *model.MigrantRecord) []string {
	findLat, findLong := coords(rec.FindCoords)
	originLat, originLong := coords(rec.OriginCoords)
	return []string{
		rec.ID,
		rec.Publication,
		optInt(rec.TimeFrom),
		optInt(rec.TimeTo),
		rec.Province,
		rec.Findspot,
		findLat,
		findLong,
		rec.Text,
		rec.CleanText,
		rec.Keywords,
		rec.Material,
		flag(rec.Migrant),
		orNA(rec.OriginPlaceID),
		orNA(rec.OriginName),
		orNA(rec.OriginPath),
		originLat,
		originLong,
		optFloat(rec.DistanceKm),
		flag(rec.Ignored),
		strconv.Itoa(rec.Meta.TextLength),
		flag(rec.Meta.Funerary),
		flag(rec.Meta.PossibleMigrant),
		flag(rec.Meta.ProbableMigrant),
		strings.Join(rec.Meta.Names, ", "),
		rec.Meta.Gender.String(),
	}
}

func coords(c *model.Coordinates) (lat, long string) {
	if c == nil {
		return model.NotAvailable, model.NotAvailable
	}
	return formatFloat(c.Lat), formatFloat(c.Long)
}

func optInt(v *int) string {
	if v == nil {
		return model.NotAvailable
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return model.NotAvailable
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return model.NotAvailable
	}
	return s
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteReport writes the analysis report as indented JSON.
func WriteReport(path string, report *model.AnalysisReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
