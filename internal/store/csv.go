package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Column layouts of the two flat files. The order is a compatibility
// contract with existing data files and must not change.
var (
	listingColumns = []string{
		"id", "location", "district", "size", "price",
		"is_available", "landmark", "coordinates", "address", "images",
	}
	bookingColumns = []string{
		"booking_id", "hoarding_id", "user_name", "phone", "email",
		"start_date", "end_date", "status",
	}
)

// imageDelimiter joins blob references inside the images column. A
// reference must never contain it; the store does not re-check this.
const imageDelimiter = "|"

// record is one row keyed by header name. Columns absent from the
// stored file read back as "".
type record map[string]string

func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// writeRecords rewrites the whole file through a temp file and rename,
// so readers never observe a partially written collection.
func writeRecords(path string, columns []string, records []record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// parseAvailable accepts exactly case-insensitive "true" or the literal
// "1"; everything else, including "yes" and padded values, is false.
// This asymmetric default-to-false rule matches the existing data files
// and is deliberately not a general boolean parse.
func parseAvailable(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}

// parsePrice coerces the stored value to a price. Anything unparseable
// means "not set", never zero and never an error.
func parsePrice(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	p, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return nil
	}
	return &p
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func splitImages(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, imageDelimiter)
}

func joinImages(images []string) string {
	return strings.Join(images, imageDelimiter)
}

// parseDate is permissive on load: a malformed stored date becomes the
// zero time instead of failing the whole collection.
func parseDate(v string) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}

func decodeListing(rec record) Listing {
	return Listing{
		ID:          rec["id"],
		Location:    rec["location"],
		District:    rec["district"],
		Size:        rec["size"],
		Price:       parsePrice(rec["price"]),
		IsAvailable: parseAvailable(rec["is_available"]),
		Landmark:    rec["landmark"],
		Coordinates: rec["coordinates"],
		Address:     rec["address"],
		Images:      splitImages(rec["images"]),
	}
}

func encodeListing(l Listing) record {
	return record{
		"id":           l.ID,
		"location":     l.Location,
		"district":     l.District,
		"size":         l.Size,
		"price":        formatPrice(l.Price),
		"is_available": strconv.FormatBool(l.IsAvailable),
		"landmark":     l.Landmark,
		"coordinates":  l.Coordinates,
		"address":      l.Address,
		"images":       joinImages(l.Images),
	}
}

func decodeBooking(rec record) Booking {
	return Booking{
		ID:         rec["booking_id"],
		HoardingID: rec["hoarding_id"],
		UserName:   rec["user_name"],
		Phone:      rec["phone"],
		Email:      rec["email"],
		StartDate:  parseDate(rec["start_date"]),
		EndDate:    parseDate(rec["end_date"]),
		Status:     BookingStatus(rec["status"]),
	}
}

func encodeBooking(b Booking) record {
	return record{
		"booking_id":  b.ID,
		"hoarding_id": b.HoardingID,
		"user_name":   b.UserName,
		"phone":       b.Phone,
		"email":       b.Email,
		"start_date":  b.StartDate.Format(DateLayout),
		"end_date":    b.EndDate.Format(DateLayout),
		"status":      string(b.Status),
	}
}
