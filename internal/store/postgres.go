package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Postgres is an alternative backend with the same observable
// semantics as FileStore, for deployments that want row-level writes
// instead of whole-file rewrites. Selected when DATABASE_URL is set.
type Postgres struct {
	db        *sql.DB
	districts []string
}

// NewPostgres sets up a Postgres store using the provided database
// handle.
func NewPostgres(db *sql.DB, districts []string) *Postgres {
	return &Postgres{db: db, districts: districts}
}

// Init creates the backing tables when they do not exist yet.
func (s *Postgres) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS hoardings (
			id TEXT PRIMARY KEY,
			location TEXT NOT NULL,
			district TEXT NOT NULL,
			size TEXT NOT NULL,
			price DOUBLE PRECISION,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			landmark TEXT NOT NULL DEFAULT '',
			coordinates TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			images JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS bookings (
			booking_id TEXT PRIMARY KEY,
			hoarding_id TEXT NOT NULL,
			user_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Listings returns every hoarding in insertion order.
func (s *Postgres) Listings() ([]Listing, error) {
	ctx := context.Background()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, location, district, size, price, is_available, landmark, coordinates, address, images
		FROM hoardings
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select hoardings: %w", err)
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		l, err := scanListingRow(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hoardings: %w", err)
	}
	return listings, nil
}

// ListingByID returns a single hoarding by its identifier.
func (s *Postgres) ListingByID(id string) (Listing, error) {
	ctx := context.Background()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, location, district, size, price, is_available, landmark, coordinates, address, images
		FROM hoardings
		WHERE id = $1
	`, id)

	l, err := scanListingRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Listing{}, ErrListingNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

// AddListing validates the hoarding, assigns a fresh id and inserts it.
func (s *Postgres) AddListing(l Listing) (Listing, error) {
	if err := validateListing(l.Location, l.District, l.Size, l.Price, s.districts); err != nil {
		return Listing{}, err
	}

	imagesJSON, err := json.Marshal(imagesOrEmpty(l.Images))
	if err != nil {
		return Listing{}, fmt.Errorf("prepare images payload: %w", err)
	}

	l.ID = uuid.NewString()

	ctx := context.Background()
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO hoardings (id, location, district, size, price, is_available, landmark, coordinates, address, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb)
	`, l.ID, l.Location, l.District, l.Size, priceArg(l.Price), l.IsAvailable, l.Landmark, l.Coordinates, l.Address, string(imagesJSON)); err != nil {
		return Listing{}, fmt.Errorf("insert hoarding: %w", err)
	}
	return l, nil
}

// UpdateListing replaces the mutable fields of an existing hoarding and
// appends any new image references.
func (s *Postgres) UpdateListing(id string, patch ListingPatch) (Listing, error) {
	if err := validateListing(patch.Location, patch.District, patch.Size, patch.Price, s.districts); err != nil {
		return Listing{}, err
	}

	newImagesJSON, err := json.Marshal(imagesOrEmpty(patch.NewImages))
	if err != nil {
		return Listing{}, fmt.Errorf("prepare images payload: %w", err)
	}

	ctx := context.Background()

	row := s.db.QueryRowContext(ctx, `
		UPDATE hoardings
		SET location = $2, district = $3, size = $4, price = $5, is_available = $6,
			landmark = $7, coordinates = $8, address = $9, images = images || $10::jsonb
		WHERE id = $1
		RETURNING id, location, district, size, price, is_available, landmark, coordinates, address, images
	`, id, patch.Location, patch.District, patch.Size, priceArg(patch.Price), patch.IsAvailable,
		patch.Landmark, patch.Coordinates, patch.Address, string(newImagesJSON))

	l, err := scanListingRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Listing{}, ErrListingNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

// Bookings returns every booking in insertion order.
func (s *Postgres) Bookings() ([]Booking, error) {
	ctx := context.Background()

	rows, err := s.db.QueryContext(ctx, `
		SELECT booking_id, hoarding_id, user_name, phone, email, start_date, end_date, status
		FROM bookings
		ORDER BY created_at, booking_id
	`)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.HoardingID, &b.UserName, &b.Phone, &b.Email, &b.StartDate, &b.EndDate, &b.Status); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// CreateBooking validates the request and inserts a Pending booking.
// As with FileStore, the hoarding is deliberately not checked for
// existence or availability.
func (s *Postgres) CreateBooking(req BookingRequest) (Booking, error) {
	if err := validateBooking(req); err != nil {
		return Booking{}, err
	}

	b := Booking{
		ID:         uuid.NewString(),
		HoardingID: req.HoardingID,
		UserName:   req.UserName,
		Phone:      req.Phone,
		Email:      req.Email,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     StatusPending,
	}

	ctx := context.Background()
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (booking_id, hoarding_id, user_name, phone, email, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, b.ID, b.HoardingID, b.UserName, b.Phone, b.Email, b.StartDate, b.EndDate, string(b.Status)); err != nil {
		return Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

type listingScanner interface {
	Scan(dest ...any) error
}

func scanListingRow(scanner listingScanner) (Listing, error) {
	var (
		l          Listing
		price      sql.NullFloat64
		imagesJSON []byte
	)

	if err := scanner.Scan(&l.ID, &l.Location, &l.District, &l.Size, &price, &l.IsAvailable,
		&l.Landmark, &l.Coordinates, &l.Address, &imagesJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Listing{}, err
		}
		return Listing{}, fmt.Errorf("scan hoarding: %w", err)
	}

	if price.Valid {
		v := price.Float64
		l.Price = &v
	}
	if err := json.Unmarshal(imagesJSON, &l.Images); err != nil {
		return Listing{}, fmt.Errorf("decode images: %w", err)
	}
	if len(l.Images) == 0 {
		l.Images = nil
	}
	return l, nil
}

func priceArg(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
