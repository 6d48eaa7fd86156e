package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"travelnest/internal/domain"
)

const packageColumns = `id, title, description, price, start_date, duration, image, category, location, featured`

const insertPackageSQL = `
  INSERT INTO packages(title, description, price, start_date, duration, image, category, location, featured)
  VALUES(?,?,?,?,?,?,?,?,?)`

type PackageRepo struct{ db *sqlx.DB }

func NewPackageRepo(db *sqlx.DB) *PackageRepo { return &PackageRepo{db: db} }

// List returns all packages, or only those in the given category when it is
// non-empty. The filter is an exact match; the caller's value is passed
// through unchanged. Order is insertion order.
func (r *PackageRepo) List(category string) ([]domain.Package, error) {
	out := []domain.Package{}
	if category != "" {
		err := r.db.Select(&out, `
  SELECT `+packageColumns+`
  FROM packages
  WHERE category = ?
  ORDER BY id
`, category)
		return out, err
	}
	err := r.db.Select(&out, `
  SELECT `+packageColumns+`
  FROM packages
  ORDER BY id
`)
	return out, err
}

// Get returns the package with the given id, or domain.ErrNotFound.
func (r *PackageRepo) Get(id int) (domain.Package, error) {
	var p domain.Package
	err := r.db.Get(&p, `
  SELECT `+packageColumns+`
  FROM packages
  WHERE id = ?
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Package{}, domain.ErrNotFound
	}
	return p, err
}

// Create inserts an already-validated input and returns the full record with
// its storage-assigned id.
func (r *PackageRepo) Create(in domain.PackageInput) (domain.Package, error) {
	res, err := r.db.Exec(insertPackageSQL,
		in.Title, in.Description, in.Price, in.StartDate, in.Duration,
		in.Image, in.Category, in.Location, in.Featured,
	)
	if err != nil {
		return domain.Package{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Package{}, err
	}
	return domain.Package{
		ID:          int(id),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		StartDate:   in.StartDate,
		Duration:    in.Duration,
		Image:       in.Image,
		Category:    in.Category,
		Location:    in.Location,
		Featured:    in.Featured,
	}, nil
}

// Count returns the number of stored packages.
func (r *PackageRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM packages`)
	return n, err
}
