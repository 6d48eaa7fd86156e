package domain

import "time"

// Package categories. Storage enforces the same set with a CHECK constraint.
const (
	CategoryDomestic      = "domestic"
	CategoryInternational = "international"
)

// ValidCategory reports whether s is one of the two known categories.
func ValidCategory(s string) bool {
	return s == CategoryDomestic || s == CategoryInternational
}

// Package is a sellable travel offering. IDs are assigned by storage and
// never reused. StartDate and Duration are nullable ("flexible" packages).
type Package struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Price       int        `db:"price" json:"price"` // whole currency units
	StartDate   *time.Time `db:"start_date" json:"startDate"`
	Duration    *string    `db:"duration" json:"duration"`
	Image       string     `db:"image" json:"image"`
	Category    string     `db:"category" json:"category"`
	Location    string     `db:"location" json:"location"`
	Featured    bool       `db:"featured" json:"featured"`
}

// PackageInput is the create shape for Package: everything except the
// storage-assigned id.
type PackageInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	StartDate   *time.Time `json:"startDate"`
	Duration    *string    `json:"duration"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Featured    bool       `json:"featured"`
}

// Inquiry is a customer's follow-up request about a package. PackageID is a
// soft reference: the package is not required to exist, and inquiries outlive
// their package. Inquiries are immutable once created.
type Inquiry struct {
	ID        int       `db:"id" json:"id"`
	PackageID int       `db:"package_id" json:"packageId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Message   *string   `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// InquiryInput is the create shape for Inquiry: everything except the
// storage-assigned id and createdAt.
type InquiryInput struct {
	PackageID int     `json:"packageId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Message   *string `json:"message"`
}
