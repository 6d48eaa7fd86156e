package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"travelnest/internal/domain"
)

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

// Create inserts an already-validated inquiry, stamping createdAt at
// persistence time, and returns the full record. The referenced package is
// not required to exist.
func (r *InquiryRepo) Create(in domain.InquiryInput) (domain.Inquiry, error) {
	createdAt := time.Now().UTC()
	res, err := r.db.Exec(`
  INSERT INTO inquiries(package_id, name, email, phone, message, created_at)
  VALUES(?,?,?,?,?,?)
`, in.PackageID, in.Name, in.Email, in.Phone, in.Message, createdAt)
	if err != nil {
		return domain.Inquiry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Inquiry{}, err
	}
	return domain.Inquiry{
		ID:        int(id),
		PackageID: in.PackageID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: createdAt,
	}, nil
}

// Count returns the number of stored inquiries.
func (r *InquiryRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM inquiries`)
	return n, err
}
