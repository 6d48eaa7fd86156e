package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"travelnest/internal/domain"
)

// seedIfEmpty inserts the starter catalog when no packages exist yet.
// The count check and the inserts run on the single pooled connection, so a
// restart never double-seeds. Concurrent first starts of multiple instances
// against a shared file can still race; accepted, since the seed content is
// fixed and the window closes after the first successful seed.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM packages`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting starter catalog")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range StarterCatalog() {
		if _, err := tx.Exec(insertPackageSQL,
			p.Title, p.Description, p.Price, p.StartDate, p.Duration,
			p.Image, p.Category, p.Location, p.Featured,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// StarterCatalog is the fixed set of packages a fresh deployment starts with:
// four domestic, four international.
func StarterCatalog() []domain.PackageInput {
	return []domain.PackageInput{
		{
			Title:       "Kashmir Paradise",
			Description: "Discover the heaven on earth with our comprehensive Kashmir tour package. Visit Srinagar, Gulmarg, and Pahalgam.",
			Price:       25000,
			StartDate:   date(2024, time.May, 15),
			Duration:    str("6 Days / 5 Nights"),
			Image:       "https://images.unsplash.com/photo-1598091383021-15ddea10925d?auto=format&fit=crop&q=80",
			Category:    domain.CategoryDomestic,
			Location:    "Kashmir, India",
			Featured:    true,
		},
		{
			Title:       "Goa Beach Vibes",
			Description: "Experience the sun, sand, and sea in Goa. Includes water sports and party cruises.",
			Price:       18000,
			StartDate:   date(2024, time.April, 20),
			Duration:    str("4 Days / 3 Nights"),
			Image:       "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?auto=format&fit=crop&q=80",
			Category:    domain.CategoryDomestic,
			Location:    "Goa, India",
			Featured:    true,
		},
		{
			Title:       "Sikkim Explorer",
			Description: "Explore the mystic mountains and monasteries of Sikkim. Visit Gangtok, Nathula Pass, and Tsomgo Lake.",
			Price:       22000,
			StartDate:   date(2024, time.June, 10),
			Duration:    str("5 Days / 4 Nights"),
			Image:       "https://images.unsplash.com/photo-1626621341517-bbf3d9990a23?auto=format&fit=crop&q=80",
			Category:    domain.CategoryDomestic,
			Location:    "Sikkim, India",
		},
		{
			Title:       "Kerala Backwaters",
			Description: "Relax in the serene backwaters of Kerala using our houseboats. Visit Alleppey and Munnar.",
			Price:       28000,
			StartDate:   date(2024, time.August, 5),
			Duration:    str("6 Days / 5 Nights"),
			Image:       "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?auto=format&fit=crop&q=80",
			Category:    domain.CategoryDomestic,
			Location:    "Kerala, India",
		},
		{
			Title:       "Thailand Getaway",
			Description: "Experience the vibrant culture and beaches of Thailand. Bangkok and Pattaya tour.",
			Price:       45000,
			StartDate:   date(2024, time.July, 15),
			Duration:    str("5 Days / 4 Nights"),
			Image:       "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?auto=format&fit=crop&q=80",
			Category:    domain.CategoryInternational,
			Location:    "Thailand",
			Featured:    true,
		},
		{
			Title:       "Singapore Cityscape",
			Description: "Explore the modern marvels of Singapore including Marina Bay Sands and Sentosa Island.",
			Price:       55000,
			StartDate:   date(2024, time.September, 10),
			Duration:    str("4 Days / 3 Nights"),
			Image:       "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?auto=format&fit=crop&q=80",
			Category:    domain.CategoryInternational,
			Location:    "Singapore",
			Featured:    true,
		},
		{
			Title:       "Dubai Luxury",
			Description: "Witness the grandeur of Dubai. Burj Khalifa, Desert Safari, and Dhow Cruise included.",
			Price:       60000,
			StartDate:   date(2024, time.October, 1),
			Duration:    str("5 Days / 4 Nights"),
			Image:       "https://images.unsplash.com/photo-1512453979798-5ea904ac6605?auto=format&fit=crop&q=80",
			Category:    domain.CategoryInternational,
			Location:    "Dubai, UAE",
			Featured:    true,
		},
		{
			Title:       "European Dream",
			Description: "A grand tour of Europe's finest cities. Paris, Swiss Alps, and Rome.",
			Price:       150000,
			StartDate:   date(2024, time.November, 15),
			Duration:    str("10 Days / 9 Nights"),
			Image:       "https://images.unsplash.com/photo-1499856871940-a09627c6dcf6?auto=format&fit=crop&q=80",
			Category:    domain.CategoryInternational,
			Location:    "Europe",
			Featured:    true,
		},
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func str(s string) *string { return &s }
