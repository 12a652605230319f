package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/auth"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

// Default admin credentials
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@foodcompany.ly"
	DefaultAdminRole     = "admin"
)

var defaultContent = []models.ContentEntry{
	{Section: "hero", Key: "title", Value: "The best solutions for importing food products"},
	{Section: "hero", Key: "subtitle", Value: "High quality food products for institutions and local stores"},
	{Section: "hero", Key: "cta_text", Value: "Contact us"},
	{Section: "hero", Key: "stats_experience", Value: "15"},
	{Section: "hero", Key: "stats_clients", Value: "500"},
	{Section: "hero", Key: "stats_shipments", Value: "1000"},
	{Section: "about", Key: "title", Value: "A Libyan company specialized in food imports"},
	{Section: "about", Key: "description", Value: "We focus on quality and reliability in every shipment, working with a global network of suppliers."},
	{Section: "contact", Key: "address", Value: "Tripoli, Libya - Al Jumhuriya Street"},
	{Section: "contact", Key: "phone", Value: "+218 91 234 5678"},
	{Section: "contact", Key: "email", Value: "info@foodcompany.ly"},
	{Section: "contact", Key: "working_hours", Value: "Saturday - Thursday: 8am - 5pm"},
}

var defaultServices = []models.Service{
	{Title: "Staple goods import", Description: "Flour, sugar and vegetable oils imported to the highest international quality standards.", Icon: "Wheat", Color: "from-yellow-400 to-yellow-600", OrderNum: 1},
	{Title: "Dairy and cheese", Description: "A wide range of dairy products and cheeses from leading farms worldwide.", Icon: "Milk", Color: "from-blue-400 to-blue-600", OrderNum: 2},
	{Title: "Custom import and export", Description: "Tailored sourcing for companies and factories that need specific raw food materials.", Icon: "Package", Color: "from-orange-400 to-orange-600", OrderNum: 3},
	{Title: "Logistics", Description: "An equipped fleet with end-to-end tracking so shipments arrive on time and intact.", Icon: "Truck", Color: "from-green-400 to-green-600", OrderNum: 4},
	{Title: "Cold and dry storage", Description: "Modern warehouses with temperature control to keep food safe.", Icon: "Warehouse", Color: "from-purple-400 to-purple-600", OrderNum: 5},
	{Title: "Food market consulting", Description: "Market studies and analysis that help partners make the best purchasing decisions.", Icon: "Lightbulb", Color: "from-red-400 to-red-600", OrderNum: 6},
}

var defaultProjects = []models.Project{
	{Title: "The 2024 flour shipment", Description: "250,000 tons of premium flour secured for the local market.", Image: "/project-2.jpg", Location: "Tripoli, Benghazi", Date: "January 2024", Weight: "250K Ton", OrderNum: 1},
	{Title: "Tripoli central warehouses", Description: "The largest cold store in the western region, fitted with current technology.", Image: "/project-3.jpg", Location: "Tripoli - Qasr bin Ghashir", Date: "March 2024", Weight: "M² 5000", OrderNum: 2},
	{Title: "Dairy supply agreement", Description: "An exclusive agreement with major European producers for premium cheeses.", Image: "/project-4.jpg", Location: "Khoms, Misrata", Date: "May 2024", Weight: "150 Containers", OrderNum: 3},
}

var defaultTestimonials = []models.Testimonial{
	{Name: "Mohamed Swehli", Position: "Food retail chain manager", Content: "Our partnership spans more than five years and they remain our main source of high quality products.", Image: "/client-1.jpg", Rating: 5, OrderNum: 1},
	{Name: "Sara Mahmoud", Position: "Hotel group purchasing manager", Content: "Punctuality and quality set this company apart. No shipment has ever been late.", Image: "/client-2.jpg", Rating: 5, OrderNum: 2},
	{Name: "Omar Mukhtar", Position: "Bakery owner", Content: "Their flour is the best on the market and its consistent quality keeps our production steady.", Image: "/client-3.jpg", Rating: 5, OrderNum: 3},
}

var defaultNews = []models.News{
	{Title: "Expanding the global supplier network", Excerpt: "New agreements with leading Latin American suppliers secure grain supplies.", Content: "The company signed memoranda of understanding with major soy and corn producers in Brazil and Argentina to diversify import sources.", Image: "/hero-bg.jpg", Category: "Achievements", Author: "General management", Date: "2024-05-15", IsFeatured: true},
	{Title: "Launching the distributor app", Excerpt: "A new system lets distributors track orders and shipments in real time.", Content: "The new app for trading partners and distributors simplifies ordering and gives full visibility of the supply chain.", Image: "/news-2.jpg", Category: "Technology", Author: "Digital development", Date: "2024-05-10"},
	{Title: "International quality award", Excerpt: "The company was awarded ISO certification for logistics and food storage.", Content: "After a thorough audit the company received the international quality certificate for food handling and storage.", Image: "/news-3.jpg", Category: "Awards", Author: "Media office", Date: "2024-05-02"},
}

// Seed inserts the default admin, site content and sample collections.
// Each table is guarded so re-running against a populated store inserts nothing.
func Seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	steps := []struct {
		name string
		fn   func(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error)
	}{
		{"users", seedAdmin},
		{"site_content", seedContent},
		{"services", seedServices},
		{"projects", seedProjects},
		{"testimonials", seedTestimonials},
		{"news", seedNews},
	}

	for _, step := range steps {
		n, err := step.fn(ctx, tx, now)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
		logger.Log.Infow("seed", "table", step.name, "inserted", n)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

func isEmpty(ctx context.Context, tx *sqlx.Tx, table string) (bool, error) {
	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedAdmin(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	var count int
	err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), DefaultAdminUsername)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)`),
		DefaultAdminUsername, DefaultAdminEmail, hash, DefaultAdminRole, now)
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func seedContent(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	query := tx.Rebind(`
		INSERT INTO site_content (section, key, value, type, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (section, key) DO NOTHING`)

	inserted := 0
	for _, c := range defaultContent {
		res, err := tx.ExecContext(ctx, query, c.Section, c.Key, c.Value, models.DefaultContentType, now)
		if err != nil {
			return inserted, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func seedServices(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "services")
	if err != nil || !empty {
		return 0, err
	}

	query := tx.Rebind(`
		INSERT INTO services (title, description, icon, color, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, TRUE, ?)`)
	for _, s := range defaultServices {
		if _, err := tx.ExecContext(ctx, query, s.Title, s.Description, s.Icon, s.Color, s.OrderNum, now); err != nil {
			return 0, err
		}
	}
	return len(defaultServices), nil
}

func seedProjects(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "projects")
	if err != nil || !empty {
		return 0, err
	}

	query := tx.Rebind(`
		INSERT INTO projects (title, description, image, location, date, weight, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, TRUE, ?)`)
	for _, p := range defaultProjects {
		if _, err := tx.ExecContext(ctx, query, p.Title, p.Description, p.Image, p.Location, p.Date, p.Weight, p.OrderNum, now); err != nil {
			return 0, err
		}
	}
	return len(defaultProjects), nil
}

func seedTestimonials(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "testimonials")
	if err != nil || !empty {
		return 0, err
	}

	query := tx.Rebind(`
		INSERT INTO testimonials (name, position, content, image, rating, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, TRUE, ?)`)
	for _, t := range defaultTestimonials {
		if _, err := tx.ExecContext(ctx, query, t.Name, t.Position, t.Content, t.Image, t.Rating, t.OrderNum, now); err != nil {
			return 0, err
		}
	}
	return len(defaultTestimonials), nil
}

func seedNews(ctx context.Context, tx *sqlx.Tx, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "news")
	if err != nil || !empty {
		return 0, err
	}

	query := tx.Rebind(`
		INSERT INTO news (title, excerpt, content, image, category, author, date, is_featured, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, TRUE, ?)`)
	for i, n := range defaultNews {
		// newest first: the first article gets the latest timestamp
		createdAt := now.Add(-time.Duration(i) * time.Second)
		if _, err := tx.ExecContext(ctx, query, n.Title, n.Excerpt, n.Content, n.Image, n.Category, n.Author, n.Date, n.IsFeatured, createdAt); err != nil {
			return 0, err
		}
	}
	return len(defaultNews), nil
}
