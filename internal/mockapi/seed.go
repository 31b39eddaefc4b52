package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/uyhome/adminctl/internal/models"
)

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

func (s *Server) seed() {
	s.cities = &collection[models.City]{
		id:    func(v models.City) int64 { return v.ID },
		setID: func(v *models.City, id int64) { v.ID = id },
		match: func(v models.City, q string) bool { return containsFold(v.Name, q) },
	}
	s.cities.insert(models.City{Name: "Tashkent"})
	s.cities.insert(models.City{Name: "Samarkand"})
	s.cities.insert(models.City{Name: "Bukhara"})

	s.districts = &collection[models.District]{
		id:    func(v models.District) int64 { return v.ID },
		setID: func(v *models.District, id int64) { v.ID = id },
		match: func(v models.District, q string) bool { return containsFold(v.Name, q) },
	}
	s.districts.insert(models.District{Name: "Yunusabad"})
	s.districts.insert(models.District{Name: "Chilanzar"})

	s.features = &collection[models.Feature]{
		id:    func(v models.Feature) int64 { return v.ID },
		setID: func(v *models.Feature, id int64) { v.ID = id },
		match: func(v models.Feature, q string) bool { return containsFold(v.Name, q) },
		beforeCreate: func(c *collection[models.Feature], candidate models.Feature) string {
			for _, it := range c.items {
				if strings.EqualFold(it.Name, candidate.Name) {
					return "feature with this name already exists"
				}
			}
			return ""
		},
	}
	s.features.insert(models.Feature{Name: "Balcony"})
	s.features.insert(models.Feature{Name: "Parking"})

	s.pages = &collection[models.Page]{
		id:    func(v models.Page) int64 { return v.ID },
		setID: func(v *models.Page, id int64) { v.ID = id },
		match: func(v models.Page, q string) bool {
			return containsFold(v.Slug, q) || containsFold(v.TitleRu, q) || containsFold(v.TitleEn, q)
		},
	}
	s.pages.insert(models.Page{Slug: "about", TitleRu: "О нас", TitleUz: "Biz haqimizda", TitleEn: "About us", IsActive: true})
	s.pages.insert(models.Page{Slug: "terms", TitleRu: "Условия", TitleUz: "Shartlar", TitleEn: "Terms", IsActive: true})

	s.banners = &collection[models.Banner]{
		id:    func(v models.Banner) int64 { return v.ID },
		setID: func(v *models.Banner, id int64) { v.ID = id },
		match: func(v models.Banner, q string) bool { return containsFold(v.Title, q) },
		apply: applyBanner,
	}
	s.banners.insert(models.Banner{Title: "New buildings", Image: "https://cdn.mock/banners/new.png"})

	s.properties = &collection[models.Property]{
		id:    func(v models.Property) int64 { return v.ID },
		setID: func(v *models.Property, id int64) { v.ID = id },
		match: func(v models.Property, q string) bool {
			return containsFold(v.Title, q) || containsFold(v.Description, q)
		},
		apply: s.applyProperty,
	}
	s.properties.insert(models.Property{
		Title:           "2-room apartment in Yunusabad",
		Description:     "Renovated, close to metro",
		Category:        models.Category{ID: 1, Name: "apartment"},
		Price:           52000,
		TransactionType: models.TransactionSale,
		Specs:           models.Specs{Rooms: 2, Area: 54.5, Floor: 3, TotalFloors: 9},
		Location:        models.Location{CityID: 1, DistrictID: 1, Address: "Yunusabad 4"},
		Status:          models.PropertyActive,
		CreatedAt:       "2026-08-01",
	})
	s.properties.insert(models.Property{
		Title:           "House with garden",
		Description:     "6 sotix, quiet street",
		Category:        models.Category{ID: 2, Name: "house"},
		Price:           900,
		TransactionType: models.TransactionRent,
		Specs:           models.Specs{Rooms: 5, Area: 180},
		Location:        models.Location{CityID: 2, DistrictID: 2, Address: "Registan street 5"},
		Status:          models.PropertyPending,
		CreatedAt:       "2026-08-15",
	})

	s.users = &collection[models.User]{
		id:    func(v models.User) int64 { return v.ID },
		setID: func(v *models.User, id int64) { v.ID = id },
		match: func(v models.User, q string) bool {
			return containsFold(v.Name, q) || containsFold(v.Phone, q)
		},
	}
	s.users.insert(models.User{
		Name: "Platform admin", Phone: AdminPhone,
		Role: models.RoleAdmin, Status: models.UserActive, Language: "ru",
	})
	s.users.insert(models.User{
		Name: "Aziz Karimov", Phone: "+998901112233",
		Role: models.RoleSeller, Status: models.UserActive, Language: "uz", Balance: 120,
	})

	s.tariffs = &collection[models.Tariff]{
		id:    func(v models.Tariff) int64 { return v.ID },
		setID: func(v *models.Tariff, id int64) { v.ID = id },
		match: func(v models.Tariff, q string) bool { return containsFold(v.Name, q) },
	}
	s.tariffs.insert(models.Tariff{Name: "Standard", Price: 50000, DurationDays: 30, Categories: []int64{1, 2}})
	s.tariffs.insert(models.Tariff{Name: "Premium", Price: 150000, DurationDays: 30, Categories: []int64{1, 2}})

	s.payments = &collection[models.Payment]{
		id:    func(v models.Payment) int64 { return v.ID },
		setID: func(v *models.Payment, id int64) { v.ID = id },
	}
	s.payments.insert(models.Payment{UserID: 2, Amount: 50000, Status: models.PaymentPaid, CreatedAt: "2026-08-20"})
	s.payments.insert(models.Payment{UserID: 2, Amount: 150000, Status: models.PaymentPaid, CreatedAt: "2026-08-25"})
	s.payments.insert(models.Payment{UserID: 2, Amount: 50000, Status: models.PaymentPending, CreatedAt: "2026-08-30"})
}

// applyBanner accepts either a JSON body or the multipart form the real API
// uses for image uploads.
func applyBanner(req *http.Request, dst *models.Banner) error {
	ct := req.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return jsonApply(req, dst)
	}

	if err := req.ParseMultipartForm(10 << 20); err != nil {
		return err
	}
	dst.Title = req.FormValue("title")
	if v := req.FormValue("link"); v != "" {
		dst.Link = &v
	}
	if v := req.FormValue("end_date"); v != "" {
		dst.EndDate = &v
	}
	if _, header, err := req.FormFile("image"); err == nil {
		dst.Image = "https://cdn.mock/banners/" + header.Filename
	}
	return nil
}

// propertyBody mirrors the admin API's property payload: references are
// sent as IDs and resolved against the reference books.
type propertyBody struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	Category        *int64                  `json:"category"`
	Price           *float64                `json:"price"`
	TransactionType *models.TransactionType `json:"transaction_type"`
	Specs           *models.Specs           `json:"specs"`
	Features        []int64                 `json:"features"`
	Location        *models.Location        `json:"location"`
	Status          *models.PropertyStatus  `json:"status"`
}

var categoryNames = map[int64]string{1: "apartment", 2: "house", 3: "commercial", 4: "land"}

func (s *Server) applyProperty(req *http.Request, dst *models.Property) error {
	body, err := readBody(req)
	if err != nil {
		return err
	}
	var pb propertyBody
	if err := json.Unmarshal(body, &pb); err != nil {
		return err
	}

	if pb.Title != nil {
		dst.Title = *pb.Title
	}
	if pb.Description != nil {
		dst.Description = *pb.Description
	}
	if pb.Category != nil {
		dst.Category = models.Category{ID: *pb.Category, Name: categoryNames[*pb.Category]}
	}
	if pb.Price != nil {
		dst.Price = *pb.Price
	}
	if pb.TransactionType != nil {
		dst.TransactionType = *pb.TransactionType
	}
	if pb.Specs != nil {
		dst.Specs = *pb.Specs
	}
	if pb.Location != nil {
		dst.Location = *pb.Location
	}
	if pb.Status != nil {
		dst.Status = *pb.Status
	}
	if pb.Features != nil {
		dst.Features = dst.Features[:0]
		for _, id := range pb.Features {
			if i, ok := s.features.find(id); ok {
				dst.Features = append(dst.Features, s.features.items[i])
			}
		}
	}
	if dst.Status == "" {
		dst.Status = models.PropertyPending
	}
	if dst.CreatedAt == "" {
		dst.CreatedAt = "2026-08-31"
	}
	return nil
}

// ---- read-only endpoints ----

func (s *Server) handlePageBySlug(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := chi.URLParam(req, "slug")
	for _, p := range s.pages.items {
		if p.Slug == slug {
			writeData(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "page not found")
}

func (s *Server) handlePaymentStats(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := req.URL.Query().Get("date_from")
	to := req.URL.Query().Get("date_to")

	var total float64
	var count int64
	daily := map[string]float64{}
	for _, p := range s.payments.items {
		if p.Status != models.PaymentPaid {
			continue
		}
		if from != "" && p.CreatedAt < from {
			continue
		}
		if to != "" && p.CreatedAt > to {
			continue
		}
		total += p.Amount
		count++
		daily[p.CreatedAt] += p.Amount
	}

	stats := models.PaymentStats{TotalAmount: total, TotalCount: count}
	for date, amount := range daily {
		stats.Daily = append(stats.Daily, models.ChartPoint{Date: date, Value: amount})
	}
	if total > 0 {
		stats.TopCategories = []models.CategoryStat{
			{Category: "apartment", Amount: total * 0.7, Percent: 70},
			{Category: "house", Amount: total * 0.3, Percent: 30},
		}
	}
	writeData(w, http.StatusOK, stats)
}

func (s *Server) handleDashboard(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active, pending int64
	for _, p := range s.properties.items {
		switch p.Status {
		case models.PropertyActive:
			active++
		case models.PropertyPending:
			pending++
		}
	}

	writeData(w, http.StatusOK, models.DashboardData{
		TotalProperties:   int64(len(s.properties.items)),
		ActiveProperties:  active,
		PendingProperties: pending,
		TotalUsers:        int64(len(s.users.items)),
	})
}

func (s *Server) handleEskizBalance(w http.ResponseWriter, req *http.Request) {
	writeData(w, http.StatusOK, models.EskizBalance{Balance: 1500})
}
