package sponsor

import (
	"strings"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

const (
	DefaultFindLimit = 10
	placeholderPhone = "(555) 123-4567"
)

// Business — запись каталога местных компаний.
type Business struct {
	Name     string
	Industry string
	Website  string
}

var seedBusinesses = [...]Business{
	{Name: "City Fitness", Industry: "Health & Wellness", Website: "https://cityfitness.example"},
	{Name: "Brewed Awakenings", Industry: "Food & Beverage", Website: "https://brew.example"},
	{Name: "Green Wheels Bikes", Industry: "Retail", Website: "https://greenwheels.example"},
	{Name: "Tech Hub Co-Work", Industry: "Technology", Website: "https://techhub.example"},
	{Name: "River Bank Credit", Industry: "Finance", Website: "https://riverbank.example"},
}

// SeedBusinesses возвращает копию встроенного каталога.
func SeedBusinesses() []Business {
	out := make([]Business, len(seedBusinesses))
	copy(out, seedBusinesses[:])
	return out
}

// Matcher подбирает кандидатов из каталога по индустриям.
type Matcher struct {
	catalog []Business
}

func NewMatcher(catalog []Business) *Matcher {
	return &Matcher{catalog: append([]Business{}, catalog...)}
}

// NewSeedMatcher работает со встроенным каталогом.
func NewSeedMatcher() *Matcher {
	return NewMatcher(seedBusinesses[:])
}

// Find возвращает не более limit кандидатов в порядке каталога.
// Компания подходит, если список индустрий пуст или любая индустрия
// без учёта регистра входит в её индустрию как подстрока.
func (m *Matcher) Find(location string, industries []string, limit int) ([]*entity.Sponsor, error) {
	if limit < 0 {
		return nil, apperror.Validation("limit не может быть отрицательным")
	}

	wanted := make([]string, 0, len(industries))
	for _, industry := range industries {
		wanted = append(wanted, strings.ToLower(industry))
	}

	matches := make([]*entity.Sponsor, 0, limit)
	for _, business := range m.catalog {
		if len(matches) == limit {
			break
		}
		if !matchesIndustry(business.Industry, wanted) {
			continue
		}
		matches = append(matches, candidate(business, location))
	}
	return matches, nil
}

func matchesIndustry(industry string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	industry = strings.ToLower(industry)
	for _, w := range wanted {
		if strings.Contains(industry, w) {
			return true
		}
	}
	return false
}

func candidate(business Business, location string) *entity.Sponsor {
	email := "info@" + strings.ToLower(strings.ReplaceAll(business.Name, " ", "")) + ".com"
	phone := placeholderPhone
	website := business.Website

	return &entity.Sponsor{
		Name:     business.Name,
		Industry: business.Industry,
		Location: location,
		Email:    &email,
		Phone:    &phone,
		Website:  &website,
		Status:   valueobject.SponsorStatusNew,
	}
}

// FindSponsorsUseCase — поиск местных кандидатов для мероприятия.
type FindSponsorsUseCase struct {
	matcher *Matcher
}

func NewFindSponsorsUseCase(matcher *Matcher) *FindSponsorsUseCase {
	return &FindSponsorsUseCase{matcher: matcher}
}

func (uc *FindSponsorsUseCase) Execute(location string, industries []string, limit int) ([]*entity.Sponsor, error) {
	if strings.TrimSpace(location) == "" {
		return nil, apperror.Validation("локация обязательна")
	}
	return uc.matcher.Find(location, industries, limit)
}
