package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Markup    string         `yaml:"markup"`
	Discounts []discountFile `yaml:"discounts"`
	Services  []serviceFile  `yaml:"services"`
}

type discountFile struct {
	MinQuantity int    `yaml:"min_quantity"`
	Rate        string `yaml:"rate"`
}

type serviceFile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Rate        string `yaml:"rate"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
	LinkPattern string `yaml:"link_pattern"`
}

// DefaultCatalog возвращает каталог Facebook-услуг магазина
func DefaultCatalog() *domain.Catalog {
	svc := func(id, name, rate string, minQty, maxQty int) domain.EngagementService {
		return domain.EngagementService{
			ID:          id,
			Name:        name,
			Rate:        decimal.RequireFromString(rate),
			Min:         minQty,
			Max:         maxQty,
			LinkPattern: domain.DefaultLinkPattern,
		}
	}

	return &domain.Catalog{
		Services: []domain.EngagementService{
			svc("1977", "Facebook Page Likes", "2.50", 1000, 100000),
			svc("1775", "Facebook Page Followers", "3.00", 1000, 50000),
			svc("55", "Facebook Profile Followers", "3.50", 1000, 25000),
			svc("221", "Facebook Post Likes", "2.00", 1000, 50000),
			svc("1779", "Facebook Post Reactions", "2.80", 1000, 30000),
			svc("254", "Facebook Video Views", "1.50", 1000, 100000),
		},
		Discounts: []domain.DiscountTier{
			{MinQuantity: 5000, Rate: decimal.RequireFromString("0.20")},
			{MinQuantity: 10000, Rate: decimal.RequireFromString("0.30")},
			{MinQuantity: 20000, Rate: decimal.RequireFromString("0.50")},
		},
		Markup: decimal.NewFromInt(5),
	}
}

// LoadCatalog читает каталог из YAML файла.
// Пустой путь означает каталог по умолчанию.
func LoadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog разбирает YAML описание каталога
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog := &domain.Catalog{Markup: decimal.NewFromInt(5)}
	if file.Markup != "" {
		markup, err := decimal.NewFromString(file.Markup)
		if err != nil {
			return nil, fmt.Errorf("catalog: invalid markup %q: %w", file.Markup, err)
		}
		catalog.Markup = markup
	}

	for _, d := range file.Discounts {
		rate, err := decimal.NewFromString(d.Rate)
		if err != nil {
			return nil, fmt.Errorf("catalog: invalid discount rate %q: %w", d.Rate, err)
		}
		catalog.Discounts = append(catalog.Discounts, domain.DiscountTier{MinQuantity: d.MinQuantity, Rate: rate})
	}

	for _, s := range file.Services {
		rate, err := decimal.NewFromString(s.Rate)
		if err != nil {
			return nil, fmt.Errorf("catalog: invalid rate %q for service %s: %w", s.Rate, s.ID, err)
		}

		pattern := domain.DefaultLinkPattern
		if s.LinkPattern != "" {
			pattern, err = regexp.Compile(s.LinkPattern)
			if err != nil {
				return nil, fmt.Errorf("catalog: invalid link pattern for service %s: %w", s.ID, err)
			}
		}

		catalog.Services = append(catalog.Services, domain.EngagementService{
			ID:          s.ID,
			Name:        s.Name,
			Rate:        rate,
			Min:         s.Min,
			Max:         s.Max,
			LinkPattern: pattern,
		})
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}
