package domain

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// DefaultLinkPattern принимает ссылки на страницы Facebook
var DefaultLinkPattern = regexp.MustCompile(`(?i)^https?://(www\.|m\.)?(facebook|fb)\.com/.+`)

// EngagementService - услуга продвижения из каталога магазина
type EngagementService struct {
	ID          string          `json:"service_id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"` // Цена за 1000 единиц
	Min         int             `json:"min_order"`
	Max         int             `json:"max_order"`
	LinkPattern *regexp.Regexp  `json:"-"`
}

// DiscountTier - скидка за объем
type DiscountTier struct {
	MinQuantity int             `json:"min_quantity"`
	Rate        decimal.Decimal `json:"rate"` // Доля от базовой цены, 0.2 = 20%
}

// Catalog содержит услуги, скидки и наценку.
// Передается в сервисы явно, чтобы тесты могли подставлять свои цены.
type Catalog struct {
	Services  []EngagementService
	Discounts []DiscountTier
	Markup    decimal.Decimal // Множитель к цене поставщика
}

// Lookup ищет услугу по идентификатору
func (c *Catalog) Lookup(serviceID string) (EngagementService, bool) {
	for _, svc := range c.Services {
		if svc.ID == serviceID {
			return svc, true
		}
	}
	return EngagementService{}, false
}

// Discount возвращает скидку для наибольшего подходящего порога
func (c *Catalog) Discount(quantity int) decimal.Decimal {
	best := decimal.Zero
	bestMin := -1
	for _, tier := range c.Discounts {
		if quantity >= tier.MinQuantity && tier.MinQuantity > bestMin {
			best = tier.Rate
			bestMin = tier.MinQuantity
		}
	}
	return best
}

// Quote считает цену заказа: rate * quantity / 1000 за вычетом скидки, с округлением до центов
func (c *Catalog) Quote(svc EngagementService, quantity int) decimal.Decimal {
	base := svc.Rate.Mul(decimal.NewFromInt(int64(quantity))).Div(thousand)
	discount := base.Mul(c.Discount(quantity))
	return base.Sub(discount).Round(2)
}

// RefundFor возвращает сумму возврата при применении статуса поставщика.
// FAILED возвращает всю цену, частичное выполнение - долю невыполненного объема с округлением вниз.
func (o *Order) RefundFor(update ProviderUpdate) decimal.Decimal {
	switch {
	case update.Status == OrderStatusFailed:
		return o.Price
	case update.Status == OrderStatusCompleted && update.Partial &&
		update.Remains != nil && *update.Remains > 0 && o.Quantity > 0:
		remains := min(*update.Remains, o.Quantity)
		return o.Price.Mul(decimal.NewFromInt(int64(remains))).
			Div(decimal.NewFromInt(int64(o.Quantity))).
			Truncate(2)
	default:
		return decimal.Zero
	}
}

// WithProviderRates возвращает копию каталога с ценами поставщика, умноженными на наценку.
// Услуги, которых нет у поставщика, сохраняют прежнюю цену.
func (c *Catalog) WithProviderRates(rates []ProviderService) *Catalog {
	byID := make(map[string]ProviderService, len(rates))
	for _, r := range rates {
		byID[r.ID] = r
	}

	updated := &Catalog{
		Services:  make([]EngagementService, len(c.Services)),
		Discounts: c.Discounts,
		Markup:    c.Markup,
	}
	for i, svc := range c.Services {
		if r, ok := byID[svc.ID]; ok && r.Rate.IsPositive() {
			svc.Rate = r.Rate.Mul(c.Markup).Round(2)
			if r.Min > 0 {
				svc.Min = r.Min
			}
			if r.Max > 0 {
				svc.Max = r.Max
			}
		}
		updated.Services[i] = svc
	}
	return updated
}

// Validate проверяет согласованность каталога
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Services))
	for _, svc := range c.Services {
		if svc.ID == "" {
			return fmt.Errorf("catalog: service without id")
		}
		if seen[svc.ID] {
			return fmt.Errorf("catalog: duplicate service %q", svc.ID)
		}
		seen[svc.ID] = true
		if !svc.Rate.IsPositive() {
			return fmt.Errorf("catalog: service %q has non-positive rate", svc.ID)
		}
		if svc.Min <= 0 || svc.Max < svc.Min {
			return fmt.Errorf("catalog: service %q has invalid bounds %d..%d", svc.ID, svc.Min, svc.Max)
		}
	}
	for _, tier := range c.Discounts {
		if tier.Rate.IsNegative() || tier.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("catalog: discount for %d must be in [0, 1)", tier.MinQuantity)
		}
	}
	if !c.Markup.IsPositive() {
		return fmt.Errorf("catalog: markup must be positive")
	}
	return nil
}

// SortedServices возвращает услуги, упорядоченные по идентификатору
func (c *Catalog) SortedServices() []EngagementService {
	list := make([]EngagementService, len(c.Services))
	copy(list, c.Services)
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// ValidateOrder проверяет ссылку и количество для услуги
func (s EngagementService) ValidateOrder(link string, quantity int) error {
	pattern := s.LinkPattern
	if pattern == nil {
		pattern = DefaultLinkPattern
	}
	if !pattern.MatchString(link) {
		return fmt.Errorf("%w: link %q does not match service %s", ErrInvalidInput, link, s.ID)
	}
	if quantity < s.Min || quantity > s.Max {
		return fmt.Errorf("%w: quantity %d outside %d..%d", ErrInvalidInput, quantity, s.Min, s.Max)
	}
	return nil
}
