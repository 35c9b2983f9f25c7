package pricefilter

import "fmt"

// SortOrder is the catalog ordering selected next to the price range.
type SortOrder string

const (
	SortRelevant  SortOrder = "relevant"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// SortOrders lists the orders in display order.
func SortOrders() []SortOrder {
	return []SortOrder{SortRelevant, SortPriceAsc, SortPriceDesc}
}

// ParseSort validates a raw sort value. An empty value selects SortRelevant.
func ParseSort(raw string) (SortOrder, error) {
	if raw == "" {
		return SortRelevant, nil
	}
	s := SortOrder(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
	return s, nil
}

func (s SortOrder) Valid() bool {
	switch s {
	case SortRelevant, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

func (s SortOrder) String() string { return string(s) }

// SortOption is a sort order paired with its localized label.
type SortOption struct {
	Value    SortOrder `json:"value"`
	Label    string    `json:"label"`
	Selected bool      `json:"selected"`
}
