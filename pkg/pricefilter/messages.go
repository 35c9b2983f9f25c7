package pricefilter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// English source strings double as catalog keys.
const (
	msgFrom          = "From %v%s"
	msgTo            = "To %v%s"
	msgSortTitle     = "Sorting"
	msgSortRelevant  = "By relevance"
	msgSortPriceAsc  = "Cheapest first"
	msgSortPriceDesc = "Most expensive first"
)

var sortLabels = map[SortOrder]string{
	SortRelevant:  msgSortRelevant,
	SortPriceAsc:  msgSortPriceAsc,
	SortPriceDesc: msgSortPriceDesc,
}

type translation struct {
	key string
	msg string
}

var translations = map[language.Tag][]translation{
	language.Russian: {
		{msgFrom, "От %v%s"},
		{msgTo, "До %v%s"},
		{msgSortTitle, "Сортировка"},
		{msgSortRelevant, "По актуальности"},
		{msgSortPriceAsc, "Дешевые сначала"},
		{msgSortPriceDesc, "Дорогие сначала"},
	},
}

// messages is the catalog backing every printer in this package.
var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for _, e := range entries {
			if err := b.SetString(tag, e.key, e.msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
