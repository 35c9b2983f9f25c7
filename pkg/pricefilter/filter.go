package pricefilter

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/filterkit/pkg/logger"
	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

// DefaultLanguage is used when Config.Lang is empty.
const DefaultLanguage = "ru"

// Config describes a catalog filter.
type Config struct {
	Price rangeslider.Config `envPrefix:"PRICE_" json:"price" yaml:"price"`
	Sort  SortOrder          `env:"FILTER_SORT" envDefault:"relevant" json:"sort" yaml:"sort"`
	Lang  string             `env:"FILTER_LANG" envDefault:"ru" json:"lang" yaml:"lang"`
}

// Labels are the rendered "from" and "to" captions of the price range.
type Labels struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the logger used for price errors that no one else handles.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) { f.log = l }
}

// WithErrorHandler receives price range errors instead of the default chain.
func WithErrorHandler(h rangeslider.ErrorHandler) Option {
	return func(f *Filter) { f.handler = h }
}

// Filter combines a price range with a sort order.
type Filter struct {
	price   *rangeslider.State
	sort    SortOrder
	lang    language.Tag
	printer *message.Printer
	handler rangeslider.ErrorHandler
	log     *slog.Logger
}

// New creates a filter. With a non-nil root the price range becomes a child
// of it, shares its absolute limits and escalates errors to it; otherwise
// the price range is a root of its own and the filter logs its errors.
//
// An invalid sort order or language is a hard failure. Price configuration
// errors are returned together with a usable, partially defaulted filter,
// the same way rangeslider.New does.
func New(root *rangeslider.State, cfg Config, opts ...Option) (*Filter, error) {
	f := &Filter{}
	for _, opt := range opts {
		opt(f)
	}
	f.log = logger.OrDefault(f.log)

	sort, err := ParseSort(string(cfg.Sort))
	if err != nil {
		return nil, err
	}
	f.sort = sort

	lang := cfg.Lang
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidLanguage, lang), err)
	}
	f.lang = tag
	f.printer = newPrinter(tag)

	var priceOpts []rangeslider.Option
	switch {
	case f.handler != nil:
		priceOpts = append(priceOpts, rangeslider.WithErrorHandler(f.handler))
	case root == nil:
		priceOpts = append(priceOpts, rangeslider.WithErrorHandler(f.logError))
	}

	if root != nil {
		f.price, err = root.CreateChild(cfg.Price, priceOpts...)
	} else {
		f.price, err = rangeslider.New(cfg.Price, append(priceOpts, rangeslider.WithLogger(f.log))...)
	}
	return f, err
}

func (f *Filter) logError(e *rangeslider.Error) {
	f.log.Error("price filter error",
		logger.Component("pricefilter"),
		logger.Code(e.Code()),
		logger.Field(e.Field),
		logger.HierarchyLevel(e.HierarchyLevel),
		logger.Error(e),
	)
}

// SetPrice updates the selected range. See rangeslider.State.Update.
func (f *Filter) SetPrice(low, high float64) error {
	return f.price.Update(low, high)
}

// SetPriceRaw updates the selected range from form input.
func (f *Filter) SetPriceRaw(low, high string) error {
	return f.price.UpdateRaw(low, high)
}

// SetSort changes the ordering; an invalid order leaves it unchanged.
func (f *Filter) SetSort(s SortOrder) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
	f.sort = s
	return nil
}

// Price returns the selected range.
func (f *Filter) Price() rangeslider.Values { return f.price.Values() }

// PriceState exposes the underlying range, e.g. for handle movement.
func (f *Filter) PriceState() *rangeslider.State { return f.price }

func (f *Filter) Sort() SortOrder { return f.sort }

func (f *Filter) Language() language.Tag { return f.lang }

// SortTitle is the localized caption of the sort selector.
func (f *Filter) SortTitle() string { return f.printer.Sprintf(msgSortTitle) }

func (f *Filter) formatPrice(v float64) number.Formatter {
	return number.Decimal(v, number.Scale(int(f.price.Precision())))
}

// Labels renders the current range for display, e.g. "От 1 000₽".
func (f *Filter) Labels() Labels {
	v := f.price.Values()
	unit := f.price.Unit()
	return Labels{
		From: f.printer.Sprintf(msgFrom, f.formatPrice(v.Low), unit),
		To:   f.printer.Sprintf(msgTo, f.formatPrice(v.High), unit),
	}
}

// SortOptions lists every sort order with its localized label and marks the
// current one as selected.
func (f *Filter) SortOptions() []SortOption {
	orders := SortOrders()
	out := make([]SortOption, 0, len(orders))
	for _, s := range orders {
		out = append(out, SortOption{
			Value:    s,
			Label:    f.printer.Sprintf(sortLabels[s]),
			Selected: s == f.sort,
		})
	}
	return out
}
