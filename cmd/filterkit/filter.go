package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/filterkit/pkg/pricefilter"
	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

func filterCmd(a *app) *cobra.Command {
	var rf, bounds rangeFlags
	var low, high, sort, lang string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Render price filter captions and sort options",
		Long: `Filter builds a price filter under a root range, applies the selected
price and prints the localized captions and sort options. Root bounds come
from the --root-* flags, the price range from --price-* flags or the
"price" section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg pricefilter.Config
			if err := loadConfig(a, &cfg); err != nil {
				return err
			}
			rf.apply(cmd, "price-", &cfg.Price)
			if cmd.Flags().Changed("sort") {
				cfg.Sort = pricefilter.SortOrder(sort)
			}
			if cmd.Flags().Changed("lang") {
				cfg.Lang = lang
			}

			var rootCfg rangeslider.Config
			bounds.apply(cmd, "root-", &rootCfg)
			root, _ := rangeslider.New(rootCfg, a.rangeOptions()...)

			// Price field errors escalate to root and leave a usable filter;
			// only a bad sort order or language is fatal.
			f, err := pricefilter.New(root, cfg, pricefilter.WithLogger(a.log))
			if f == nil {
				return fmt.Errorf("price filter: %w", err)
			}
			if cmd.Flags().Changed("low") || cmd.Flags().Changed("high") {
				v := f.Price()
				if low == "" {
					low = formatFloat(v.Low)
				}
				if high == "" {
					high = formatFloat(v.High)
				}
				if err := f.SetPriceRaw(low, high); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			labels := f.Labels()
			fmt.Fprintln(out, labels.From)
			fmt.Fprintln(out, labels.To)
			fmt.Fprintf(out, "%s:\n", f.SortTitle())
			for _, opt := range f.SortOptions() {
				mark := " "
				if opt.Selected {
					mark = "*"
				}
				fmt.Fprintf(out, " %s %s (%s)\n", mark, opt.Label, opt.Value)
			}
			return nil
		},
	}

	rf.register(cmd, "price-")
	bounds.register(cmd, "root-")
	flags := cmd.Flags()
	flags.StringVar(&low, "low", "", "selected lower price")
	flags.StringVar(&high, "high", "", "selected upper price")
	flags.StringVar(&sort, "sort", "", "sort order: relevant, price_asc or price_desc")
	flags.StringVar(&lang, "lang", "", "caption language, e.g. ru or en")

	return cmd
}
