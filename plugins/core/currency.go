package core

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/bizimtransfer-mcp/plugins/bizimtransfer"
	"github.com/va6996/bizimtransfer-mcp/tools"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// LocalCurrency returns the ISO 4217 code used in a country (ISO 3166-1 alpha-2).
// ok is false for empty or unknown countries.
func LocalCurrency(countryCode string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return "", false
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}

	cur, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	return cur.String(), true
}

type CurrencyInput struct {
	CountryCode string `json:"country_code" description:"ISO 3166-1 alpha-2 country code"`
}

// CurrencyOutput tells the agent which currency to pass to search_transfers
type CurrencyOutput struct {
	CountryCode     string `json:"country_code"`
	LocalCurrency   string `json:"local_currency,omitempty"`
	Supported       bool   `json:"supported"`
	BookingCurrency string `json:"booking_currency"`
}

// CurrencyTool maps a customer's country onto the currencies the booking API prices in
type CurrencyTool struct{}

func NewCurrencyTool(gk *genkit.Genkit, registry *tools.Registry) *CurrencyTool {
	t := &CurrencyTool{}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*CurrencyInput, *CurrencyOutput](
		gk,
		"currency_for_country",
		"Returns the local currency for a country (ISO 3166-1 alpha-2) and the currency to request from search_transfers. Unsupported currencies fall back to EUR.",
		func(ctx *ai.ToolContext, input *CurrencyInput) (*CurrencyOutput, error) {
			return t.Execute(input.CountryCode), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := tools.DecodeArgs[CurrencyInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(input.CountryCode), nil
	})

	return t
}

func (t *CurrencyTool) Execute(countryCode string) *CurrencyOutput {
	local, _ := LocalCurrency(countryCode)
	return &CurrencyOutput{
		CountryCode:     strings.ToUpper(strings.TrimSpace(countryCode)),
		LocalCurrency:   local,
		Supported:       bizimtransfer.IsSupportedCurrency(local),
		BookingCurrency: bizimtransfer.ParseCurrency(local).Code(),
	}
}
