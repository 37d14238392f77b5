package mortgageapi

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/roivaz/mortgage-mcp/internal/mcp/tools/types"
)

// rateFields maps provider field names to the output product they fill.
var rateFields = []struct {
	provider string
	target   func(*types.RateProducts) **float64
}{
	{"thirty_year_fixed", func(r *types.RateProducts) **float64 { return &r.ThirtyYearFixed }},
	{"thirty_year_fha", func(r *types.RateProducts) **float64 { return &r.ThirtyYearFHA }},
	{"thirty_year_va", func(r *types.RateProducts) **float64 { return &r.ThirtyYearVA }},
	{"twenty_year_fixed", func(r *types.RateProducts) **float64 { return &r.TwentyYearFixed }},
	{"fifteen_year_fixed", func(r *types.RateProducts) **float64 { return &r.FifteenYearFixed }},
	{"ten_year_fixed", func(r *types.RateProducts) **float64 { return &r.TenYearFixed }},
	{"seven_year_arm", func(r *types.RateProducts) **float64 { return &r.SevenYearARM }},
	{"five_year_arm", func(r *types.RateProducts) **float64 { return &r.FiveYearARM }},
}

func parseRates(body []byte, requestedState string) (types.RateQuoteSet, error) {
	if !gjson.ValidBytes(body) {
		return types.RateQuoteSet{}, errors.New("decode rates response: invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return types.RateQuoteSet{}, errors.New("decode rates response: expected a JSON object")
	}
	if data := root.Get("data"); data.IsObject() {
		root = data
	}

	quotes := types.RateQuoteSet{
		State:          requestedState,
		Source:         SourceLabel,
		EventTimestamp: root.Get("event_timestamp").String(),
	}
	if state := root.Get("state").String(); state != "" {
		quotes.State = state
	}

	for _, field := range rateFields {
		if value, ok := rateValue(root.Get(field.provider)); ok {
			*field.target(&quotes.Rates) = &value
		}
	}
	return quotes, nil
}

func rateValue(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
