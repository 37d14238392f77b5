package types

// RateProducts holds the rate per product, in percent. Products missing from
// the provider response stay nil and are omitted from the output.
type RateProducts struct {
	ThirtyYearFixed  *float64 `json:"30_year_fixed,omitempty"`
	ThirtyYearFHA    *float64 `json:"30_year_fha,omitempty"`
	ThirtyYearVA     *float64 `json:"30_year_va,omitempty"`
	TwentyYearFixed  *float64 `json:"20_year_fixed,omitempty"`
	FifteenYearFixed *float64 `json:"15_year_fixed,omitempty"`
	TenYearFixed     *float64 `json:"10_year_fixed,omitempty"`
	SevenYearARM     *float64 `json:"7_year_arm,omitempty"`
	FiveYearARM      *float64 `json:"5_year_arm,omitempty"`
}

type RateQuoteSet struct {
	State          string       `json:"state"`
	Rates          RateProducts `json:"rates"`
	Source         string       `json:"source"`
	EventTimestamp string       `json:"event_timestamp,omitempty"`
}
