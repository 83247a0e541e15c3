package models

// ForecastRequest is the query-API request. Defined in domain for
// consistency and reuse.
type ForecastRequest struct {
	Symbol string `param:"symbol" query:"symbol" json:"symbol" validate:"required,min=1,max=32"`
}
