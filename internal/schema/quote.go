package schema

// HotelQuote is one priced destination of a quote response.
type HotelQuote struct {
	ID                string `json:"id"`
	HotelCodeSupplier string `json:"hotelCodeSupplier"`
	Market            string `json:"market"`
	Price             Price  `json:"price"`
}

type Price struct {
	MinimumSellingPrice float64 `json:"minimumSellingPrice"`
	Net                 float64 `json:"net"`
	Currency            string  `json:"currency"`
	SellingPrice        float64 `json:"selling_price"`
	SellingCurrency     string  `json:"selling_currency"`
	Markup              float64 `json:"markup"`
	ExchangeRate        float64 `json:"exchange_rate"`
}

type QuotesResponse []HotelQuote
