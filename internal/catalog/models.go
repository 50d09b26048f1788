package catalog

// Raw shapes of the catalog search response. Only the fields the
// normalizer reads are mapped; everything else in the payload is ignored.

type RawProduct struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Items       []RawItem `json:"items"`
}

type RawItem struct {
	ItemID  string      `json:"itemId"`
	Images  []RawImage  `json:"images"`
	Sellers []RawSeller `json:"sellers"`
}

type RawImage struct {
	ImageURL string `json:"imageUrl"`
}

type RawSeller struct {
	SellerID        string   `json:"sellerId"`
	CommertialOffer RawOffer `json:"commertialOffer"`
}

// RawOffer carries the seller's pricing. Field casing follows the upstream
// payload, misspelling included.
type RawOffer struct {
	Price        float64          `json:"Price"`
	ListPrice    float64          `json:"ListPrice"`
	Installments []RawInstallment `json:"Installments"`
}

type RawInstallment struct {
	NumberOfInstallments int     `json:"NumberOfInstallments"`
	InterestRate         float64 `json:"InterestRate"`
}

// proxyEnvelope is the wrapper shape returned by pass-through services
// that embed the upstream body as a string field.
type proxyEnvelope struct {
	Contents string `json:"contents"`
}
