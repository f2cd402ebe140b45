package handler

type createListingRequest struct {
	Name      string   `json:"name"       validate:"required"`
	Price     float64  `json:"price"      validate:"required,gt=0"`
	DealPrice float64  `json:"deal_price" validate:"required,gt=0"`
	Currency  string   `json:"currency"   validate:"omitempty,len=3"`
	ShortDes  string   `json:"short_des"`
	Des       string   `json:"des"`
	Image     string   `json:"image"`
	Images    []string `json:"images"`
}

// updateListingRequest is a partial update: absent fields stay unchanged.
type updateListingRequest struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"      validate:"omitempty,gt=0"`
	DealPrice *float64 `json:"deal_price" validate:"omitempty,gt=0"`
	Currency  *string  `json:"currency"   validate:"omitempty,len=3"`
	ShortDes  *string  `json:"short_des"`
	Des       *string  `json:"des"`
	Image     *string  `json:"image"`
	Images    []string `json:"images"`
}
