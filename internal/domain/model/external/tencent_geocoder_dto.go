package external

// TencentGeocoderResponse represents the response from the /ws/geocoder/v1 reverse geocoding API.
// Status 0 means success.
type TencentGeocoderResponse struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Result  *TencentGeocoderResult `json:"result"`
}

type TencentGeocoderResult struct {
	Address          string                  `json:"address"`
	AddressComponent TencentAddressComponent `json:"address_component"`
}

type TencentAddressComponent struct {
	Nation       string `json:"nation"`
	Province     string `json:"province"`
	City         string `json:"city"`
	District     string `json:"district"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
}

// FullAddress concatenates province, city, district, street and number.
func (c TencentAddressComponent) FullAddress() string {
	return c.Province + c.City + c.District + c.Street + c.StreetNumber
}
