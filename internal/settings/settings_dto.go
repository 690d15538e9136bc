package settings

type SettingsRequest struct {
	CompanyName *string `json:"company_name"`
	Language    string  `json:"language"`
	Theme       string  `json:"theme"`
}

type SettingsResponse struct {
	CompanyName *string `json:"company_name"`
	Language    string  `json:"language"`
	Theme       string  `json:"theme"`
}
