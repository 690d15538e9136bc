package company

type CompanyRequest struct {
	Name   string  `json:"name" binding:"required"`
	Domain *string `json:"domain"`
	Notes  *string `json:"notes"`
}

type ListCompaniesQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type CompanyResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Domain *string `json:"domain"`
	Notes  *string `json:"notes"`
}
