package company

import "github.com/stbaker/biztime/internal/company"

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type listItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// companyDetail adds the invoice-id sublist returned by Get.
type companyDetail struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Invoices    []int64 `json:"invoices"`
}

type listEnvelope struct {
	Companies []listItem `json:"companies"`
}

type companyEnvelope struct {
	Company companyResponse `json:"company"`
}

type detailEnvelope struct {
	Company companyDetail `json:"company"`
}

type statusEnvelope struct {
	Status string `json:"status"`
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toDetail(c *company.Company) companyDetail {
	invoices := c.InvoiceIDs
	if invoices == nil {
		invoices = []int64{}
	}

	return companyDetail{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    invoices,
	}
}

func toListItems(companies []*company.Company) []listItem {
	items := make([]listItem, len(companies))
	for i, c := range companies {
		items[i] = listItem{Code: c.Code, Name: c.Name}
	}

	return items
}
