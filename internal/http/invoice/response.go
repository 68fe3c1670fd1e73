package invoice

import (
	"time"

	"github.com/stbaker/biztime/internal/invoice"
)

type invoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type listItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// invoiceDetail replaces the bare comp_code with the joined company row.
type invoiceDetail struct {
	ID       int64           `json:"id"`
	Company  companyResponse `json:"company"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

type listEnvelope struct {
	Invoices []listItem `json:"invoices"`
}

type invoiceEnvelope struct {
	Invoice invoiceResponse `json:"invoice"`
}

type detailEnvelope struct {
	Invoice invoiceDetail `json:"invoice"`
}

type statusEnvelope struct {
	Status string `json:"status"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func toDetail(inv *invoice.Invoice) invoiceDetail {
	return invoiceDetail{
		ID: inv.ID,
		Company: companyResponse{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		},
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func toListItems(invs []*invoice.Invoice) []listItem {
	items := make([]listItem, len(invs))
	for i, inv := range invs {
		items[i] = listItem{ID: inv.ID, CompCode: inv.CompCode}
	}

	return items
}
