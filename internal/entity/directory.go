package entity

import "github.com/goccy/go-json"

type User struct {
	ID          string `json:"_id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// DisplayName renders the user the way the sender picker lists them.
func (u User) DisplayName() string {
	company := u.CompanyName
	if company == "" {
		company = "Individual"
	}
	return u.FullName + " (" + company + ")"
}

type Invoice struct {
	ID            string `json:"_id"`
	InvoiceNumber string `json:"invoice_number"`
	CustomerName  string `json:"customer_name"`
}

// UnmarshalJSON accepts either "_id" or "id" as the invoice identifier.
func (i *Invoice) UnmarshalJSON(b []byte) error {
	var raw struct {
		MongoID       string `json:"_id"`
		ID            string `json:"id"`
		InvoiceNumber string `json:"invoice_number"`
		CustomerName  string `json:"customer_name"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	i.ID = raw.MongoID
	if i.ID == "" {
		i.ID = raw.ID
	}
	i.InvoiceNumber = raw.InvoiceNumber
	i.CustomerName = raw.CustomerName
	return nil
}
