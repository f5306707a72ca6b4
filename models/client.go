package models

// Client represents a client of the accounting portfolio.
type Client struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Document  *string `json:"document"` // CNPJ/CPF or other tax identifier
	Email     *string `json:"email"`
	Status    string  `json:"status"` // active, inactive
	CreatedAt string  `json:"created_at"`
}

// ClientInput is used for creating/updating clients.
type ClientInput struct {
	Name     string  `json:"name"`
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Status   string  `json:"status"`
}

func (c *ClientInput) Validate() string {
	if c.Name == "" {
		return "name is required"
	}
	switch c.Status {
	case "", "active", "inactive":
	default:
		return "status must be one of: active, inactive"
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return ""
}
