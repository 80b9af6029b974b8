package domain

type BillingFrequency string

const (
	BillingFrequencyMonthly   BillingFrequency = "Monthly"
	BillingFrequencyQuarterly BillingFrequency = "Quarterly"
	BillingFrequencyAnnual    BillingFrequency = "Annual"
)

func (f BillingFrequency) IsValid() bool {
	switch f {
	case BillingFrequencyMonthly, BillingFrequencyQuarterly, BillingFrequencyAnnual:
		return true
	}
	return false
}

// Store é uma loja conectada com seus dados de cobrança editáveis.
// ID, Name e Domain são imutáveis.
type Store struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Domain           string           `json:"domain"`
	ClientName       *string          `json:"client_name,omitempty"`
	Notes            string           `json:"notes"`
	LastInvoiceDate  *string          `json:"last_invoice_date,omitempty"`
	BillingFrequency BillingFrequency `json:"billing_frequency"`
	BillingStatus    string           `json:"billing_status,omitempty"`
}

// ClientNameOrEmpty retorna o nome do cliente ou "" quando ausente
func (s Store) ClientNameOrEmpty() string {
	if s.ClientName == nil {
		return ""
	}
	return *s.ClientName
}

// LastInvoiceDateOrEmpty retorna a data da última fatura ou "" quando ausente
func (s Store) LastInvoiceDateOrEmpty() string {
	if s.LastInvoiceDate == nil {
		return ""
	}
	return *s.LastInvoiceDate
}

// UpdateStoreRequest contém os campos editáveis de uma loja. Campos nulos não são alterados.
type UpdateStoreRequest struct {
	ID               string            `json:"-"`
	ClientName       *string           `json:"client_name,omitempty"`
	BillingFrequency *BillingFrequency `json:"billing_frequency,omitempty" validate:"omitempty,oneof=Monthly Quarterly Annual"`
	Notes            *string           `json:"notes,omitempty" validate:"omitempty,max=2000"`
	LastInvoiceDate  *string           `json:"last_invoice_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BillingStatus    *string           `json:"billing_status,omitempty" validate:"omitempty,max=64"`
}

func (r *UpdateStoreRequest) IsEmpty() bool {
	return r.ClientName == nil &&
		r.BillingFrequency == nil &&
		r.Notes == nil &&
		r.LastInvoiceDate == nil &&
		r.BillingStatus == nil
}

// ApplyTo mescla os campos informados na loja. Strings vazias em campos
// opcionais (cliente, data da última fatura) removem o valor.
func (r *UpdateStoreRequest) ApplyTo(store *Store) {
	if r.ClientName != nil {
		store.ClientName = optionalString(*r.ClientName)
	}
	if r.BillingFrequency != nil {
		store.BillingFrequency = *r.BillingFrequency
	}
	if r.Notes != nil {
		store.Notes = *r.Notes
	}
	if r.LastInvoiceDate != nil {
		store.LastInvoiceDate = optionalString(*r.LastInvoiceDate)
	}
	if r.BillingStatus != nil {
		store.BillingStatus = *r.BillingStatus
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
