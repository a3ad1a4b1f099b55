package invoice

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gompdf/invoicepdf/internal/i18n"
)

// DefaultTaxLabel names the tax when the invoice does not override it
const DefaultTaxLabel = "VAT"

// VisibleField is an optional value paired with the switch that shows it
type VisibleField struct {
	Value     string `json:"value"`
	IsVisible bool   `json:"isVisible"`
}

// Visible returns a field with the visibility switch on
func Visible(v string) VisibleField {
	return VisibleField{Value: v, IsVisible: true}
}

// ShouldRender reports whether the field is switched on and has content.
// Both conditions are required.
func (f VisibleField) ShouldRender() bool {
	return f.IsVisible && strings.TrimSpace(f.Value) != ""
}

// InvoiceNumber is the user-editable invoice number caption and value
type InvoiceNumber struct {
	Label string `json:"label"`
	Value string `json:"value" validate:"max=64"`
}

// Party is the seller or the buyer
type Party struct {
	Name           string       `json:"name" validate:"required,max=256"`
	Address        string       `json:"address" validate:"required,max=512"`
	Email          string       `json:"email" validate:"omitempty,email"`
	VATNoLabelText string       `json:"vatNoLabelText" validate:"max=64"`
	VATNo          VisibleField `json:"vatNo"`
	AccountNumber  VisibleField `json:"accountNumber"`
	SwiftBic       VisibleField `json:"swiftBic"`
	Notes          VisibleField `json:"notes"`
}

// Item is one invoice line. Monetary values are computed upstream and only
// formatted here.
type Item struct {
	Name         string  `json:"name" validate:"required,max=512"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"max=32"`
	NetPrice     float64 `json:"netPrice"`
	VAT          TaxRate `json:"vat"`
	NetAmount    float64 `json:"netAmount"`
	VATAmount    float64 `json:"vatAmount"`
	PreTaxAmount float64 `json:"preTaxAmount"`
	TypeOfGTU    string  `json:"typeOfGTU" validate:"max=16"`

	NumberIsVisible       bool `json:"numberIsVisible"`
	NameIsVisible         bool `json:"nameIsVisible"`
	AmountIsVisible       bool `json:"amountIsVisible"`
	UnitIsVisible         bool `json:"unitIsVisible"`
	NetPriceIsVisible     bool `json:"netPriceIsVisible"`
	VATIsVisible          bool `json:"vatIsVisible"`
	NetAmountIsVisible    bool `json:"netAmountIsVisible"`
	VATAmountIsVisible    bool `json:"vatAmountIsVisible"`
	PreTaxAmountIsVisible bool `json:"preTaxAmountIsVisible"`
	TypeOfGTUIsVisible    bool `json:"typeOfGTUIsVisible"`
}

// DefaultItem returns an item with every column switched on except GTU
func DefaultItem() Item {
	return Item{
		Amount:                1,
		VAT:                   Percent(0),
		NumberIsVisible:       true,
		NameIsVisible:         true,
		AmountIsVisible:       true,
		UnitIsVisible:         true,
		NetPriceIsVisible:     true,
		VATIsVisible:          true,
		NetAmountIsVisible:    true,
		VATAmountIsVisible:    true,
		PreTaxAmountIsVisible: true,
	}
}

func (it *Item) UnmarshalJSON(b []byte) error {
	type plain Item
	p := plain(DefaultItem())
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

// QRCode is an optional QR image. Data is an image data URL; Payload is raw
// text that callers outside the layout core may turn into Data.
type QRCode struct {
	Data        string `json:"data" validate:"omitempty,datauri"`
	Payload     string `json:"payload" validate:"max=2048"`
	Description string `json:"description" validate:"max=256"`
	IsVisible   bool   `json:"isVisible"`
}

// ShouldRender reports whether a QR image is present and switched on
func (q QRCode) ShouldRender() bool {
	return q.IsVisible && strings.TrimSpace(q.Data) != ""
}

// Data is the validated snapshot of everything needed to lay out an invoice.
// It is read-only once decoded.
type Data struct {
	Language   i18n.Language `json:"language" validate:"required,language"`
	Currency   Currency      `json:"currency" validate:"required,currency"`
	Template   Template      `json:"template"`
	DateFormat string        `json:"dateFormat" validate:"required,dateformat"`

	InvoiceNumber InvoiceNumber `json:"invoiceNumber"`
	InvoiceType   VisibleField  `json:"invoiceType"`

	DateOfIssue   Date `json:"dateOfIssue" validate:"required"`
	DateOfService Date `json:"dateOfService" validate:"required"`
	PaymentDue    Date `json:"paymentDue" validate:"required"`

	Seller Party  `json:"seller"`
	Buyer  Party  `json:"buyer"`
	Items  []Item `json:"items" validate:"dive"`

	Total float64 `json:"total" validate:"gte=0"`
	Paid  float64 `json:"paid" validate:"gte=0"`

	VATTableSummaryIsVisible bool         `json:"vatTableSummaryIsVisible"`
	PaymentMethod            VisibleField `json:"paymentMethod"`
	Notes                    VisibleField `json:"notes"`

	PersonAuthorizedToReceiveIsVisible bool `json:"personAuthorizedToReceiveIsVisible"`
	PersonAuthorizedToIssueIsVisible   bool `json:"personAuthorizedToIssueIsVisible"`

	Logo               string `json:"logo" validate:"omitempty,datauri"`
	QRCode             QRCode `json:"qrCode"`
	StripePayOnlineURL string `json:"stripePayOnlineUrl" validate:"omitempty,url"`
	TaxLabelText       string `json:"taxLabelText" validate:"max=32"`
}

// Defaults returns a Data value with the generator's defaults applied
func Defaults() *Data {
	party := Party{
		VATNo:         VisibleField{IsVisible: true},
		AccountNumber: VisibleField{IsVisible: true},
		SwiftBic:      VisibleField{IsVisible: true},
		Notes:         VisibleField{IsVisible: true},
	}
	return &Data{
		Language:                           i18n.English,
		Currency:                           EUR,
		Template:                           TemplateDefault,
		DateFormat:                         DefaultDateFormat,
		InvoiceType:                        VisibleField{IsVisible: true},
		Seller:                             party,
		Buyer:                              party,
		VATTableSummaryIsVisible:           true,
		PaymentMethod:                      VisibleField{IsVisible: true},
		Notes:                              VisibleField{IsVisible: true},
		PersonAuthorizedToReceiveIsVisible: true,
		PersonAuthorizedToIssueIsVisible:   true,
		QRCode:                             QRCode{IsVisible: true},
		TaxLabelText:                       DefaultTaxLabel,
	}
}

// Clone returns a deep copy of d
func (d *Data) Clone() *Data {
	c := *d
	c.Items = append([]Item(nil), d.Items...)
	return &c
}

// WithLanguage returns a copy of d rendered in l
func (d *Data) WithLanguage(l i18n.Language) *Data {
	c := d.Clone()
	c.Language = l
	return c
}

// TaxLabel returns the tax name printed in captions
func (d *Data) TaxLabel() string {
	if s := strings.TrimSpace(d.TaxLabelText); s != "" {
		return s
	}
	return DefaultTaxLabel
}

// AnyVATVisible reports whether at least one item shows its tax column
func (d *Data) AnyVATVisible() bool {
	for _, it := range d.Items {
		if it.VATIsVisible {
			return true
		}
	}
	return false
}
