package i18n

import (
	"fmt"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Entry is the complete localization record for one language
type Entry struct {
	Tag        language.Tag
	DateLocale monday.Locale
	// CurrencyPattern places the symbol relative to the digits, e.g. "{symbol}{amount}"
	CurrencyPattern string
	Labels          Labels
}

// Labels holds every user-visible caption the invoice templates print.
// Captions containing {tax} are resolved against the invoice's tax label.
type Labels struct {
	Invoice         string
	InvoiceNumber   string
	InvoiceNumberOf string
	DateOfIssue     string
	DateOfService   string
	DateDue         string

	Seller        string
	Buyer         string
	BillTo        string
	VATNo         string
	Email         string
	AccountNumber string
	SwiftBic      string

	ItemNo       string
	NameOfGoods  string
	TypeOfGTU    string
	Amount       string
	Unit         string
	NetPrice     string
	VAT          string
	NetAmount    string
	VATAmount    string
	PreTaxAmount string
	Sum          string

	PaymentMethod string
	PaymentDate   string
	VATRate       string
	Net           string
	PreTax        string
	Total         string
	ToPay         string
	Paid          string
	LeftToPay     string
	AmountInWords string

	PersonAuthorizedToReceive string
	PersonAuthorizedToIssue   string

	Description       string
	Qty               string
	UnitPrice         string
	Tax               string
	LineAmount        string
	Subtotal          string
	TotalExcludingTax string
	AmountDue         string
	Due               string
	PayOnline         string

	Page        string
	CreatedWith string
	Notes       string
}

// Lookup returns the localization entry for l
func Lookup(l Language) (Entry, error) {
	e, ok := table[l]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(l))
	}
	return e, nil
}

// MustLookup is like Lookup but panics for languages without an entry.
// Callers validate the language at the input boundary.
func MustLookup(l Language) Entry {
	e, err := Lookup(l)
	if err != nil {
		panic(err)
	}
	return e
}
