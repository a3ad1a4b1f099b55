package i18n

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var table = map[Language]Entry{
	English: {
		Tag:             language.MustParse("en-US"),
		DateLocale:      monday.LocaleEnUS,
		CurrencyPattern: "{symbol}{amount}",
		Labels: Labels{
			Invoice:                   "Invoice",
			InvoiceNumber:             "Invoice number",
			InvoiceNumberOf:           "Invoice No. of:",
			DateOfIssue:               "Date of issue",
			DateOfService:             "Date of sales/of executing the service",
			DateDue:                   "Date due",
			Seller:                    "Seller",
			Buyer:                     "Buyer",
			BillTo:                    "Bill to",
			VATNo:                     "{tax} no",
			Email:                     "e-mail",
			AccountNumber:             "Account number",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "No",
			NameOfGoods:               "Name of goods/service",
			TypeOfGTU:                 "Type of GTU",
			Amount:                    "Amount",
			Unit:                      "Unit",
			NetPrice:                  "Net price",
			VAT:                       "{tax}",
			NetAmount:                 "Net amount",
			VATAmount:                 "{tax} amount",
			PreTaxAmount:              "Pre-tax amount",
			Sum:                       "SUM",
			PaymentMethod:             "Payment method",
			PaymentDate:               "Payment date",
			VATRate:                   "{tax} rate",
			Net:                       "Net",
			PreTax:                    "Pre-tax",
			Total:                     "Total",
			ToPay:                     "To pay",
			Paid:                      "Paid",
			LeftToPay:                 "Left to pay",
			AmountInWords:             "Amount in words",
			PersonAuthorizedToReceive: "Person authorized to receive",
			PersonAuthorizedToIssue:   "Person authorized to issue",
			Description:               "Description",
			Qty:                       "Qty",
			UnitPrice:                 "Unit price",
			Tax:                       "{tax}",
			LineAmount:                "Amount",
			Subtotal:                  "Subtotal",
			TotalExcludingTax:         "Total excluding {tax}",
			AmountDue:                 "Amount due",
			Due:                       "due",
			PayOnline:                 "Pay online",
			Page:                      "Page {page} of {pages}",
			CreatedWith:               "Created with",
			Notes:                     "Notes",
		},
	},
	Polish: {
		Tag:             language.MustParse("pl-PL"),
		DateLocale:      monday.LocalePlPL,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Faktura",
			InvoiceNumber:             "Numer faktury",
			InvoiceNumberOf:           "Faktura nr:",
			DateOfIssue:               "Data wystawienia",
			DateOfService:             "Data sprzedaży / wykonania usługi",
			DateDue:                   "Termin płatności",
			Seller:                    "Sprzedawca",
			Buyer:                     "Nabywca",
			BillTo:                    "Nabywca",
			VATNo:                     "NIP",
			Email:                     "e-mail",
			AccountNumber:             "Numer konta",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "Lp.",
			NameOfGoods:               "Nazwa towaru/usługi",
			TypeOfGTU:                 "Typ GTU",
			Amount:                    "Ilość",
			Unit:                      "Jm",
			NetPrice:                  "Cena netto",
			VAT:                       "Stawka {tax}",
			NetAmount:                 "Kwota netto",
			VATAmount:                 "Kwota {tax}",
			PreTaxAmount:              "Kwota brutto",
			Sum:                       "SUMA",
			PaymentMethod:             "Sposób płatności",
			PaymentDate:               "Termin płatności",
			VATRate:                   "Stawka {tax}",
			Net:                       "Netto",
			PreTax:                    "Brutto",
			Total:                     "Razem",
			ToPay:                     "Do zapłaty",
			Paid:                      "Zapłacono",
			LeftToPay:                 "Pozostało do zapłaty",
			AmountInWords:             "Kwota słownie",
			PersonAuthorizedToReceive: "Osoba upoważniona do odbioru",
			PersonAuthorizedToIssue:   "Osoba upoważniona do wystawienia",
			Description:               "Opis",
			Qty:                       "Ilość",
			UnitPrice:                 "Cena jedn.",
			Tax:                       "{tax}",
			LineAmount:                "Kwota",
			Subtotal:                  "Suma częściowa",
			TotalExcludingTax:         "Razem bez {tax}",
			AmountDue:                 "Kwota do zapłaty",
			Due:                       "płatne do",
			PayOnline:                 "Zapłać online",
			Page:                      "Strona {page} z {pages}",
			CreatedWith:               "Utworzono za pomocą",
			Notes:                     "Uwagi",
		},
	},
	German: {
		Tag:             language.MustParse("de-DE"),
		DateLocale:      monday.LocaleDeDE,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Rechnung",
			InvoiceNumber:             "Rechnungsnummer",
			InvoiceNumberOf:           "Rechnung Nr.:",
			DateOfIssue:               "Ausstellungsdatum",
			DateOfService:             "Liefer-/Leistungsdatum",
			DateDue:                   "Fälligkeitsdatum",
			Seller:                    "Verkäufer",
			Buyer:                     "Käufer",
			BillTo:                    "Rechnung an",
			VATNo:                     "USt-IdNr.",
			Email:                     "E-Mail",
			AccountNumber:             "Kontonummer",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "Nr.",
			NameOfGoods:               "Bezeichnung der Ware/Leistung",
			TypeOfGTU:                 "GTU-Typ",
			Amount:                    "Menge",
			Unit:                      "Einheit",
			NetPrice:                  "Nettopreis",
			VAT:                       "{tax}",
			NetAmount:                 "Nettobetrag",
			VATAmount:                 "{tax}-Betrag",
			PreTaxAmount:              "Bruttobetrag",
			Sum:                       "SUMME",
			PaymentMethod:             "Zahlungsart",
			PaymentDate:               "Zahlungsdatum",
			VATRate:                   "{tax}-Satz",
			Net:                       "Netto",
			PreTax:                    "Brutto",
			Total:                     "Gesamt",
			ToPay:                     "Zu zahlen",
			Paid:                      "Bezahlt",
			LeftToPay:                 "Offener Betrag",
			AmountInWords:             "Betrag in Worten",
			PersonAuthorizedToReceive: "Empfangsberechtigte Person",
			PersonAuthorizedToIssue:   "Ausstellungsberechtigte Person",
			Description:               "Beschreibung",
			Qty:                       "Menge",
			UnitPrice:                 "Stückpreis",
			Tax:                       "{tax}",
			LineAmount:                "Betrag",
			Subtotal:                  "Zwischensumme",
			TotalExcludingTax:         "Gesamt ohne {tax}",
			AmountDue:                 "Fälliger Betrag",
			Due:                       "fällig am",
			PayOnline:                 "Online bezahlen",
			Page:                      "Seite {page} von {pages}",
			CreatedWith:               "Erstellt mit",
			Notes:                     "Anmerkungen",
		},
	},
	Spanish: {
		Tag:             language.MustParse("es-ES"),
		DateLocale:      monday.LocaleEsES,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Factura",
			InvoiceNumber:             "Número de factura",
			InvoiceNumberOf:           "Factura n.º:",
			DateOfIssue:               "Fecha de emisión",
			DateOfService:             "Fecha de venta/prestación del servicio",
			DateDue:                   "Fecha de vencimiento",
			Seller:                    "Vendedor",
			Buyer:                     "Comprador",
			BillTo:                    "Facturar a",
			VATNo:                     "N.º {tax}",
			Email:                     "Correo electrónico",
			AccountNumber:             "Número de cuenta",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "N.º",
			NameOfGoods:               "Nombre del producto/servicio",
			TypeOfGTU:                 "Tipo de GTU",
			Amount:                    "Cantidad",
			Unit:                      "Unidad",
			NetPrice:                  "Precio neto",
			VAT:                       "{tax}",
			NetAmount:                 "Importe neto",
			VATAmount:                 "Importe {tax}",
			PreTaxAmount:              "Importe bruto",
			Sum:                       "TOTAL",
			PaymentMethod:             "Forma de pago",
			PaymentDate:               "Fecha de pago",
			VATRate:                   "Tipo de {tax}",
			Net:                       "Neto",
			PreTax:                    "Bruto",
			Total:                     "Total",
			ToPay:                     "A pagar",
			Paid:                      "Pagado",
			LeftToPay:                 "Pendiente de pago",
			AmountInWords:             "Importe en letras",
			PersonAuthorizedToReceive: "Persona autorizada para recibir",
			PersonAuthorizedToIssue:   "Persona autorizada para emitir",
			Description:               "Descripción",
			Qty:                       "Cant.",
			UnitPrice:                 "Precio unitario",
			Tax:                       "{tax}",
			LineAmount:                "Importe",
			Subtotal:                  "Subtotal",
			TotalExcludingTax:         "Total sin {tax}",
			AmountDue:                 "Importe adeudado",
			Due:                       "vence el",
			PayOnline:                 "Pagar en línea",
			Page:                      "Página {page} de {pages}",
			CreatedWith:               "Creado con",
			Notes:                     "Notas",
		},
	},
	Portuguese: {
		Tag:             language.MustParse("pt-BR"),
		DateLocale:      monday.LocalePtBR,
		CurrencyPattern: "{symbol} {amount}",
		Labels: Labels{
			Invoice:                   "Fatura",
			InvoiceNumber:             "Número da fatura",
			InvoiceNumberOf:           "Fatura n.º:",
			DateOfIssue:               "Data de emissão",
			DateOfService:             "Data da venda/prestação do serviço",
			DateDue:                   "Data de vencimento",
			Seller:                    "Vendedor",
			Buyer:                     "Comprador",
			BillTo:                    "Faturar para",
			VATNo:                     "N.º {tax}",
			Email:                     "E-mail",
			AccountNumber:             "Número da conta",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "N.º",
			NameOfGoods:               "Nome do produto/serviço",
			TypeOfGTU:                 "Tipo de GTU",
			Amount:                    "Quantidade",
			Unit:                      "Unidade",
			NetPrice:                  "Preço líquido",
			VAT:                       "{tax}",
			NetAmount:                 "Valor líquido",
			VATAmount:                 "Valor do {tax}",
			PreTaxAmount:              "Valor bruto",
			Sum:                       "SOMA",
			PaymentMethod:             "Forma de pagamento",
			PaymentDate:               "Data de pagamento",
			VATRate:                   "Taxa de {tax}",
			Net:                       "Líquido",
			PreTax:                    "Bruto",
			Total:                     "Total",
			ToPay:                     "A pagar",
			Paid:                      "Pago",
			LeftToPay:                 "Restante a pagar",
			AmountInWords:             "Valor por extenso",
			PersonAuthorizedToReceive: "Pessoa autorizada a receber",
			PersonAuthorizedToIssue:   "Pessoa autorizada a emitir",
			Description:               "Descrição",
			Qty:                       "Qtd.",
			UnitPrice:                 "Preço unitário",
			Tax:                       "{tax}",
			LineAmount:                "Valor",
			Subtotal:                  "Subtotal",
			TotalExcludingTax:         "Total sem {tax}",
			AmountDue:                 "Valor devido",
			Due:                       "vence em",
			PayOnline:                 "Pagar online",
			Page:                      "Página {page} de {pages}",
			CreatedWith:               "Criado com",
			Notes:                     "Observações",
		},
	},
	Russian: {
		Tag:             language.MustParse("ru-RU"),
		DateLocale:      monday.LocaleRuRU,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Счёт-фактура",
			InvoiceNumber:             "Номер счёта-фактуры",
			InvoiceNumberOf:           "Счёт-фактура №:",
			DateOfIssue:               "Дата выставления",
			DateOfService:             "Дата продажи/оказания услуги",
			DateDue:                   "Срок оплаты",
			Seller:                    "Продавец",
			Buyer:                     "Покупатель",
			BillTo:                    "Плательщик",
			VATNo:                     "Номер {tax}",
			Email:                     "Эл. почта",
			AccountNumber:             "Расчётный счёт",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "№",
			NameOfGoods:               "Наименование товара/услуги",
			TypeOfGTU:                 "Тип GTU",
			Amount:                    "Количество",
			Unit:                      "Ед. изм.",
			NetPrice:                  "Цена нетто",
			VAT:                       "{tax}",
			NetAmount:                 "Сумма нетто",
			VATAmount:                 "Сумма {tax}",
			PreTaxAmount:              "Сумма брутто",
			Sum:                       "ИТОГО",
			PaymentMethod:             "Способ оплаты",
			PaymentDate:               "Дата оплаты",
			VATRate:                   "Ставка {tax}",
			Net:                       "Нетто",
			PreTax:                    "Брутто",
			Total:                     "Итого",
			ToPay:                     "К оплате",
			Paid:                      "Оплачено",
			LeftToPay:                 "Осталось оплатить",
			AmountInWords:             "Сумма прописью",
			PersonAuthorizedToReceive: "Лицо, уполномоченное на получение",
			PersonAuthorizedToIssue:   "Лицо, уполномоченное на выставление",
			Description:               "Описание",
			Qty:                       "Кол-во",
			UnitPrice:                 "Цена за ед.",
			Tax:                       "{tax}",
			LineAmount:                "Сумма",
			Subtotal:                  "Промежуточный итог",
			TotalExcludingTax:         "Итого без {tax}",
			AmountDue:                 "Сумма к оплате",
			Due:                       "оплатить до",
			PayOnline:                 "Оплатить онлайн",
			Page:                      "Страница {page} из {pages}",
			CreatedWith:               "Создано с помощью",
			Notes:                     "Примечания",
		},
	},
	Ukrainian: {
		Tag:             language.MustParse("uk-UA"),
		DateLocale:      monday.LocaleUkUA,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Рахунок-фактура",
			InvoiceNumber:             "Номер рахунку-фактури",
			InvoiceNumberOf:           "Рахунок-фактура №:",
			DateOfIssue:               "Дата виставлення",
			DateOfService:             "Дата продажу/надання послуги",
			DateDue:                   "Термін оплати",
			Seller:                    "Продавець",
			Buyer:                     "Покупець",
			BillTo:                    "Платник",
			VATNo:                     "Номер {tax}",
			Email:                     "Ел. пошта",
			AccountNumber:             "Номер рахунку",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "№",
			NameOfGoods:               "Назва товару/послуги",
			TypeOfGTU:                 "Тип GTU",
			Amount:                    "Кількість",
			Unit:                      "Од. вим.",
			NetPrice:                  "Ціна нетто",
			VAT:                       "{tax}",
			NetAmount:                 "Сума нетто",
			VATAmount:                 "Сума {tax}",
			PreTaxAmount:              "Сума брутто",
			Sum:                       "РАЗОМ",
			PaymentMethod:             "Спосіб оплати",
			PaymentDate:               "Дата оплати",
			VATRate:                   "Ставка {tax}",
			Net:                       "Нетто",
			PreTax:                    "Брутто",
			Total:                     "Разом",
			ToPay:                     "До сплати",
			Paid:                      "Сплачено",
			LeftToPay:                 "Залишилось сплатити",
			AmountInWords:             "Сума прописом",
			PersonAuthorizedToReceive: "Особа, уповноважена на отримання",
			PersonAuthorizedToIssue:   "Особа, уповноважена на виставлення",
			Description:               "Опис",
			Qty:                       "К-сть",
			UnitPrice:                 "Ціна за од.",
			Tax:                       "{tax}",
			LineAmount:                "Сума",
			Subtotal:                  "Проміжний підсумок",
			TotalExcludingTax:         "Разом без {tax}",
			AmountDue:                 "Сума до сплати",
			Due:                       "сплатити до",
			PayOnline:                 "Сплатити онлайн",
			Page:                      "Сторінка {page} з {pages}",
			CreatedWith:               "Створено за допомогою",
			Notes:                     "Примітки",
		},
	},
	French: {
		Tag:             language.MustParse("fr-FR"),
		DateLocale:      monday.LocaleFrFR,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Facture",
			InvoiceNumber:             "Numéro de facture",
			InvoiceNumberOf:           "Facture n° :",
			DateOfIssue:               "Date d'émission",
			DateOfService:             "Date de vente/prestation du service",
			DateDue:                   "Date d'échéance",
			Seller:                    "Vendeur",
			Buyer:                     "Acheteur",
			BillTo:                    "Facturer à",
			VATNo:                     "N° {tax}",
			Email:                     "E-mail",
			AccountNumber:             "Numéro de compte",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "N°",
			NameOfGoods:               "Désignation du produit/service",
			TypeOfGTU:                 "Type de GTU",
			Amount:                    "Quantité",
			Unit:                      "Unité",
			NetPrice:                  "Prix HT",
			VAT:                       "{tax}",
			NetAmount:                 "Montant HT",
			VATAmount:                 "Montant {tax}",
			PreTaxAmount:              "Montant TTC",
			Sum:                       "TOTAL",
			PaymentMethod:             "Mode de paiement",
			PaymentDate:               "Date de paiement",
			VATRate:                   "Taux de {tax}",
			Net:                       "HT",
			PreTax:                    "TTC",
			Total:                     "Total",
			ToPay:                     "À payer",
			Paid:                      "Payé",
			LeftToPay:                 "Reste à payer",
			AmountInWords:             "Montant en lettres",
			PersonAuthorizedToReceive: "Personne autorisée à recevoir",
			PersonAuthorizedToIssue:   "Personne autorisée à émettre",
			Description:               "Description",
			Qty:                       "Qté",
			UnitPrice:                 "Prix unitaire",
			Tax:                       "{tax}",
			LineAmount:                "Montant",
			Subtotal:                  "Sous-total",
			TotalExcludingTax:         "Total hors {tax}",
			AmountDue:                 "Montant dû",
			Due:                       "à payer avant le",
			PayOnline:                 "Payer en ligne",
			Page:                      "Page {page} sur {pages}",
			CreatedWith:               "Créé avec",
			Notes:                     "Remarques",
		},
	},
	Italian: {
		Tag:             language.MustParse("it-IT"),
		DateLocale:      monday.LocaleItIT,
		CurrencyPattern: "{amount} {symbol}",
		Labels: Labels{
			Invoice:                   "Fattura",
			InvoiceNumber:             "Numero fattura",
			InvoiceNumberOf:           "Fattura n.:",
			DateOfIssue:               "Data di emissione",
			DateOfService:             "Data di vendita/esecuzione del servizio",
			DateDue:                   "Data di scadenza",
			Seller:                    "Venditore",
			Buyer:                     "Acquirente",
			BillTo:                    "Fatturare a",
			VATNo:                     "N. {tax}",
			Email:                     "E-mail",
			AccountNumber:             "Numero di conto",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "N.",
			NameOfGoods:               "Descrizione del bene/servizio",
			TypeOfGTU:                 "Tipo GTU",
			Amount:                    "Quantità",
			Unit:                      "Unità",
			NetPrice:                  "Prezzo netto",
			VAT:                       "{tax}",
			NetAmount:                 "Importo netto",
			VATAmount:                 "Importo {tax}",
			PreTaxAmount:              "Importo lordo",
			Sum:                       "TOTALE",
			PaymentMethod:             "Metodo di pagamento",
			PaymentDate:               "Data di pagamento",
			VATRate:                   "Aliquota {tax}",
			Net:                       "Netto",
			PreTax:                    "Lordo",
			Total:                     "Totale",
			ToPay:                     "Da pagare",
			Paid:                      "Pagato",
			LeftToPay:                 "Resta da pagare",
			AmountInWords:             "Importo in lettere",
			PersonAuthorizedToReceive: "Persona autorizzata a ricevere",
			PersonAuthorizedToIssue:   "Persona autorizzata a emettere",
			Description:               "Descrizione",
			Qty:                       "Qtà",
			UnitPrice:                 "Prezzo unitario",
			Tax:                       "{tax}",
			LineAmount:                "Importo",
			Subtotal:                  "Subtotale",
			TotalExcludingTax:         "Totale senza {tax}",
			AmountDue:                 "Importo dovuto",
			Due:                       "scadenza",
			PayOnline:                 "Paga online",
			Page:                      "Pagina {page} di {pages}",
			CreatedWith:               "Creato con",
			Notes:                     "Note",
		},
	},
	Dutch: {
		Tag:             language.MustParse("nl-NL"),
		DateLocale:      monday.LocaleNlNL,
		CurrencyPattern: "{symbol} {amount}",
		Labels: Labels{
			Invoice:                   "Factuur",
			InvoiceNumber:             "Factuurnummer",
			InvoiceNumberOf:           "Factuur nr.:",
			DateOfIssue:               "Factuurdatum",
			DateOfService:             "Datum van levering/dienstverlening",
			DateDue:                   "Vervaldatum",
			Seller:                    "Verkoper",
			Buyer:                     "Koper",
			BillTo:                    "Factuur aan",
			VATNo:                     "{tax}-nummer",
			Email:                     "E-mail",
			AccountNumber:             "Rekeningnummer",
			SwiftBic:                  "SWIFT/BIC",
			ItemNo:                    "Nr.",
			NameOfGoods:               "Naam product/dienst",
			TypeOfGTU:                 "GTU-type",
			Amount:                    "Aantal",
			Unit:                      "Eenheid",
			NetPrice:                  "Nettoprijs",
			VAT:                       "{tax}",
			NetAmount:                 "Nettobedrag",
			VATAmount:                 "{tax}-bedrag",
			PreTaxAmount:              "Brutobedrag",
			Sum:                       "TOTAAL",
			PaymentMethod:             "Betaalmethode",
			PaymentDate:               "Betaaldatum",
			VATRate:                   "{tax}-tarief",
			Net:                       "Netto",
			PreTax:                    "Bruto",
			Total:                     "Totaal",
			ToPay:                     "Te betalen",
			Paid:                      "Betaald",
			LeftToPay:                 "Nog te betalen",
			AmountInWords:             "Bedrag in woorden",
			PersonAuthorizedToReceive: "Persoon bevoegd tot ontvangst",
			PersonAuthorizedToIssue:   "Persoon bevoegd tot uitgifte",
			Description:               "Omschrijving",
			Qty:                       "Aantal",
			UnitPrice:                 "Prijs per eenheid",
			Tax:                       "{tax}",
			LineAmount:                "Bedrag",
			Subtotal:                  "Subtotaal",
			TotalExcludingTax:         "Totaal exclusief {tax}",
			AmountDue:                 "Verschuldigd bedrag",
			Due:                       "te betalen vóór",
			PayOnline:                 "Online betalen",
			Page:                      "Pagina {page} van {pages}",
			CreatedWith:               "Gemaakt met",
			Notes:                     "Opmerkingen",
		},
	},
}
