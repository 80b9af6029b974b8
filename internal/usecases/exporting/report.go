package exporting

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	reportTitle        = "FRONTROW INVOICE SYSTEM REPORT"
	generatedAtLayout  = "1/2/2006, 3:04:05 PM"
	sectionDividerSize = 50
	storeDividerSize   = 30

	// casas decimais suficientes para representar qualquer float64 sem perda
	exactFloatDigits = 1074
)

var csvHeader = []string{
	"Store Name",
	"Client Name",
	"Domain",
	"Total Orders",
	"Total Revenue",
	"Average Order Value",
	"Billing Status",
	"Last Invoice Date",
	"Billing Frequency",
	"Notes",
}

var printer = message.NewPrinter(language.AmericanEnglish)

// ToCSV serializa as lojas com todos os campos entre aspas. Vírgulas nas
// notas viram ponto e vírgula e aspas internas são duplicadas.
func ToCSV(stores []domain.StoreMetrics) string {
	lines := make([]string, 0, len(stores)+1)
	lines = append(lines, csvLine(csvHeader))

	for _, store := range stores {
		lines = append(lines, csvLine([]string{
			store.Name,
			store.ClientNameOrEmpty(),
			store.Domain,
			strconv.Itoa(store.Metrics.TotalOrders),
			plainCurrency(store.Metrics.TotalRevenue),
			plainCurrency(store.Metrics.AverageOrderValue),
			store.BillingStatus,
			store.LastInvoiceDateOrEmpty(),
			string(store.BillingFrequency),
			strings.ReplaceAll(store.Notes, ",", ";"),
		}))
	}

	return strings.Join(lines, "\n")
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ToTextReport gera o relatório em texto. A seção GLOBAL SUMMARY só aparece
// quando global não é nil.
func ToTextReport(stores []domain.StoreMetrics, global *domain.GlobalMetrics, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n")
	b.WriteString("Generated: " + generatedAt.Format(generatedAtLayout) + "\n")
	if global != nil {
		b.WriteString("Date Range: " + global.DateRange.String() + "\n\n")
	} else {
		b.WriteString("Date Range: N/A\n\n")
	}

	if global != nil {
		b.WriteString("GLOBAL SUMMARY\n")
		b.WriteString("Total Stores: " + strconv.Itoa(global.TotalStores) + "\n")
		b.WriteString("Total Orders: " + groupedInt(global.TotalOrders) + "\n")
		b.WriteString("Total Revenue: " + groupedCurrency(global.TotalRevenue) + "\n")
		b.WriteString("Average Order Value: " + groupedCurrency(global.AverageOrderValue) + "\n\n")
	}

	b.WriteString("STORE DETAILS\n")
	b.WriteString(strings.Repeat("=", sectionDividerSize) + "\n\n")

	for _, store := range stores {
		client := store.ClientNameOrEmpty()
		if client == "" {
			client = "N/A"
		}

		b.WriteString(strings.ToUpper(store.Name) + "\n")
		b.WriteString("Client: " + client + "\n")
		b.WriteString("Domain: " + store.Domain + "\n")
		b.WriteString("Orders: " + groupedInt(store.Metrics.TotalOrders) + "\n")
		b.WriteString("Revenue: " + groupedCurrency(store.Metrics.TotalRevenue) + "\n")
		b.WriteString("AOV: " + groupedCurrency(store.Metrics.AverageOrderValue) + "\n")
		b.WriteString("Status: " + store.BillingStatus + "\n")
		b.WriteString("Billing: " + string(store.BillingFrequency) + "\n")
		if store.Notes != "" {
			b.WriteString("Notes: " + store.Notes + "\n")
		}
		b.WriteString("\n" + strings.Repeat("-", storeDividerSize) + "\n\n")
	}

	return b.String()
}

// plainCurrency formata como $1234.50
func plainCurrency(amount float64) string {
	return "$" + fixedCents(amount).StringFixed(2)
}

// groupedCurrency formata como $1,234.50
func groupedCurrency(amount float64) string {
	return printer.Sprintf("$%.2f", fixedCents(amount).InexactFloat64())
}

// fixedCents arredonda para centavos a partir do valor binário exato do
// float, como toFixed(2): 1.005 vira 1.00 e 0.125 vira 0.13.
func fixedCents(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}

	exact := new(big.Float).SetFloat64(amount).Text('f', exactFloatDigits)
	return decimal.RequireFromString(exact).Round(2)
}

func groupedInt(value int) string {
	return printer.Sprintf("%d", value)
}
