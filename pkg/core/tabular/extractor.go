// Package tabular reads consumer-supplied financial statements (CSV or Excel)
// and resolves named scalar quantities from them by fuzzy label matching. It
// is read-only and signals every failure as a typed error; nothing here
// panics past the package boundary.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat marks a file extension outside .csv/.xlsx/.xls.
	ErrUnsupportedFormat = errors.New("unsupported file format, use .csv or .xlsx")
	// ErrColumnsNotFound marks a file whose headers match neither the label
	// nor the amount synonym set.
	ErrColumnsNotFound = errors.New("could not identify the metric or amount columns")
	// ErrRequiredFieldMissing marks a statement with no usable revenue row.
	ErrRequiredFieldMissing = errors.New("could not locate a row labeled 'Revenue' or 'Sales'")
)

// Header synonym sets, matched case-insensitively by substring. The first
// column (in declared order) matching each set wins.
var (
	labelColumnSynonyms  = []string{"metric", "item", "description", "particulars", "details"}
	amountColumnSynonyms = []string{"amount", "value", "ngn", "total", "cost"}
)

// Keyword alternatives per target quantity, in priority order.
var (
	revenueKeywords       = []string{"total revenue", "revenue", "sales"}
	costOfSalesKeywords   = []string{"cost of sales", "cost of goods", "cogs"}
	opexKeywords          = []string{"operating expenses", "opex", "overheads"}
	profitTaxPaidKeywords = []string{"profit tax paid", "cit paid", "tax paid"}
	outputVATKeywords     = []string{"output vat", "vat collected", "vat on sales"}
	inputVATKeywords      = []string{"input vat", "vat paid on inputs", "vat on purchases"}
)

// Record is one (label, amount) row of the statement.
type Record struct {
	Label  string
	Amount string
}

// Statement is the parsed tabular file: the resolved column names and the
// ordered (label, amount) rows beneath them.
type Statement struct {
	LabelColumn  string
	AmountColumn string
	Records      []Record
}

// Scalars are the named quantities derived from a statement. Unmatched
// quantities default to zero, except revenue, whose absence fails extraction.
type Scalars struct {
	Revenue           float64
	CostOfSales       float64
	OperatingExpenses float64
	ProfitTaxPaid     float64
	OutputVAT         float64
	InputVAT          float64
}

// Extract opens a tabular file and resolves the key financial scalars.
func Extract(path string) (*Statement, Scalars, error) {
	stmt, err := Load(path)
	if err != nil {
		return nil, Scalars{}, err
	}

	var s Scalars
	if s.Revenue, err = stmt.Resolve(revenueKeywords); err != nil {
		return nil, Scalars{}, err
	}
	if s.Revenue == 0 {
		return nil, Scalars{}, ErrRequiredFieldMissing
	}
	if s.CostOfSales, err = stmt.Resolve(costOfSalesKeywords); err != nil {
		return nil, Scalars{}, err
	}
	if s.OperatingExpenses, err = stmt.Resolve(opexKeywords); err != nil {
		return nil, Scalars{}, err
	}
	if s.ProfitTaxPaid, err = stmt.Resolve(profitTaxPaidKeywords); err != nil {
		return nil, Scalars{}, err
	}
	if s.OutputVAT, err = stmt.Resolve(outputVATKeywords); err != nil {
		return nil, Scalars{}, err
	}
	if s.InputVAT, err = stmt.Resolve(inputVATKeywords); err != nil {
		return nil, Scalars{}, err
	}
	return stmt, s, nil
}

// Load reads the file and resolves the label and amount columns.
func Load(path string) (*Statement, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xls":
		rows, err = readExcel(path)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrColumnsNotFound
	}

	header := rows[0]
	labelIdx := firstMatching(header, labelColumnSynonyms)
	amountIdx := firstMatching(header, amountColumnSynonyms)
	if labelIdx < 0 || amountIdx < 0 {
		return nil, ErrColumnsNotFound
	}

	stmt := &Statement{
		LabelColumn:  header[labelIdx],
		AmountColumn: header[amountIdx],
	}
	for _, row := range rows[1:] {
		if labelIdx >= len(row) || amountIdx >= len(row) {
			continue
		}
		stmt.Records = append(stmt.Records, Record{
			Label:  strings.TrimSpace(row[labelIdx]),
			Amount: strings.TrimSpace(row[amountIdx]),
		})
	}
	return stmt, nil
}

// Resolve scans labels for each keyword in priority order and returns the
// first matching row's amount. A quantity with no matching row is 0.
func (s *Statement) Resolve(keywords []string) (float64, error) {
	for _, kw := range keywords {
		for _, rec := range s.Records {
			if strings.Contains(strings.ToLower(rec.Label), kw) {
				v, err := parseAmount(rec.Amount)
				if err != nil {
					return 0, fmt.Errorf("parse amount for row %q: %w", rec.Label, err)
				}
				return v, nil
			}
		}
	}
	return 0, nil
}

// String renders the statement as the labeled table sent to the model.
func (s *Statement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %s\n", s.LabelColumn, s.AmountColumn)
	for _, rec := range s.Records {
		fmt.Fprintf(&b, "%-40s %s\n", rec.Label, rec.Amount)
	}
	return b.String()
}

func firstMatching(header []string, synonyms []string) int {
	for i, col := range header {
		lower := strings.ToLower(col)
		for _, syn := range synonyms {
			if strings.Contains(lower, syn) {
				return i
			}
		}
	}
	return -1
}

func parseAmount(cell string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "₦", "", " ", "").Replace(cell)
	if cleaned == "" {
		return 0, nil
	}
	return strconv.ParseFloat(cleaned, 64)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrColumnsNotFound
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
