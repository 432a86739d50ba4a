package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"

	"github.com/go-pdf/fpdf"
)

// --- Service Errors ---

var ErrNoSalesForPeriod = errors.New("no sales in the selected period")

// --- ExportService Interface ---

// ExportService regenerates the one-shot export artifacts on demand: a
// self-contained MySQL script of the core tables, a flat CSV of the sales
// log joined with the menu, and a printable PDF sales report. None of the
// outputs is ever read back or persisted.
type ExportService interface {
	SQLDump() []byte
	// CSVExport degrades to an empty result on any failure instead of
	// propagating the error.
	CSVExport() []byte
	// PDFReport renders the priced sales in [from, to) as a table, one page
	// header per document. Fails with ErrNoSalesForPeriod when the range
	// holds no priced sale.
	PDFReport(from, to time.Time) ([]byte, error)
}

type exportService struct {
	store *store.Store
}

// NewExportService creates a new ExportService over the table store.
func NewExportService(st *store.Store) ExportService {
	return &exportService{store: st}
}

func (s *exportService) SQLDump() []byte {
	t := s.store.Tables()
	var b strings.Builder

	b.WriteString("DROP TABLE IF EXISTS `cardapio`;\n")
	b.WriteString("CREATE TABLE `cardapio` (`Produto` varchar(255) NOT NULL, `Categoria` varchar(255) DEFAULT NULL, `Preco_Venda` decimal(10,2) DEFAULT NULL, `Custo_Unitario` decimal(10,2) DEFAULT NULL, PRIMARY KEY (`Produto`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;\n\n")
	for _, item := range t.Menu {
		fmt.Fprintf(&b, "INSERT INTO `cardapio` VALUES ('%s', '%s', %s, %s);\n",
			sqlEscape(item.Name), sqlEscape(item.Category), sqlNumber(item.Price), sqlNumber(item.Cost))
	}

	b.WriteString("\nDROP TABLE IF EXISTS `estoque`;\n")
	b.WriteString("CREATE TABLE `estoque` (`Produto` varchar(255) NOT NULL, `Quantidade_Estoque` int(11) DEFAULT NULL, PRIMARY KEY (`Produto`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;\n\n")
	for _, e := range t.Stock {
		fmt.Fprintf(&b, "INSERT INTO `estoque` VALUES ('%s', %d);\n", sqlEscape(e.Product), e.Quantity)
	}

	b.WriteString("\nDROP TABLE IF EXISTS `vendas`;\n")
	b.WriteString("CREATE TABLE `vendas` (`id` int(11) NOT NULL AUTO_INCREMENT, `Data` datetime DEFAULT NULL, `Produto` varchar(255) DEFAULT NULL, `Quantidade` int(11) DEFAULT NULL, `CPF_Cliente` varchar(20) DEFAULT NULL, PRIMARY KEY (`id`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;\n\n")
	for _, sale := range t.Sales {
		fmt.Fprintf(&b, "INSERT INTO `vendas` (`Data`, `Produto`, `Quantidade`, `CPF_Cliente`) VALUES ('%s', '%s', %d, '%s');\n",
			sale.Time.Format(store.TimeLayout), sqlEscape(sale.Product), sale.Quantity, sqlEscape(sale.CustomerTaxID))
	}

	return []byte(b.String())
}

func (s *exportService) CSVExport() []byte {
	t := s.store.Tables()

	byName := make(map[string]models.MenuItem, len(t.Menu))
	for _, item := range t.Menu {
		if _, ok := byName[item.Name]; !ok {
			byName[item.Name] = item
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Data", "Produto", "Quantidade", "CPF_Cliente", "Categoria", "Preco_Venda", "Custo_Unitario"}
	if err := w.Write(header); err != nil {
		return []byte{}
	}
	for _, sale := range t.Sales {
		row := []string{
			sale.Time.Format(store.TimeLayout),
			sale.Product,
			strconv.Itoa(sale.Quantity),
			sale.CustomerTaxID,
			"", "", "",
		}
		if item, ok := byName[sale.Product]; ok {
			row[4] = item.Category
			row[5] = strconv.FormatFloat(item.Price, 'f', -1, 64)
			row[6] = strconv.FormatFloat(item.Cost, 'f', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return []byte{}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return []byte{}
	}
	return buf.Bytes()
}

func (s *exportService) PDFReport(from, to time.Time) ([]byte, error) {
	t := s.store.Tables()
	company := s.store.Company()

	var rows []models.EnrichedSale
	for _, e := range enrichSales(t.Sales, t.Menu) {
		if e.Time.Before(from) || !e.Time.Before(to) {
			continue
		}
		rows = append(rows, e)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoSalesForPeriod,
			from.Format(store.DateLayout), to.Format(store.DateLayout))
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; product names and the title carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Vendas - "+company.TradeName), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Data", "1", 0, "", false, 0, "")
	pdf.CellFormat(80, 10, "Produto", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 10, "Quantidade", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 10, "Receita", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.CellFormat(40, 10, row.Time.Format(store.DateLayout), "1", 0, "", false, 0, "")
		pdf.CellFormat(80, 10, tr(row.Product), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 10, strconv.Itoa(row.Quantity), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("R$%.2f", row.Revenue), "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sales report: %w", err)
	}
	return buf.Bytes(), nil
}

// sqlEscape doubles embedded single quotes for embedding in a single-quoted
// SQL literal.
func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func sqlNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
