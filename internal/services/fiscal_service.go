package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"

	"github.com/shopspring/decimal"
)

// Custom Errors
var (
	// ErrSaleItemNotFound means the sold product is no longer on the menu, so
	// no priced line item can be built for the document.
	ErrSaleItemNotFound = errors.New("product of this sale is not on the current menu")

	// ErrNoSalesForDay is returned by batch generation when the requested
	// calendar day has no sales.
	ErrNoSalesForDay = errors.New("no sales registered for the requested day")
)

// Fiscal constants of the NFC-e layout the pizzeria emits. cUF is the
// issuer's jurisdiction; modelo 65 is the consumer receipt.
const (
	fiscalJurisdiction = "50"
	fiscalOperation    = "VENDA"
	fiscalModel        = "65"
	fiscalSeries       = "1"
	fiscalNCM          = "21069090"
	fiscalCFOP         = "5102"
	fiscalUnit         = "UN"
	fiscalPaymentCash  = "01"
)

// --- FiscalService Interface ---

// FiscalService renders NFC-e XML documents from sale records, individually
// or bundled per calendar day into a zip archive.
type FiscalService interface {
	// GenerateNFCe renders the document for the sale at the given log position.
	GenerateNFCe(saleID int) ([]byte, error)
	// GenerateDailyArchive bundles one document per sale of the given
	// calendar day. Sales whose product left the menu are skipped. Returns
	// the archive and the number of documents in it.
	GenerateDailyArchive(day time.Time) ([]byte, int, error)
}

type fiscalService struct {
	store *store.Store
}

// NewFiscalService creates a new FiscalService over the table store.
func NewFiscalService(st *store.Store) FiscalService {
	return &fiscalService{store: st}
}

func (s *fiscalService) GenerateNFCe(saleID int) ([]byte, error) {
	tables := s.store.Tables()
	if saleID < 0 || saleID >= len(tables.Sales) {
		return nil, fmt.Errorf("%w: sale %d", ErrNotFound, saleID)
	}
	sale := tables.Sales[saleID]

	item, ok := menuItemByName(tables.Menu, sale.Product)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSaleItemNotFound, sale.Product)
	}

	doc := buildNFCe(sale, item, s.store.Company())
	return marshalNFCe(doc)
}

func (s *fiscalService) GenerateDailyArchive(day time.Time) ([]byte, int, error) {
	tables := s.store.Tables()
	company := s.store.Company()

	y, m, d := day.Date()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	count := 0
	for _, sale := range tables.Sales {
		sy, sm, sd := sale.Time.Date()
		if sy != y || sm != m || sd != d {
			continue
		}
		item, ok := menuItemByName(tables.Menu, sale.Product)
		if !ok {
			continue
		}
		payload, err := marshalNFCe(buildNFCe(sale, item, company))
		if err != nil {
			return nil, 0, err
		}
		entry, err := zw.Create(fmt.Sprintf("nfce_%d.xml", sale.ID))
		if err != nil {
			return nil, 0, err
		}
		if _, err := entry.Write(payload); err != nil {
			return nil, 0, err
		}
		count++
	}
	if count == 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoSalesForDay, day.Format(store.DateLayout))
	}
	if err := zw.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), count, nil
}

func menuItemByName(menu []models.MenuItem, name string) (models.MenuItem, bool) {
	for _, item := range menu {
		if item.Name == name {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// buildNFCe assembles the document for a single-line sale. The line total is
// quantity x unit price rounded to 2 decimals; the document total is the sum
// of line totals.
func buildNFCe(sale models.SaleRecord, item models.MenuItem, company models.CompanyProfile) models.NFe {
	quantity := decimal.NewFromInt(int64(sale.Quantity))
	unitPrice := decimal.NewFromFloat(item.Price)
	lineTotal := quantity.Mul(unitPrice).Round(2)
	docTotal := lineTotal

	det := models.NFeDet{
		NItem: "1",
		Prod: models.NFeProd{
			CProd:   "P1",
			XProd:   item.Name,
			NCM:     fiscalNCM,
			CFOP:    fiscalCFOP,
			UCom:    fiscalUnit,
			QCom:    quantity.StringFixed(4),
			VUnCom:  unitPrice.StringFixed(10),
			VProd:   lineTotal.StringFixed(2),
			UTrib:   fiscalUnit,
			QTrib:   quantity.StringFixed(4),
			VUnTrib: unitPrice.StringFixed(10),
			IndTot:  "1",
		},
	}

	doc := models.NFe{
		Xmlns: "http://www.portalfiscal.inf.br/nfe",
		InfNFe: models.InfNFe{
			Versao: "4.00",
			Ide: models.NFeIde{
				CUF:   fiscalJurisdiction,
				NatOp: fiscalOperation,
				Mod:   fiscalModel,
				Serie: fiscalSeries,
				NNF:   strconv.Itoa(sale.ID + 1),
				DhEmi: sale.Time.Format(time.RFC3339),
			},
			Emit: models.NFeEmit{
				CNPJ:  digitsOnly(company.TaxID),
				XNome: company.LegalName,
			},
			Det: []models.NFeDet{det},
			Total: models.NFeTotal{
				ICMSTot: models.NFeICMSTot{
					VBC:   "0.00",
					VICMS: "0.00",
					VProd: docTotal.StringFixed(2),
					VNF:   docTotal.StringFixed(2),
				},
			},
			Pag: models.NFePag{
				DetPag: models.NFeDetPag{
					TPag: fiscalPaymentCash,
					VPag: docTotal.StringFixed(2),
				},
			},
		},
	}
	if taxID := digitsOnly(sale.CustomerTaxID); taxID != "" {
		doc.InfNFe.Dest = &models.NFeDest{CPF: taxID}
	}
	return doc
}

func marshalNFCe(doc models.NFe) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling NFC-e: %w", err)
	}
	return append([]byte(`<?xml version="1.0" encoding="utf-8"?>`+"\n"), body...), nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
