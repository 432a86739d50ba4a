package models

import "encoding/xml"

// NFC-e document structure, NF-e layout 4.00. Field order matters: the
// marshaled element order must follow the fiscal layout.

// NFe is the root element of a consumer fiscal receipt (modelo 65).
type NFe struct {
	XMLName xml.Name `xml:"NFe"`
	Xmlns   string   `xml:"xmlns,attr"`
	InfNFe  InfNFe   `xml:"infNFe"`
}

// InfNFe carries the document body.
type InfNFe struct {
	Versao string     `xml:"versao,attr"`
	Ide    NFeIde     `xml:"ide"`
	Emit   NFeEmit    `xml:"emit"`
	Dest   *NFeDest   `xml:"dest,omitempty"`
	Det    []NFeDet   `xml:"det"`
	Total  NFeTotal   `xml:"total"`
	Pag    NFePag     `xml:"pag"`
}

// NFeIde is the document identification block.
type NFeIde struct {
	CUF   string `xml:"cUF"`   // jurisdiction code
	NatOp string `xml:"natOp"` // operation nature
	Mod   string `xml:"mod"`   // 65 = NFC-e
	Serie string `xml:"serie"`
	NNF   string `xml:"nNF"`   // sequence number
	DhEmi string `xml:"dhEmi"` // emission timestamp, ISO-8601
}

// NFeEmit is the issuer block.
type NFeEmit struct {
	CNPJ  string `xml:"CNPJ"` // digits only
	XNome string `xml:"xNome"`
}

// NFeDest is the optional recipient block.
type NFeDest struct {
	CPF string `xml:"CPF"` // digits only
}

// NFeDet is one line item.
type NFeDet struct {
	NItem string  `xml:"nItem,attr"`
	Prod  NFeProd `xml:"prod"`
}

// NFeProd describes the product of one line item.
type NFeProd struct {
	CProd   string `xml:"cProd"`
	XProd   string `xml:"xProd"`
	NCM     string `xml:"NCM"`
	CFOP    string `xml:"CFOP"`
	UCom    string `xml:"uCom"`
	QCom    string `xml:"qCom"`    // quantity, 4 decimals
	VUnCom  string `xml:"vUnCom"`  // unit price, 10 decimals
	VProd   string `xml:"vProd"`   // line total, 2 decimals
	UTrib   string `xml:"uTrib"`
	QTrib   string `xml:"qTrib"`
	VUnTrib string `xml:"vUnTrib"`
	IndTot  string `xml:"indTot"`
}

// NFeTotal wraps the tax totals block.
type NFeTotal struct {
	ICMSTot NFeICMSTot `xml:"ICMSTot"`
}

// NFeICMSTot carries the document totals.
type NFeICMSTot struct {
	VBC   string `xml:"vBC"`
	VICMS string `xml:"vICMS"`
	VProd string `xml:"vProd"`
	VNF   string `xml:"vNF"`
}

// NFePag is the payment block.
type NFePag struct {
	DetPag NFeDetPag `xml:"detPag"`
}

// NFeDetPag is one payment detail entry.
type NFeDetPag struct {
	TPag string `xml:"tPag"`
	VPag string `xml:"vPag"`
}
