package models

// CompanyProfile holds the single-record company configuration used on fiscal
// documents. JSON tags match the legacy config_empresa.json keys so existing
// config files keep working.
type CompanyProfile struct {
	TradeName string `json:"nome_fantasia"`
	LegalName string `json:"razao_social"`
	TaxID     string `json:"cnpj"`
	Address   string `json:"endereco"`
	CityState string `json:"cidade_uf"`
	Phone     string `json:"telefone"`
}

// DefaultCompanyProfile is written when the configuration file is first created.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		TradeName: "Pizzaria Casa Velha",
		LegalName: "Pizzaria Casa Velha LTDA",
		TaxID:     "00.000.000/0001-00",
		Address:   "Rua das Pizzas, 123, Bairro Centro",
		CityState: "Sua Cidade - UF",
		Phone:     "(00) 00000-0000",
	}
}
