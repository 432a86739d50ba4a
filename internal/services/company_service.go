package services

import (
	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
)

// --- CompanyService Interface ---

// CompanyService manages the single-record company profile used on fiscal
// documents and reports.
type CompanyService interface {
	Get() models.CompanyProfile
	Update(profile models.CompanyProfile) (models.CompanyProfile, error)
}

type companyService struct {
	store *store.Store
}

// NewCompanyService creates a new CompanyService over the table store.
func NewCompanyService(st *store.Store) CompanyService {
	return &companyService{store: st}
}

func (s *companyService) Get() models.CompanyProfile {
	return s.store.Company()
}

func (s *companyService) Update(profile models.CompanyProfile) (models.CompanyProfile, error) {
	err := s.store.Update(func(_ *store.Tables, c *models.CompanyProfile) error {
		*c = profile
		return nil
	})
	if err != nil {
		return models.CompanyProfile{}, err
	}
	return profile, nil
}
