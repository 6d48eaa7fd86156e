package services

import (
	"travelnest/internal/domain"
	"travelnest/internal/repos"
)

type CatalogService struct {
	Packages *repos.PackageRepo
}

func NewCatalogService(packages *repos.PackageRepo) *CatalogService {
	return &CatalogService{Packages: packages}
}

func (s *CatalogService) List(category string) ([]domain.Package, error) {
	return s.Packages.List(category)
}

func (s *CatalogService) Get(id int) (domain.Package, error) {
	return s.Packages.Get(id)
}

func (s *CatalogService) Create(in domain.PackageInput) (domain.Package, error) {
	return s.Packages.Create(in)
}
