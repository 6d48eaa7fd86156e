package handlers

import (
	"travelnest/internal/repos"
	"travelnest/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PackageHandler *PackageHandler
	InquiryHandler *InquiryHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	pkgRepo := repos.NewPackageRepo(db)
	inqRepo := repos.NewInquiryRepo(db)

	catalogSvc := services.NewCatalogService(pkgRepo)
	inquirySvc := services.NewInquiryService(inqRepo)

	return &Deps{
		PackageHandler: &PackageHandler{Catalog: catalogSvc},
		InquiryHandler: &InquiryHandler{Inquiries: inquirySvc},
	}
}
