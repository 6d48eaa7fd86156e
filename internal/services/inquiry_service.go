package services

import (
	"travelnest/internal/domain"
	"travelnest/internal/repos"
)

type InquiryService struct {
	Inquiries *repos.InquiryRepo
}

func NewInquiryService(inquiries *repos.InquiryRepo) *InquiryService {
	return &InquiryService{Inquiries: inquiries}
}

func (s *InquiryService) Create(in domain.InquiryInput) (domain.Inquiry, error) {
	return s.Inquiries.Create(in)
}
