package services

import (
	"context"

	dto "taskboard.com/taskboard/internal/data_models"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type ContactService struct {
	repo *repository.ContactRepository
}

func NewContactService(repo *repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Create(ctx context.Context, req *dto.CreateContactRequest) (*model.Contact, error) {
	return s.repo.Create(ctx, &model.Contact{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
	})
}
