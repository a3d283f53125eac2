// Package cliente
package cliente

import (
	"context"

	"clienteapi/internal/domain"
)

type Service struct {
	repo domain.ClienteRepository
}

func NewService(repo domain.ClienteRepository) domain.ClienteService {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, req domain.ClienteSaveRequest) (*domain.Cliente, error) {
	cliente := &domain.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Logotipo: req.Logotipo,
	}

	// Email uniqueness is enforced by the store; a violation surfaces as
	// domain.ErrEmailAlreadyTaken from the repository.
	if err := s.repo.Add(ctx, cliente); err != nil {
		return nil, err
	}

	return cliente, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Cliente, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Cliente, error) {
	return s.repo.GetAll(ctx)
}

// Update is a read-modify-write: only nome, email and logotipo are copied
// onto the stored record, so an update can never touch anything else the
// cliente owns.
func (s *Service) Update(ctx context.Context, req domain.ClienteSaveRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.Nome = req.Nome
	existing.Email = req.Email
	existing.Logotipo = req.Logotipo

	return s.repo.Update(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrClienteNotFound
	}
	return nil
}

func (s *Service) SearchByName(ctx context.Context, nome string) ([]*domain.Cliente, error) {
	return s.repo.SearchByName(ctx, nome)
}
