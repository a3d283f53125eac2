// Package logradouro
package logradouro

import (
	"context"

	"clienteapi/internal/domain"
)

type Service struct {
	repo     domain.LogradouroRepository
	clientes domain.ClienteRepository
}

func NewService(repo domain.LogradouroRepository, clientes domain.ClienteRepository) domain.LogradouroService {
	return &Service{repo: repo, clientes: clientes}
}

// Add refuses to attach a logradouro to a cliente that does not exist.
func (s *Service) Add(ctx context.Context, req domain.LogradouroSaveRequest) (*domain.Logradouro, error) {
	if _, err := s.clientes.GetByID(ctx, req.ClienteID); err != nil {
		return nil, err
	}

	logradouro := &domain.Logradouro{
		NomeLogradouro: req.NomeLogradouro,
		Numero:         req.Numero,
		Complemento:    req.Complemento,
		Bairro:         req.Bairro,
		Cidade:         req.Cidade,
		Estado:         req.Estado,
		CEP:            req.CEP,
		ClienteID:      req.ClienteID,
	}

	if err := s.repo.Add(ctx, logradouro); err != nil {
		return nil, err
	}

	return logradouro, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Logradouro, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Logradouro, error) {
	return s.repo.GetAll(ctx)
}

// GetByClienteID checks the cliente exists first; an existing cliente with no
// logradouros yields an empty result, not an error.
func (s *Service) GetByClienteID(ctx context.Context, clienteID int) ([]*domain.Logradouro, error) {
	if _, err := s.clientes.GetByID(ctx, clienteID); err != nil {
		return nil, err
	}
	return s.repo.GetByClienteID(ctx, clienteID)
}

// Update merges every descriptive field plus the owning cliente onto the
// stored record. Reassignment to another cliente is only allowed when the
// new cliente exists; on failure the stored record is left untouched.
func (s *Service) Update(ctx context.Context, req domain.LogradouroSaveRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.ClienteID != req.ClienteID {
		if _, err := s.clientes.GetByID(ctx, req.ClienteID); err != nil {
			return err
		}
	}

	existing.NomeLogradouro = req.NomeLogradouro
	existing.Numero = req.Numero
	existing.Complemento = req.Complemento
	existing.Bairro = req.Bairro
	existing.Cidade = req.Cidade
	existing.Estado = req.Estado
	existing.CEP = req.CEP
	existing.ClienteID = req.ClienteID

	return s.repo.Update(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrLogradouroNotFound
	}
	return nil
}
