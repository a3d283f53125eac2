package domain

import (
	"context"
	"errors"
)

var ErrLogradouroNotFound = errors.New("logradouro not found")

// Logradouro is a postal address owned by exactly one cliente. The owning
// cliente is referenced by id only; there is no back pointer to serialize.
type Logradouro struct {
	ID             int    `json:"id"`
	NomeLogradouro string `json:"nomeLogradouro"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	CEP            string `json:"cep"`
	ClienteID      int    `json:"clienteId"`
}

type LogradouroSaveRequest struct {
	ID             int    `json:"id"`
	NomeLogradouro string `json:"nomeLogradouro"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	CEP            string `json:"cep"`
	ClienteID      int    `json:"clienteId" validate:"required,gt=0"`
}

type LogradouroRepository interface {
	Add(ctx context.Context, logradouro *Logradouro) error
	GetByID(ctx context.Context, id int) (*Logradouro, error)
	GetAll(ctx context.Context) ([]*Logradouro, error)
	GetByClienteID(ctx context.Context, clienteID int) ([]*Logradouro, error)
	Update(ctx context.Context, logradouro *Logradouro) error
	Delete(ctx context.Context, id int) (bool, error)
}

type LogradouroService interface {
	Add(ctx context.Context, req LogradouroSaveRequest) (*Logradouro, error)
	GetByID(ctx context.Context, id int) (*Logradouro, error)
	GetAll(ctx context.Context) ([]*Logradouro, error)
	GetByClienteID(ctx context.Context, clienteID int) ([]*Logradouro, error)
	Update(ctx context.Context, req LogradouroSaveRequest) error
	Delete(ctx context.Context, id int) error
}
