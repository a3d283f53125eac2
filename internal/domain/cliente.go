// Package domain
package domain

import (
	"context"
	"errors"
)

var (
	ErrClienteNotFound   = errors.New("cliente not found")
	ErrEmailAlreadyTaken = errors.New("email already taken")
)

type Cliente struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Logotipo string `json:"logotipo"`

	// Loaded for completeness but never serialized, so a cliente
	// payload cannot drag its logradouros (and their back reference)
	// into the JSON output.
	Logradouros []Logradouro `json:"-"`
}

type ClienteSaveRequest struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email" validate:"omitempty,email"`
	Logotipo string `json:"logotipo"`
}

type ClienteRepository interface {
	Add(ctx context.Context, cliente *Cliente) error
	GetByID(ctx context.Context, id int) (*Cliente, error)
	GetAll(ctx context.Context) ([]*Cliente, error)
	Update(ctx context.Context, cliente *Cliente) error
	Delete(ctx context.Context, id int) (bool, error)
	SearchByName(ctx context.Context, nome string) ([]*Cliente, error)
}

type ClienteService interface {
	Add(ctx context.Context, req ClienteSaveRequest) (*Cliente, error)
	GetByID(ctx context.Context, id int) (*Cliente, error)
	GetAll(ctx context.Context) ([]*Cliente, error)
	Update(ctx context.Context, req ClienteSaveRequest) error
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, nome string) ([]*Cliente, error)
}
