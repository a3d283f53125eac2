package logradouro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clienteapi/internal/domain"
)

type fakeClienteRepo struct {
	clientes map[int]*domain.Cliente
}

func (r *fakeClienteRepo) Add(context.Context, *domain.Cliente) error { return nil }

func (r *fakeClienteRepo) GetByID(_ context.Context, id int) (*domain.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrClienteNotFound
	}
	return c, nil
}

func (r *fakeClienteRepo) GetAll(context.Context) ([]*domain.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(context.Context, *domain.Cliente) error     { return nil }
func (r *fakeClienteRepo) Delete(context.Context, int) (bool, error)         { return false, nil }
func (r *fakeClienteRepo) SearchByName(context.Context, string) ([]*domain.Cliente, error) {
	return nil, nil
}

type fakeLogradouroRepo struct {
	nextID      int
	logradouros map[int]*domain.Logradouro
}

func newFakeLogradouroRepo() *fakeLogradouroRepo {
	return &fakeLogradouroRepo{nextID: 1, logradouros: make(map[int]*domain.Logradouro)}
}

func (r *fakeLogradouroRepo) Add(_ context.Context, l *domain.Logradouro) error {
	l.ID = r.nextID
	r.nextID++
	copy := *l
	r.logradouros[copy.ID] = &copy
	return nil
}

func (r *fakeLogradouroRepo) GetByID(_ context.Context, id int) (*domain.Logradouro, error) {
	l, ok := r.logradouros[id]
	if !ok {
		return nil, domain.ErrLogradouroNotFound
	}
	copy := *l
	return &copy, nil
}

func (r *fakeLogradouroRepo) GetAll(context.Context) ([]*domain.Logradouro, error) {
	var out []*domain.Logradouro
	for _, l := range r.logradouros {
		copy := *l
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeLogradouroRepo) GetByClienteID(_ context.Context, clienteID int) ([]*domain.Logradouro, error) {
	var out []*domain.Logradouro
	for _, l := range r.logradouros {
		if l.ClienteID == clienteID {
			copy := *l
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeLogradouroRepo) Update(_ context.Context, l *domain.Logradouro) error {
	if _, ok := r.logradouros[l.ID]; !ok {
		return nil
	}
	copy := *l
	r.logradouros[copy.ID] = &copy
	return nil
}

func (r *fakeLogradouroRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := r.logradouros[id]; !ok {
		return false, nil
	}
	delete(r.logradouros, id)
	return true, nil
}

func setup() (*fakeLogradouroRepo, *fakeClienteRepo, domain.LogradouroService) {
	repo := newFakeLogradouroRepo()
	clientes := &fakeClienteRepo{clientes: map[int]*domain.Cliente{
		1: {ID: 1, Nome: "Ana"},
		2: {ID: 2, Nome: "Bruno"},
	}}
	return repo, clientes, NewService(repo, clientes)
}

func TestService_Add_ClienteMustExist(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setup()

	_, err := svc.Add(ctx, domain.LogradouroSaveRequest{Cidade: "Recife", ClienteID: 99})
	require.ErrorIs(t, err, domain.ErrClienteNotFound)
	assert.Empty(t, repo.logradouros, "no logradouro may be persisted for a missing cliente")

	created, err := svc.Add(ctx, domain.LogradouroSaveRequest{Cidade: "Recife", ClienteID: 1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1, created.ClienteID)
}

func TestService_Update_ReassignToMissingClienteKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	_, _, svc := setup()

	created, err := svc.Add(ctx, domain.LogradouroSaveRequest{Cidade: "Recife", ClienteID: 1})
	require.NoError(t, err)

	err = svc.Update(ctx, domain.LogradouroSaveRequest{ID: created.ID, Cidade: "Olinda", ClienteID: 99})
	require.ErrorIs(t, err, domain.ErrClienteNotFound)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClienteID, "failed reassignment must leave the original owner")
	assert.Equal(t, "Recife", stored.Cidade, "failed reassignment must not apply any field")
}

func TestService_Update_ReassignToExistingCliente(t *testing.T) {
	ctx := context.Background()
	_, _, svc := setup()

	created, err := svc.Add(ctx, domain.LogradouroSaveRequest{Cidade: "Recife", ClienteID: 1})
	require.NoError(t, err)

	err = svc.Update(ctx, domain.LogradouroSaveRequest{ID: created.ID, Cidade: "Olinda", ClienteID: 2})
	require.NoError(t, err)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ClienteID)
	assert.Equal(t, "Olinda", stored.Cidade)
}

func TestService_Update_NotFound(t *testing.T) {
	_, _, svc := setup()

	err := svc.Update(context.Background(), domain.LogradouroSaveRequest{ID: 42, ClienteID: 1})
	require.ErrorIs(t, err, domain.ErrLogradouroNotFound)
}

func TestService_GetByClienteID(t *testing.T) {
	ctx := context.Background()
	_, _, svc := setup()

	_, err := svc.GetByClienteID(ctx, 99)
	require.ErrorIs(t, err, domain.ErrClienteNotFound)

	// Existing cliente with no logradouros is an empty result, not an error.
	logradouros, err := svc.GetByClienteID(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, logradouros)
}

func TestService_Delete_NotFound(t *testing.T) {
	_, _, svc := setup()

	err := svc.Delete(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrLogradouroNotFound)
}
