package postgres

import (
	"context"
	"errors"
	"fmt"

	"clienteapi/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClienteRepository struct {
	db *pgxpool.Pool
}

func NewClienteRepository(db *pgxpool.Pool) domain.ClienteRepository {
	return &ClienteRepository{db: db}
}

func (r *ClienteRepository) Add(ctx context.Context, cliente *domain.Cliente) error {
	query := `
		INSERT INTO clientes (nome, email, logotipo)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		cliente.Nome,
		cliente.Email,
		cliente.Logotipo,
	).Scan(&cliente.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyTaken
		}
		return fmt.Errorf("failed to insert cliente: %w", err)
	}

	return nil
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int) (*domain.Cliente, error) {
	query := `SELECT id, nome, email, logotipo FROM clientes WHERE id = $1`

	var cliente domain.Cliente
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cliente.ID,
		&cliente.Nome,
		&cliente.Email,
		&cliente.Logotipo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, err
	}

	logradouros, err := r.logradourosFor(ctx, id)
	if err != nil {
		return nil, err
	}
	cliente.Logradouros = logradouros

	return &cliente, nil
}

func (r *ClienteRepository) GetAll(ctx context.Context) ([]*domain.Cliente, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, email, logotipo FROM clientes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*domain.Cliente
	byID := make(map[int]*domain.Cliente)
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Logotipo); err != nil {
			return nil, fmt.Errorf("failed to scan cliente: %w", err)
		}
		clientes = append(clientes, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lrows, err := r.db.Query(ctx, `
		SELECT id, nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id
		FROM logradouros
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query logradouros: %w", err)
	}
	defer lrows.Close()

	for lrows.Next() {
		var l domain.Logradouro
		if err := scanLogradouro(lrows, &l); err != nil {
			return nil, err
		}
		if c, ok := byID[l.ClienteID]; ok {
			c.Logradouros = append(c.Logradouros, l)
		}
	}
	if err := lrows.Err(); err != nil {
		return nil, err
	}

	return clientes, nil
}

// Update overwrites the mutable columns of the matching row. A missing id is
// a silent no-op; existence enforcement lives in the service.
func (r *ClienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $1, email = $2, logotipo = $3
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query,
		cliente.Nome,
		cliente.Email,
		cliente.Logotipo,
		cliente.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyTaken
		}
		return fmt.Errorf("failed to update cliente: %w", err)
	}

	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SearchByName delegates partial-name matching to the get_clientes_by_name
// function installed by the migrations.
func (r *ClienteRepository) SearchByName(ctx context.Context, nome string) ([]*domain.Cliente, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, email, logotipo FROM get_clientes_by_name($1)`, nome)
	if err != nil {
		return nil, fmt.Errorf("failed to search clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*domain.Cliente
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Logotipo); err != nil {
			return nil, fmt.Errorf("failed to scan cliente: %w", err)
		}
		clientes = append(clientes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clientes, nil
}

func (r *ClienteRepository) logradourosFor(ctx context.Context, clienteID int) ([]domain.Logradouro, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id
		FROM logradouros
		WHERE cliente_id = $1
	`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query logradouros: %w", err)
	}
	defer rows.Close()

	var logradouros []domain.Logradouro
	for rows.Next() {
		var l domain.Logradouro
		if err := scanLogradouro(rows, &l); err != nil {
			return nil, err
		}
		logradouros = append(logradouros, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logradouros, nil
}

func scanLogradouro(row pgx.Row, l *domain.Logradouro) error {
	if err := row.Scan(
		&l.ID,
		&l.NomeLogradouro,
		&l.Numero,
		&l.Complemento,
		&l.Bairro,
		&l.Cidade,
		&l.Estado,
		&l.CEP,
		&l.ClienteID,
	); err != nil {
		return fmt.Errorf("failed to scan logradouro: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
