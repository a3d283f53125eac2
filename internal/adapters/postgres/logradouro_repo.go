package postgres

import (
	"context"
	"errors"
	"fmt"

	"clienteapi/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LogradouroRepository struct {
	db *pgxpool.Pool
}

func NewLogradouroRepository(db *pgxpool.Pool) domain.LogradouroRepository {
	return &LogradouroRepository{db: db}
}

func (r *LogradouroRepository) Add(ctx context.Context, logradouro *domain.Logradouro) error {
	query := `
		INSERT INTO logradouros (nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		logradouro.NomeLogradouro,
		logradouro.Numero,
		logradouro.Complemento,
		logradouro.Bairro,
		logradouro.Cidade,
		logradouro.Estado,
		logradouro.CEP,
		logradouro.ClienteID,
	).Scan(&logradouro.ID)
	if err != nil {
		return fmt.Errorf("failed to insert logradouro: %w", err)
	}

	return nil
}

func (r *LogradouroRepository) GetByID(ctx context.Context, id int) (*domain.Logradouro, error) {
	query := `
		SELECT id, nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id
		FROM logradouros
		WHERE id = $1
	`

	var l domain.Logradouro
	if err := scanLogradouro(r.db.QueryRow(ctx, query, id), &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLogradouroNotFound
		}
		return nil, err
	}

	return &l, nil
}

func (r *LogradouroRepository) GetAll(ctx context.Context) ([]*domain.Logradouro, error) {
	return r.query(ctx, `
		SELECT id, nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id
		FROM logradouros
	`)
}

// GetByClienteID does not check that the cliente exists; that check is the
// service's responsibility.
func (r *LogradouroRepository) GetByClienteID(ctx context.Context, clienteID int) ([]*domain.Logradouro, error) {
	return r.query(ctx, `
		SELECT id, nome_logradouro, numero, complemento, bairro, cidade, estado, cep, cliente_id
		FROM logradouros
		WHERE cliente_id = $1
	`, clienteID)
}

func (r *LogradouroRepository) Update(ctx context.Context, logradouro *domain.Logradouro) error {
	query := `
		UPDATE logradouros
		SET nome_logradouro = $1, numero = $2, complemento = $3, bairro = $4,
		    cidade = $5, estado = $6, cep = $7, cliente_id = $8
		WHERE id = $9
	`

	_, err := r.db.Exec(ctx, query,
		logradouro.NomeLogradouro,
		logradouro.Numero,
		logradouro.Complemento,
		logradouro.Bairro,
		logradouro.Cidade,
		logradouro.Estado,
		logradouro.CEP,
		logradouro.ClienteID,
		logradouro.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update logradouro: %w", err)
	}

	return nil
}

func (r *LogradouroRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM logradouros WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete logradouro: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LogradouroRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Logradouro, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logradouros: %w", err)
	}
	defer rows.Close()

	var logradouros []*domain.Logradouro
	for rows.Next() {
		var l domain.Logradouro
		if err := scanLogradouro(rows, &l); err != nil {
			return nil, err
		}
		logradouros = append(logradouros, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logradouros, nil
}
