package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
)

type customerRepository struct {
	storage *Storage
}

const customerColumns = `id, name, email, phone_number, birthday, interest, agree_to_sms, created_at`

func (r *customerRepository) Create(ctx context.Context, c model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, email, email_key, phone_number, birthday, interest, agree_to_sms)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		c.Name,
		c.Email,
		model.EmailKey(c.Email),
		c.PhoneNumber,
		c.Birthday,
		c.Interest,
		c.AgreeToSms,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", mapError(err))
	}
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE email_key=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, model.EmailKey(email)))
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE phone_number=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, phone))
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Birthday, &c.Interest, &c.AgreeToSms, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}
