package hrapi

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-console/internal/domain"
)

type postgresEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEmployeeRepository builds the Postgres-backed repository.
func NewPostgresEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &postgresEmployeeRepository{pool: pool}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	var hireDate time.Time
	if err := row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.Department,
		&emp.Position,
		&emp.Salary,
		&hireDate,
		&emp.Status,
		&emp.Address,
	); err != nil {
		return nil, err
	}
	emp.HireDate = domain.DateOf(hireDate)
	return &emp, nil
}

func (r *postgresEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, department, position, salary, hire_date, status, address
        FROM employees ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func (r *postgresEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, department, position, salary, hire_date, status, address
        FROM employees WHERE id=$1`
	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func (r *postgresEmployeeRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM employees WHERE email=$1 AND id<>$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresEmployeeRepository) CountByDepartment(ctx context.Context, department string) (int, error) {
	const query = `SELECT COUNT(*) FROM employees WHERE department=$1`
	var count int
	err := r.pool.QueryRow(ctx, query, department).Scan(&count)
	return count, err
}

func (r *postgresEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (id, first_name, last_name, email, phone, department, position, salary, hire_date, status, address)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.pool.Exec(ctx, query,
		emp.ID,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Department,
		emp.Position,
		emp.Salary,
		emp.HireDate.Time(),
		emp.Status,
		emp.Address,
	)
	return err
}

func (r *postgresEmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET first_name=$1, last_name=$2, email=$3, phone=$4, department=$5, position=$6, salary=$7, hire_date=$8, status=$9, address=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Department,
		emp.Position,
		emp.Salary,
		emp.HireDate.Time(),
		emp.Status,
		emp.Address,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postgresEmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	return err
}

type postgresDepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDepartmentRepository builds the Postgres-backed repository.
func NewPostgresDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &postgresDepartmentRepository{pool: pool}
}

func (r *postgresDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = `SELECT id, name, manager, description FROM departments ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Manager, &dept.Description); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *postgresDepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	const query = `SELECT id, name, manager, description FROM departments WHERE id=$1`
	var dept domain.Department
	err := r.pool.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.Manager, &dept.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *postgresDepartmentRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM departments WHERE name=$1 AND id<>$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresDepartmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `INSERT INTO departments (id, name, manager, description) VALUES ($1,$2,$3,$4)`
	_, err := r.pool.Exec(ctx, query, dept.ID, dept.Name, dept.Manager, dept.Description)
	return err
}

func (r *postgresDepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `UPDATE departments SET name=$1, manager=$2, description=$3, updated_at=NOW() WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, dept.Name, dept.Manager, dept.Description, dept.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postgresDepartmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id=$1`, id)
	return err
}
