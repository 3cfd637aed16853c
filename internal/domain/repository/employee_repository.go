package repository

import "github.com/shopdesk/backoffice-api/internal/domain/entity"

// EmployeeRepository is the persistence port for Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Employee, error)
}
