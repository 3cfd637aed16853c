package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
	"github.com/shopdesk/backoffice-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login for employees. Employee records are created by the admin
// employee CRUD, not by self-registration.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password, issues a JWT and returns token + employee.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !employee.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Employee: dto.EmployeeResponse{
			ID:        employee.ID,
			Name:      employee.Name,
			Email:     employee.Email,
			Phone:     employee.Phone,
			Role:      employee.Role,
			Active:    employee.Active,
			CreatedAt: employee.CreatedAt,
		},
	}, nil
}
