package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Region    *string `json:"region"`
	IsActive  *bool   `json:"is_active"`
}

// validateUserFields collects every failing rule into one message joined
// with "; " so the admin form can show all problems at once.
func validateUserFields(username, email, password, firstName, phone string, passwordRequired bool) error {
	var problems []string
	if len(username) < 3 || len(username) > 50 {
		problems = append(problems, "username must be 3 to 50 characters")
	}
	if emailErr := ValidateEmail(email); emailErr != nil {
		problems = append(problems, "invalid email address")
	}
	if passwordRequired || password != "" {
		if len(password) < 6 || len(password) > 100 {
			problems = append(problems, "password must be 6 to 100 characters")
		}
	}
	if strings.TrimSpace(firstName) == "" {
		problems = append(problems, "first name is required")
	}
	if phone != "" {
		if phoneErr := ValidateUserPhone(phone); phoneErr != nil {
			problems = append(problems, "phone must be 10 digits starting with 6-9")
		}
	}
	if len(problems) > 0 {
		return invalidf("%s", strings.Join(problems, "; "))
	}
	return nil
}

func (s *UserService) List(ctx context.Context, params repository.UserListParams) ([]entity.User, error) {
	return s.repo.List(ctx, params)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Managers lists users holding roles that may manage a region.
func (s *UserService) Managers(ctx context.Context) ([]entity.User, error) {
	return s.repo.ListByRoles(ctx, []string{
		entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleRegionalOfficer, entity.RoleManager,
	})
}

func (s *UserService) Create(ctx context.Context, actorRole string, req *CreateUserRequest) (*entity.User, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleSalesExecutive
	}
	if !entity.ValidRole(role) {
		return nil, invalidf("invalid role %q", role)
	}
	if !entity.CanManageRole(actorRole, role) {
		return nil, forbiddenf("your role cannot create a %s user", role)
	}
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateUserFields(username, email, req.Password, req.FirstName, req.Phone, true); err != nil {
		return nil, err
	}
	if exists, err := s.repo.UsernameExists(ctx, username, ""); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if exists {
		return nil, conflictf("username already exists")
	}
	if exists, err := s.repo.EmailExists(ctx, email, ""); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if exists {
		return nil, conflictf("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        req.Phone,
		Region:       req.Region,
		IsActive:     true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update enforces the role hierarchy: the actor's rank must strictly exceed
// the target's, except that admins and super admins may edit their own
// account as long as they keep their role.
func (s *UserService) Update(ctx context.Context, actorID, actorRole, id string, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	selfEdit := actorID == id &&
		(actorRole == entity.RoleAdmin || actorRole == entity.RoleSuperAdmin)
	if !selfEdit && !entity.CanManageRole(actorRole, user.Role) {
		return nil, forbiddenf("your role cannot modify this user")
	}

	if req.Role != nil && *req.Role != user.Role {
		if selfEdit {
			return nil, forbiddenf("you cannot change your own role")
		}
		if !entity.ValidRole(*req.Role) {
			return nil, invalidf("invalid role %q", *req.Role)
		}
		if !entity.CanManageRole(actorRole, *req.Role) {
			return nil, forbiddenf("your role cannot assign the %s role", *req.Role)
		}
		user.Role = *req.Role
	}

	email := user.Email
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	password := ""
	if req.Password != nil {
		password = *req.Password
	}
	firstName := user.FirstName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	phone := user.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := validateUserFields(user.Username, email, password, firstName, phone, false); err != nil {
		return nil, err
	}

	if req.Email != nil && email != user.Email {
		if exists, err := s.repo.EmailExists(ctx, email, id); err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		} else if exists {
			return nil, conflictf("email already exists")
		}
		user.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.FirstName = strings.TrimSpace(firstName)
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	user.Phone = phone
	if req.Region != nil {
		user.Region = *req.Region
	}
	if req.IsActive != nil {
		if selfEdit && !*req.IsActive {
			return nil, forbiddenf("you cannot deactivate your own account")
		}
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	if actorID == id {
		return forbiddenf("you cannot delete your own account")
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanManageRole(actorRole, user.Role) {
		return forbiddenf("your role cannot delete this user")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
