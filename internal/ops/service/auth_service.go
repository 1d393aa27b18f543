package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/config"
	"github.com/bitfantasy/ostrich-ops/internal/middleware"
	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap credentials for first login before any user rows exist.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
)

// RateLimitedError means the caller exhausted the failed-login budget (429).
type RateLimitedError struct {
	Message string
}

func (e *RateLimitedError) Error() string { return e.Message }

// AuthError is an invalid-credentials failure (401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type AuthService struct {
	userRepo *repository.UserRepository
	limiter  *LoginLimiter
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, limiter *LoginLimiter, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, limiter: limiter, cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *entity.User `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Login verifies credentials and issues an HS256 bearer token. The limiter
// check runs before any credential work, so a blocked username stays blocked
// even with the right password until the window drains.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < 3 || len(username) > 50 {
		return nil, invalidf("username must be 3 to 50 characters")
	}
	if len(req.Password) < 6 || len(req.Password) > 100 {
		return nil, invalidf("password must be 6 to 100 characters")
	}

	blocked, err := s.limiter.Blocked(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check login attempts: %w", err)
	}
	if blocked {
		return nil, &RateLimitedError{Message: "too many failed login attempts, try again later"}
	}

	if username == bootstrapUsername && req.Password == bootstrapPassword {
		user := &entity.User{
			ID:        "1",
			Username:  bootstrapUsername,
			Role:      entity.RoleAdmin,
			FirstName: "Admin",
			IsActive:  true,
		}
		_ = s.limiter.Reset(ctx, username)
		return s.issueToken(user)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if IsNotFound(err) {
			_ = s.limiter.RecordFailure(ctx, username)
			return nil, &AuthError{Message: "invalid username or password"}
		}
		return nil, err
	}
	if !user.IsActive || !VerifyPassword(user.PasswordHash, req.Password) {
		_ = s.limiter.RecordFailure(ctx, username)
		return nil, &AuthError{Message: "invalid username or password"}
	}

	_ = s.limiter.Reset(ctx, username)
	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *entity.User) (*LoginResult, error) {
	expire := s.cfg.JWT.AccessTokenExpire
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(expire.Seconds()),
		User:      user,
	}, nil
}

// Me resolves the authenticated account. The bootstrap admin has no row.
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "1" {
		return &entity.User{
			ID:        "1",
			Username:  bootstrapUsername,
			Role:      entity.RoleAdmin,
			FirstName: "Admin",
			IsActive:  true,
		}, nil
	}
	return s.userRepo.GetByID(ctx, userID)
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*entity.User, error) {
	if userID == "1" {
		return nil, statef("the bootstrap admin profile cannot be edited")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := ValidateEmail(email); err != nil {
			return nil, err
		}
		if exists, err := s.userRepo.EmailExists(ctx, email, userID); err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		} else if exists {
			return nil, conflictf("email already exists")
		}
		user.Email = email
	}
	if req.Phone != nil {
		if *req.Phone != "" {
			if err := ValidateUserPhone(*req.Phone); err != nil {
				return nil, err
			}
		}
		user.Phone = *req.Phone
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	if userID == "1" {
		return statef("the bootstrap admin password cannot be changed")
	}
	if len(req.NewPassword) < 6 || len(req.NewPassword) > 100 {
		return invalidf("new password must be 6 to 100 characters")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		return &AuthError{Message: "current password is incorrect"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// VerifyPassword checks a stored hash against the candidate password.
// Current accounts use bcrypt; accounts migrated from the legacy system use
// "salt:hex(sha256(salt+password))".
func VerifyPassword(stored, password string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	salt, hexDigest, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	sum := sha256.Sum256([]byte(salt + password))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(hexDigest)) == 1
}
