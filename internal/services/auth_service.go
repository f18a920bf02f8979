package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/TargetKart/targetkart-backend/internal/config"
	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
	"github.com/TargetKart/targetkart-backend/internal/utils"
)

// Compile-time check to ensure authService implements AuthService
var _ AuthService = (*authService)(nil)

// authService handles dashboard authentication. This is only a session
// shell: beyond issuing and checking a token there is no authorization
// logic in the backend.
type authService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies the credentials and returns a signed session token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, s.cfg)
	if err != nil {
		return nil, err
	}

	response := &models.LoginResponse{
		Token: token,
		User:  *user,
	}
	response.User.Password = ""
	return response, nil
}
