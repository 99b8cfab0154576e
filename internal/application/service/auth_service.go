package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/oauth"
	"github.com/sangkips/shopledger-api/pkg/utils"
)

const minPasswordLength = 8

// AuthService handles shop registration, sign-in and shop staff accounts
type AuthService struct {
	userRepo   repository.UserRepository
	shopRepo   repository.ShopRepository
	jwtManager *utils.JWTManager
	google     *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	shopRepo repository.ShopRepository,
	jwtManager *utils.JWTManager,
	google *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		shopRepo:   shopRepo,
		jwtManager: jwtManager,
		google:     google,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RegisterShopInput represents a new shop and its owner account
type RegisterShopInput struct {
	ShopName    string
	ShopPhone   *string
	ShopAddress *string
	OwnerName   string
	Email       string
	Password    string
	Phone       *string
}

// AddWorkerInput represents a new counter worker account
type AddWorkerInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// RegisterShop creates a shop with its SHOP_OWNER account and signs the owner in
func (s *AuthService) RegisterShop(ctx context.Context, input *RegisterShopInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.ShopName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "shop_name", Message: "Shop name is required"})
	}
	if strings.TrimSpace(input.OwnerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "owner_name", Message: "Owner name is required"})
	}
	if !strings.Contains(email, "@") {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "A valid email is required"})
	}
	if len(input.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	slug, err := s.uniqueSlug(ctx, input.ShopName)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(input.ShopName),
		Slug:     slug,
		Phone:    input.ShopPhone,
		Address:  input.ShopAddress,
		Settings: entity.DefaultShopSettings(),
	}
	owner := &entity.User{
		ID:       uuid.New(),
		ShopID:   &shop.ID,
		Name:     strings.TrimSpace(input.OwnerName),
		Email:    email,
		Password: hashedPassword,
		Phone:    input.Phone,
		Role:     enum.RoleShopOwner,
		Provider: "local",
		IsActive: true,
	}
	shop.OwnerID = &owner.ID

	if err := s.shopRepo.CreateWithOwner(ctx, shop, owner); err != nil {
		return nil, err
	}
	log.Printf("Shop registered: %s (%s) owner %s", shop.Name, shop.ID, owner.Email)

	return s.issueTokens(owner)
}

func (s *AuthService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "shop"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.shopRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// GoogleLogin signs in an existing account with a Google authorization code.
// Accounts are never created from Google sign-in; shops register first.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if s.google == nil || !s.google.IsConfigured() {
		return nil, apperror.NewBadRequestError(oauth.ErrOAuthNotConfigured.Error())
	}

	token, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}
	info, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.NewForbiddenError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	if user.ProviderID == nil || *user.ProviderID != info.ID {
		user.ProviderID = &info.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewFieldError("current_password", "Current password is incorrect")
	}
	if len(input.NewPassword) < minPasswordLength {
		return apperror.NewFieldError("new_password", "Password must be at least 8 characters")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// AddWorker creates a SHOP_WORKER account in the owner's shop
func (s *AuthService) AddWorker(ctx context.Context, actor Actor, shopID uuid.UUID, input *AddWorkerInput) (*entity.User, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if err := requireOwner(actor, "add workers"); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !strings.Contains(email, "@") {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "A valid email is required"})
	}
	if len(input.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	worker := &entity.User{
		ShopID:   &shopID,
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hashedPassword,
		Phone:    input.Phone,
		Role:     enum.RoleShopWorker,
		Provider: "local",
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// ListStaff lists the accounts of a shop
func (s *AuthService) ListStaff(ctx context.Context, actor Actor, shopID uuid.UUID) ([]entity.User, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	return s.userRepo.ListByShop(ctx, shopID)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(utils.TokenSubject{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role.String(),
		ShopID:      user.ShopIDOrNil(),
		Permissions: user.Role.Permissions(),
	})
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
