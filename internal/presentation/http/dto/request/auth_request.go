package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterShopRequest registers a shop together with its owner account
type RegisterShopRequest struct {
	ShopName        string  `json:"shop_name" binding:"required,min=2,max=255"`
	ShopPhone       *string `json:"shop_phone"`
	ShopAddress     *string `json:"shop_address"`
	OwnerName       string  `json:"owner_name" binding:"required,min=2,max=255"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           *string `json:"phone"`
	Password        string  `json:"password" binding:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" binding:"required,eqfield=Password"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// AddWorkerRequest creates a counter worker account in the caller's shop
type AddWorkerRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required,min=8"`
}
