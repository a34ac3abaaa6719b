package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
	"github.com/SuyashJain1994/Contract-Analyzer/model"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/apperrors"
)

// CredentialVerifier checks a credential pair and resolves the identity
// behind it. Swappable so a real user store can replace the configured list
// without touching the token contract.
type CredentialVerifier interface {
	Verify(email, password string) (*model.User, error)
}

// StaticCredentials verifies against the configured user list
type StaticCredentials struct {
	users []config.User
}

func NewStaticCredentials(users []config.User) *StaticCredentials {
	return &StaticCredentials{users: users}
}

func (s *StaticCredentials) Verify(email, password string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return &model.User{
				ID:       u.ID,
				Email:    u.Email,
				FullName: u.FullName,
				IsActive: true,
			}, nil
		}
	}
	return nil, apperrors.InvalidCredentials()
}

// Claims are the JWT claims embedded in an access token
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies access tokens
type AuthService struct {
	verifier      CredentialVerifier
	secret        []byte
	tokenLifetime time.Duration
}

func NewAuthService(verifier CredentialVerifier, cfg *config.AuthConfig) *AuthService {
	return &AuthService{
		verifier:      verifier,
		secret:        []byte(cfg.SecretKey),
		tokenLifetime: time.Duration(cfg.TokenExpireMinutes) * time.Minute,
	}
}

// Authenticate verifies the credential pair and returns a signed token
func (a *AuthService) Authenticate(email, password string) (string, error) {
	user, err := a.verifier.Verify(email, password)
	if err != nil {
		return "", err
	}

	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", apperrors.AuthFailed(err)
	}

	return signed, nil
}

// CurrentUser validates a token and returns the identity it embeds.
// Failure kinds are distinguishable: TokenExpired, InvalidToken, AuthFailed.
func (a *AuthService) CurrentUser(tokenString string) (*model.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.TokenExpired()
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrSignatureInvalid),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, apperrors.InvalidToken()
		default:
			return nil, apperrors.AuthFailed(err)
		}
	}
	if !token.Valid || claims.Subject == "" || claims.UserID == 0 {
		return nil, apperrors.InvalidToken()
	}

	// Identity comes from the token alone; there is no server-side session
	return &model.User{
		ID:       claims.UserID,
		Email:    claims.Subject,
		IsActive: true,
	}, nil
}

// HashPassword hashes a password with bcrypt. Unused by the login path for
// now; kept for a future real user store.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a password against a bcrypt hash
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
