package manager

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/antauren/star-burger/internal/domain"
)

const sessionCookie = "manager_session"

var errBadCredentials = errors.New("invalid username or password")

type StaffRepository interface {
	GetStaffByUsername(username string) (*domain.Staff, error)
}

type Claims struct {
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// Auth issues and checks the signed session cookie for console users.
type Auth struct {
	secret []byte
	staff  StaffRepository
}

func NewAuth(secret string, staff StaffRepository) *Auth {
	return &Auth{secret: []byte(secret), staff: staff}
}

// Login checks the credentials against the staff table and returns a
// session token. Non-staff accounts are rejected the same way as bad
// passwords.
func (a *Auth) Login(username, password string) (string, error) {
	staff, err := a.staff.GetStaffByUsername(username)
	if err != nil {
		return "", errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", errBadCredentials
	}
	if !staff.IsStaff {
		return "", errBadCredentials
	}
	return a.GenerateToken(staff)
}

func (a *Auth) GenerateToken(staff *domain.Staff) (string, error) {
	claims := Claims{
		Username: staff.Username,
		IsStaff:  staff.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "star-burger-manager",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// RequireStaff gates a console page behind a valid staff session,
// redirecting anonymous visitors to the login form.
func (a *Auth) RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Redirect(w, r, "/manager/login", http.StatusFound)
			return
		}
		claims, err := a.ValidateToken(cookie.Value)
		if err != nil || !claims.IsStaff {
			http.Redirect(w, r, "/manager/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}
