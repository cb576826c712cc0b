package manager

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/mocks"
)

func staffWithPassword(t *testing.T, password string, isStaff bool) *domain.Staff {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Staff{
		ID:           1,
		Username:     "manager",
		PasswordHash: string(hash),
		IsStaff:      isStaff,
	}
}

func TestAuthLogin(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	auth := NewAuth("test-secret", staff)

	staff.On("GetStaffByUsername", "manager").
		Return(staffWithPassword(t, "secret-pass", true), nil)

	token, err := auth.Login("manager", "secret-pass")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Username)
	assert.True(t, claims.IsStaff)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	auth := NewAuth("test-secret", staff)

	staff.On("GetStaffByUsername", "manager").
		Return(staffWithPassword(t, "secret-pass", true), nil)

	_, err := auth.Login("manager", "wrong")

	assert.ErrorIs(t, err, errBadCredentials)
}

func TestAuthLoginNonStaffRejected(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	auth := NewAuth("test-secret", staff)

	staff.On("GetStaffByUsername", "courier").
		Return(staffWithPassword(t, "secret-pass", false), nil)

	_, err := auth.Login("courier", "secret-pass")

	assert.ErrorIs(t, err, errBadCredentials)
}

func TestAuthValidateTokenRejectsForeignSignature(t *testing.T) {
	auth := NewAuth("test-secret", nil)
	other := NewAuth("other-secret", nil)

	token, err := other.GenerateToken(&domain.Staff{Username: "manager", IsStaff: true})
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)

	assert.Error(t, err)
}

func TestRequireStaffRedirectsWithoutCookie(t *testing.T) {
	auth := NewAuth("test-secret", nil)
	protected := auth.RequireStaff(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	protected(w, httptest.NewRequest("GET", "/manager/orders", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/manager/login", w.Header().Get("Location"))
}

func TestRequireStaffPassesValidSession(t *testing.T) {
	auth := NewAuth("test-secret", nil)
	token, err := auth.GenerateToken(&domain.Staff{Username: "manager", IsStaff: true})
	require.NoError(t, err)

	var called bool
	protected := auth.RequireStaff(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest("GET", "/manager/orders", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	w := httptest.NewRecorder()
	protected(w, r)

	assert.True(t, called)
}

func TestRequireStaffRejectsNonStaffClaims(t *testing.T) {
	auth := NewAuth("test-secret", nil)
	token, err := auth.GenerateToken(&domain.Staff{Username: "courier", IsStaff: false})
	require.NoError(t, err)

	protected := auth.RequireStaff(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for non-staff session")
	})

	r := httptest.NewRequest("GET", "/manager/orders", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	w := httptest.NewRecorder()
	protected(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
}
