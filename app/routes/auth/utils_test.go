package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(7, "manager@reliefassist.org", models.RoleManager)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "manager@reliefassist.org", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, "reliefassist", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "every token carries a unique jti")
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	claims := JWTClaims{
		UserID: 1,
		Email:  "old@reliefassist.org",
		Role:   models.RoleVolunteer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			Issuer:    "reliefassist",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	claims := JWTClaims{
		UserID: 1,
		Email:  "spoof@reliefassist.org",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-elses-key"))
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestIsFormContentType(t *testing.T) {
	assert.True(t, isFormContentType("application/x-www-form-urlencoded"))
	// Browsers commonly append a charset parameter
	assert.True(t, isFormContentType("application/x-www-form-urlencoded; charset=UTF-8"))

	assert.False(t, isFormContentType("application/json"))
	assert.False(t, isFormContentType(""))
	assert.False(t, isFormContentType("multipart/form-data; boundary=x"))
}

func TestAuthorize(t *testing.T) {
	// Admins pass every gate, even an empty one
	assert.True(t, Authorize(models.RoleAdmin))
	assert.True(t, Authorize(models.RoleAdmin, models.RoleManager))
	assert.True(t, Authorize(models.RoleAdmin, models.RoleDonor))

	// An empty allowed list is admin-only
	assert.False(t, Authorize(models.RoleManager))
	assert.False(t, Authorize(models.RoleVolunteer))
	assert.False(t, Authorize(models.RolePublic))

	// Everyone else must be on the list
	assert.True(t, Authorize(models.RoleManager, models.RoleManager))
	assert.False(t, Authorize(models.RoleVolunteer, models.RoleManager))
	assert.True(t, Authorize(models.RoleVolunteer, models.RoleManager, models.RoleVolunteer))
	assert.False(t, Authorize(models.RoleDonor, models.RoleVolunteer))
	assert.True(t, Authorize(models.RoleDonor, models.RoleDonor))
}
