package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"shata-admin/config"
	"shata-admin/database"
	"shata-admin/models"
	authRoutes "shata-admin/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		SaltRound:          4,
		OverrideKey:        "let-me-in",
		OverrideTTLMinutes: 5,
	}

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.OverrideGrant{}))
	database.Database = database.DbInstance{Db: db}

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), 4)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Name:     "Operator",
		Email:    "op@shata.in",
		Password: string(hashed),
		Role:     "OPERATOR",
	}).Error)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, body := postJSON(t, app, "/auth/login", "", map[string]interface{}{
		"email": "op@shata.in", "password": "hunter2hunter2",
	})
	require.Equal(t, fiber.StatusOK, code)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func overrideClaim(t *testing.T, tokenString string) bool {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	override, _ := claims["override"].(bool)
	return override
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	token := login(t, app)
	assert.NotEmpty(t, token)
	assert.False(t, overrideClaim(t, token), "plain login is a standard session")

	code, _ := postJSON(t, app, "/auth/login", "", map[string]interface{}{
		"email": "op@shata.in", "password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestOverrideChallenge(t *testing.T) {
	app := setupApp(t)
	session := login(t, app)

	// Wrong key: rejected, no grant recorded.
	code, _ := postJSON(t, app, "/auth/override", session, map[string]interface{}{"key": "guess"})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	var grants int64
	database.Database.Db.Model(&models.OverrideGrant{}).Count(&grants)
	assert.EqualValues(t, 0, grants)

	// Right key: a fresh privileged token plus an audit row.
	code, body := postJSON(t, app, "/auth/override", session, map[string]interface{}{"key": "let-me-in"})
	require.Equal(t, fiber.StatusOK, code)
	data := body["data"].(map[string]interface{})
	upgraded := data["token"].(string)
	assert.True(t, overrideClaim(t, upgraded))

	database.Database.Db.Model(&models.OverrideGrant{}).Count(&grants)
	assert.EqualValues(t, 1, grants)
}

func TestOverrideRequiresSession(t *testing.T) {
	app := setupApp(t)

	code, _ := postJSON(t, app, "/auth/override", "", map[string]interface{}{"key": "let-me-in"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
