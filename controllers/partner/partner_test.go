package partnerController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"shata-admin/config"
	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	partnerRoutes "shata-admin/routers/partnerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Partner{}, &models.OverrideGrant{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	partnerRoutes.SetupPartnerRoutes(app)
	return app
}

func sessionToken(t *testing.T, override bool) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "Operator", "OPERATOR", "op@shata.in", override, time.Hour)
	require.NoError(t, err)
	return token
}

// seeded partners carry no contact details so decision tests never reach the
// notifier's SMTP/SMS calls.
func seedPartner(t *testing.T, p models.Partner) *models.Partner {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&p).Error)
	return &p
}

func postDecision(t *testing.T, app *fiber.App, token string, partnerID uint, stage int, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/partners/%d/stages/%d/decision", partnerID, stage), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestStageDecisionEndpoint(t *testing.T) {
	app := setupApp(t)
	token := sessionToken(t, false)
	p := seedPartner(t, models.Partner{Name: "Jane Smith"})

	// Approve the KYC stage.
	code, body := postDecision(t, app, token, p.ID, 0, map[string]interface{}{"outcome": "approve"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["status"])

	var after models.Partner
	require.NoError(t, database.Database.Db.First(&after, p.ID).Error)
	assert.Equal(t, "AKYC", after.KycStatus)
}

func TestStageDecisionRequiresAuth(t *testing.T) {
	app := setupApp(t)
	p := seedPartner(t, models.Partner{})

	payload, _ := json.Marshal(map[string]interface{}{"outcome": "approve"})
	req := httptest.NewRequest("POST", fmt.Sprintf("/partners/%d/stages/0/decision", p.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStageDecisionLockedStage(t *testing.T) {
	app := setupApp(t)
	token := sessionToken(t, false)
	p := seedPartner(t, models.Partner{})

	code, body := postDecision(t, app, token, p.ID, 1, map[string]interface{}{"outcome": "approve"})
	assert.Equal(t, fiber.StatusLocked, code)
	assert.Contains(t, body["message"], "Online KYC")
}

func TestStageDecisionValidation(t *testing.T) {
	app := setupApp(t)
	token := sessionToken(t, false)
	p := seedPartner(t, models.Partner{})

	// Reupload without a reason.
	code, _ := postDecision(t, app, token, p.ID, 0, map[string]interface{}{
		"outcome": "reupload", "documents": []string{"AADHAR"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// Reupload on the KYC stage without selecting documents.
	code, _ = postDecision(t, app, token, p.ID, 0, map[string]interface{}{
		"outcome": "reupload", "reason": "blurry image",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// Unknown outcome is stopped by the validator.
	code, _ = postDecision(t, app, token, p.ID, 0, map[string]interface{}{"outcome": "shred"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	var after models.Partner
	require.NoError(t, database.Database.Db.First(&after, p.ID).Error)
	assert.Empty(t, after.KycStatus, "failed validations write nothing")
}

func TestResolvedStageNeedsOverride(t *testing.T) {
	app := setupApp(t)
	standard := sessionToken(t, false)
	privileged := sessionToken(t, true)
	p := seedPartner(t, models.Partner{KycStatus: "DKYC"})

	code, _ := postDecision(t, app, standard, p.ID, 0, map[string]interface{}{"outcome": "approve"})
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = postDecision(t, app, privileged, p.ID, 0, map[string]interface{}{"outcome": "approve"})
	assert.Equal(t, fiber.StatusOK, code)

	var after models.Partner
	require.NoError(t, database.Database.Db.First(&after, p.ID).Error)
	assert.Equal(t, "AKYC", after.KycStatus)
}

func TestPartnerDetailsAccessibilityMap(t *testing.T) {
	app := setupApp(t)
	token := sessionToken(t, false)
	p := seedPartner(t, models.Partner{Name: "Jane Smith", KycStatus: "AKYC"})

	req := httptest.NewRequest("GET", fmt.Sprintf("/partners/%d", p.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Bucket string `json:"bucket"`
			Stages []struct {
				Name       string `json:"name"`
				State      string `json:"state"`
				Accessible bool   `json:"accessible"`
			} `json:"stages"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	require.Len(t, parsed.Data.Stages, 3)
	assert.Equal(t, "kyc", parsed.Data.Bucket)
	assert.Equal(t, "approved", parsed.Data.Stages[0].State)
	assert.True(t, parsed.Data.Stages[1].Accessible, "company verification unlocked")
	assert.False(t, parsed.Data.Stages[2].Accessible, "in-person still gated")
}

func TestPartnerListBuckets(t *testing.T) {
	app := setupApp(t)
	token := sessionToken(t, false)
	seedPartner(t, models.Partner{Name: "Jane Smith"})
	seedPartner(t, models.Partner{Name: "John Doe", KycStatus: "AKYC"})

	req := httptest.NewRequest("GET", "/partners/?bucket=kyc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Partners []struct {
				Name string `json:"name"`
			} `json:"partners"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Data.Partners, 1)
	assert.Equal(t, "John Doe", parsed.Data.Partners[0].Name)
}
