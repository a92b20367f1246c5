package partnerController

import (
	"errors"
	"log"
	"strconv"

	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	"shata-admin/utils"
	partnerValidator "shata-admin/validators/partner"
	"shata-admin/verification"

	"github.com/gofiber/fiber/v2"
)

// authorityFrom derives the caller's privilege level from the session claims
// set by JWTMiddleware. The override flag only ever comes from a token the
// server issued after a successful challenge.
func authorityFrom(c *fiber.Ctx) verification.Authority {
	if override, ok := c.Locals("override").(bool); ok && override {
		return verification.AuthorityPrivileged
	}
	return verification.AuthorityStandard
}

// PartnerList returns partners grouped into a bucket with optional free-text
// search over name, email and phone. Classification runs over the fetched
// collection so bucket rules live in one place.
func PartnerList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatePartnerList").(*partnerValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var partners []models.Partner
	if err := database.Database.Db.Order("created_at desc").Find(&partners).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partner list!", nil)
	}

	filtered := verification.FilterPartners(partners, verification.Bucket(reqData.Bucket), reqData.Search)

	total := len(filtered)
	offset := (*reqData.Page - 1) * (*reqData.Limit)
	if offset > total {
		offset = total
	}
	end := offset + *reqData.Limit
	if end > total {
		end = total
	}

	response := map[string]interface{}{
		"partners": filtered[offset:end],
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner List.", response)
}

// stageView is one row of the verification panel on the partner detail page.
type stageView struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	State      string `json:"state"`
	Accessible bool   `json:"accessible"`
}

// PartnerDetails returns one partner plus the per-stage accessibility map for
// the calling session, which drives what the console lets the operator open.
func PartnerDetails(c *fiber.Ctx) error {
	partnerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid partner id!", nil)
	}

	var partner models.Partner
	if err := database.Database.Db.First(&partner, uint(partnerID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	auth := authorityFrom(c)
	stages := make([]stageView, 0, verification.StageCount)
	for i, stage := range verification.Stages() {
		accessible, _ := verification.StageAccessible(&partner, i, auth)
		stages = append(stages, stageView{
			Index:      i,
			Name:       stage.Name,
			Code:       stage.CodeOf(&partner),
			State:      stage.StatusOf(&partner).String(),
			Accessible: accessible,
		})
	}

	bucket, _ := verification.Classify(&partner)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner details.", fiber.Map{
		"partner": partner,
		"stages":  stages,
		"bucket":  bucket,
	})
}

// StageDecision applies an approve/reupload/decline outcome to one stage.
func StageDecision(c *fiber.Ctx) error {
	partnerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid partner id!", nil)
	}
	stageIndex, err := strconv.Atoi(c.Params("stage"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid stage index!", nil)
	}

	reqData, ok := c.Locals("validateDecision").(*partnerValidator.DecisionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	executor := verification.Executor{DB: database.Database.Db}
	partner, err := executor.Apply(
		uint(partnerID),
		stageIndex,
		verification.Outcome(reqData.Outcome),
		reqData.Reason,
		reqData.Documents,
		authorityFrom(c),
	)
	if err != nil {
		return decisionError(c, err, uint(partnerID), stageIndex)
	}

	stage, _ := verification.StageAt(stageIndex)
	go utils.NotifyDecision(*partner, stage.Name, reqData.Outcome, partner.Reason)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Decision recorded.", partner)
}

// decisionError maps executor failures onto the response envelope. Every
// failure means "this single action did not take effect" and says so.
func decisionError(c *fiber.Ctx, err error, partnerID uint, stageIndex int) error {
	switch {
	case errors.Is(err, verification.ErrUnknownStage):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown verification stage!", nil)
	case errors.Is(err, verification.ErrPartnerNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	case errors.Is(err, verification.ErrOutcomeUnsupported):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This stage does not support that outcome!", nil)
	case errors.Is(err, verification.ErrStageLocked):
		message := "Stage is locked!"
		var partner models.Partner
		if dbErr := database.Database.Db.First(&partner, partnerID).Error; dbErr == nil {
			if blocking := verification.BlockingStage(&partner, stageIndex); blocking >= 0 {
				stage, _ := verification.StageAt(blocking)
				message = stage.Name + " must be approved first!"
			}
		}
		return middleware.JsonResponse(c, fiber.StatusLocked, false, message, nil)
	case errors.Is(err, verification.ErrReasonRequired):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "A reason is required for this outcome!", nil)
	case errors.Is(err, verification.ErrDocumentSelectionRequired):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Select at least one document!", nil)
	case errors.Is(err, verification.ErrAlreadyResolved):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Stage is already resolved. Override authority is required to change it!", nil)
	case errors.Is(err, verification.ErrVersionConflict):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Partner was updated by another session. Reload and try again!", nil)
	default:
		log.Printf("Stage decision failed for partner %d stage %d: %v", partnerID, stageIndex, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Partner store is unavailable. The decision was not saved!", nil)
	}
}
