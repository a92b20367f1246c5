package partnerValidator

import (
	"shata-admin/middleware"
	"shata-admin/verification"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Document tags the console may attach to a KYC reupload/decline.
var validDocumentTags = map[string]bool{
	"VIDEO":   true,
	"AADHAR":  true,
	"PANCARD": true,
}

type ListRequest struct {
	Bucket string `query:"bucket"`
	Search string `query:"search"`
	Page   *int   `query:"page"`
	Limit  *int   `query:"limit"`
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Bucket != "" && !verification.KnownBucket(verification.Bucket(reqData.Bucket)) {
			errors["bucket"] = "Unknown partner bucket!"
		}
		if reqData.Page == nil {
			page := 1
			reqData.Page = &page
		} else if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil {
			limit := 20
			reqData.Limit = &limit
		} else if *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatePartnerList", reqData)
		return c.Next()
	}
}

type DecisionRequest struct {
	Outcome   string   `json:"outcome"`
	Reason    string   `json:"reason"`
	Documents []string `json:"documents"`
}

// Decision validates the stage decision body. Reason and document presence
// are re-checked by the executor; this layer rejects malformed requests
// before any record is read.
func Decision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecisionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch verification.Outcome(reqData.Outcome) {
		case verification.OutcomeApprove, verification.OutcomeRequestReupload, verification.OutcomeDecline:
		default:
			errors["outcome"] = "Outcome must be approve, reupload or decline!"
		}

		for _, tag := range reqData.Documents {
			if !validDocumentTags[strings.ToUpper(tag)] {
				errors["documents"] = "Unknown document tag: " + tag
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Normalize tags so stored reasons always read the same way.
		for i, tag := range reqData.Documents {
			reqData.Documents[i] = strings.ToUpper(tag)
		}

		c.Locals("validateDecision", reqData)
		return c.Next()
	}
}
