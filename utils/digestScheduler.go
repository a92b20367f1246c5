package utils

import (
	"fmt"
	"log"
	"time"

	"shata-admin/config"
	"shata-admin/database"
	"shata-admin/models"
	"shata-admin/verification"

	"github.com/robfig/cron/v3"
)

// logDigest logs scheduler events with timestamp
func logDigest(message string) {
	log.Printf("[VERIFICATION-DIGEST %s] %s", time.Now().Format(time.RFC3339), message)
}

// runVerificationDigest counts partners waiting on a decision and mails the
// numbers to the configured recipient.
func runVerificationDigest() {
	var partners []models.Partner
	if err := database.Database.Db.Find(&partners).Error; err != nil {
		logDigest("Error fetching partners: " + err.Error())
		return
	}

	counts := map[verification.Bucket]int{}
	unmapped := 0
	for i := range partners {
		bucket, ok := verification.Classify(&partners[i])
		if !ok {
			unmapped++
			continue
		}
		counts[bucket]++
	}

	waiting := counts[verification.BucketPending] + counts[verification.BucketKyc] + counts[verification.BucketCompany]
	logDigest(fmt.Sprintf("Partners waiting on verification: %d (pending %d, kyc %d, company %d), unmapped %d",
		waiting, counts[verification.BucketPending], counts[verification.BucketKyc], counts[verification.BucketCompany], unmapped))

	recipient := config.AppConfig.DigestRecipient
	if recipient == "" || waiting == 0 {
		return
	}

	message := fmt.Sprintf(
		"%d partners are waiting on verification: %d not started, %d in online KYC, %d in company verification.",
		waiting, counts[verification.BucketPending], counts[verification.BucketKyc], counts[verification.BucketCompany])
	if err := SendDecisionEmail(recipient, "Operator", "Verification queue", message); err != nil {
		logDigest("Error sending digest email: " + err.Error())
	}
}

// StartVerificationDigest schedules the daily pending-verification digest.
func StartVerificationDigest() *cron.Cron {
	c := cron.New()

	// Every morning at 09:00 server time.
	if _, err := c.AddFunc("0 9 * * *", runVerificationDigest); err != nil {
		log.Fatalf("Failed to schedule verification digest: %v", err)
	}

	c.Start()
	logDigest("Verification digest scheduled.")
	return c
}
