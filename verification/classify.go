package verification

import (
	"strings"

	"shata-admin/models"
)

// Bucket is an operator-facing grouping of partner records.
type Bucket string

const (
	BucketPending  Bucket = "pending"  // nothing decided yet
	BucketKyc      Bucket = "kyc"      // inside the online KYC stage
	BucketCompany  Bucket = "company"  // KYC done, inside company verification
	BucketDeclined Bucket = "declined" // declined at the in-person stage
	BucketApproved Bucket = "approved" // fully verified
)

// KnownBucket reports whether key names a bucket.
func KnownBucket(key Bucket) bool {
	switch key {
	case BucketPending, BucketKyc, BucketCompany, BucketDeclined, BucketApproved:
		return true
	}
	return false
}

// Classify places a partner into exactly one bucket based on the per-stage
// status fields. The most advanced touched stage wins. Records carrying a
// code outside the stage vocabulary land in no bucket at all; they are
// surfaced by returning false rather than being lumped into pending.
func Classify(p *models.Partner) (Bucket, bool) {
	var decoded [StageCount]Status
	for i, stage := range stages {
		status, ok := stage.Decode(stage.CodeOf(p))
		if !ok {
			return "", false
		}
		decoded[i] = status
	}

	switch decoded[2] {
	case StatusApproved:
		return BucketApproved, true
	case StatusDeclined:
		return BucketDeclined, true
	}
	if decoded[1].Resolved() {
		return BucketCompany, true
	}
	if decoded[0].Resolved() {
		return BucketKyc, true
	}
	return BucketPending, true
}

// MatchesQuery splits the query on whitespace and matches only when every
// term appears, case-insensitively, somewhere in the joined fields. An empty
// query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// FilterPartners narrows a fetched collection to one bucket and an optional
// free-text query over name, email and phone.
func FilterPartners(partners []models.Partner, bucket Bucket, query string) []models.Partner {
	out := make([]models.Partner, 0, len(partners))
	for i := range partners {
		p := &partners[i]
		if bucket != "" {
			b, ok := Classify(p)
			if !ok || b != bucket {
				continue
			}
		}
		if !MatchesQuery(query, p.Name, p.PersonalEmail, p.MobileNo) {
			continue
		}
		out = append(out, *p)
	}
	return out
}
