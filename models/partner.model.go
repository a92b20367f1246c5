package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Partner is one onboarding applicant (event planner / service provider).
// Records are created by the partner onboarding app; this console only
// reads them and moves them through the verification stages.
type Partner struct {
	gorm.Model
	Name            string         `gorm:"default:''" json:"name"`
	CompanyName     string         `gorm:"default:''" json:"companyName"`
	CompanyLocation string         `gorm:"default:''" json:"companyLocation"`
	MobileNo        string         `gorm:"default:''" json:"mobileNo"`
	PersonalEmail   string         `gorm:"default:''" json:"personalEmail"`
	Categories      datatypes.JSON `json:"categories"` // selected service categories

	// Uploaded artifacts; empty string means not uploaded yet.
	VideoUrl                    string `gorm:"default:''" json:"videoUrl"`
	AadharUrl                   string `gorm:"default:''" json:"aadharUrl"`
	PanCardUrl                  string `gorm:"default:''" json:"panCardUrl"`
	GstCertificateUrl           string `gorm:"default:''" json:"gstCertificateUrl"`
	IncorporationCertificateUrl string `gorm:"default:''" json:"incorporationCertificateUrl"`

	// Per-stage status codes are the source of truth. The legacy codes are
	// kept on the wire: AKYC/RKYC/DKYC, ACV/RCV/DCV, approved/decline.
	// Empty means the stage is still pending.
	KycStatus string `gorm:"default:''" json:"kycStatus"`
	CvStatus  string `gorm:"default:''" json:"cvStatus"`
	IpvStatus string `gorm:"default:''" json:"ipvStatus"`

	// Status mirrors the most recent stage code for older consumers.
	// Nothing in this service reads it back.
	Status string `gorm:"default:''" json:"status"`

	// Reason holds the latest reupload/decline explanation, optionally
	// prefixed with the affected document tags ("AADHAR, PANCARD : blurry").
	Reason string `gorm:"default:''" json:"reason"`

	// LockVersion guards stage writes against two operators resolving the
	// same partner at once.
	LockVersion int `gorm:"default:0" json:"lockVersion"`
}
