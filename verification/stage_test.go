package verification

import (
	"testing"

	"shata-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageAt(t *testing.T) {
	for i := 0; i < StageCount; i++ {
		stage, err := StageAt(i)
		require.NoError(t, err)
		assert.NotEmpty(t, stage.Name)
		assert.NotEmpty(t, stage.StatusField)
	}

	_, err := StageAt(-1)
	assert.ErrorIs(t, err, ErrUnknownStage)
	_, err = StageAt(StageCount)
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestRegistryShape(t *testing.T) {
	all := Stages()
	require.Len(t, all, 3)

	// Only the KYC stage supports pointing at individual documents.
	assert.True(t, all[0].AllowsDocumentTags)
	assert.False(t, all[1].AllowsDocumentTags)
	assert.False(t, all[2].AllowsDocumentTags)

	// The in-person stage has no reupload flow.
	assert.Empty(t, all[2].Codes.ReuploadRequested)
	assert.NotEmpty(t, all[0].Codes.ReuploadRequested)
	assert.NotEmpty(t, all[1].Codes.ReuploadRequested)
}

func TestDecodeVocabulary(t *testing.T) {
	cases := []struct {
		stage int
		code  string
		want  Status
	}{
		{0, "", StatusPending},
		{0, "Pending", StatusPending},
		{0, "AKYC", StatusApproved},
		{0, "RKYC", StatusReuploadRequested},
		{0, "DKYC", StatusDeclined},
		{1, "ACV", StatusApproved},
		{1, "RCV", StatusReuploadRequested},
		{1, "DCV", StatusDeclined},
		{2, "approved", StatusApproved},
		{2, "decline", StatusDeclined},
	}
	for _, tc := range cases {
		stage, err := StageAt(tc.stage)
		require.NoError(t, err)
		got, ok := stage.Decode(tc.code)
		assert.True(t, ok, "stage %d code %q", tc.stage, tc.code)
		assert.Equal(t, tc.want, got, "stage %d code %q", tc.stage, tc.code)
	}
}

func TestDecodeRejectsForeignCodes(t *testing.T) {
	kyc, _ := StageAt(0)
	ipv, _ := StageAt(2)

	// Codes from other stages are not part of this stage's vocabulary.
	_, ok := kyc.Decode("ACV")
	assert.False(t, ok)
	_, ok = ipv.Decode("RKYC")
	assert.False(t, ok)
	_, ok = kyc.Decode("garbage")
	assert.False(t, ok)
}

func TestStatusOfUnknownCodeReadsPending(t *testing.T) {
	p := &models.Partner{KycStatus: "WAT"}
	kyc, _ := StageAt(0)
	assert.Equal(t, StatusPending, kyc.StatusOf(p))
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, StatusPending.Resolved())
	assert.True(t, StatusApproved.Resolved())
	assert.True(t, StatusReuploadRequested.Resolved())

	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusDeclined.Terminal())
	assert.False(t, StatusReuploadRequested.Terminal())
	assert.False(t, StatusPending.Terminal())
}
