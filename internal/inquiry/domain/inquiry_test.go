package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInquiryStatus(t *testing.T) {
	for _, raw := range []string{"NEW", "IN_PROGRESS", "CLOSED"} {
		status, err := ParseInquiryStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, InquiryStatus(raw), status)
		assert.True(t, status.Valid())
	}
}

func TestParseInquiryStatusRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "new", "OPEN", "DONE"} {
		_, err := ParseInquiryStatus(raw)
		assert.True(t, errors.Is(err, ErrInvalidStatus), "status %q must be rejected", raw)
	}
}

func TestInquiryStatusUnmarshalJSON(t *testing.T) {
	var status InquiryStatus
	require.NoError(t, json.Unmarshal([]byte(`"CLOSED"`), &status))
	assert.Equal(t, StatusClosed, status)
}

func TestInquiryStatusUnmarshalJSONRejectsUnknown(t *testing.T) {
	var status InquiryStatus
	assert.Error(t, json.Unmarshal([]byte(`"SOMETHING_ELSE"`), &status))
	assert.Error(t, json.Unmarshal([]byte(`42`), &status))
}
