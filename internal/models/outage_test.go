package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityPublic(t *testing.T) {
	assert.Equal(t, "critical", SeverityCritical.Public())
	assert.Equal(t, "major", SeverityHigh.Public())
	assert.Equal(t, "major", SeverityMedium.Public())
	assert.Equal(t, "minor", SeverityLow.Public())
	assert.Equal(t, "unknown", Severity("weird").Public())
}

func TestCanonicalOutageValidate(t *testing.T) {
	valid := CanonicalOutage{
		Operator: "telia",
		Title:    BilingualText{SV: "Störning", EN: "disruption"},
		Status:   StatusActive,
	}
	assert.NoError(t, valid.Validate())

	noOperator := valid
	noOperator.Operator = ""
	assert.ErrorIs(t, noOperator.Validate(), ErrMalformedRecord)

	noTitle := valid
	noTitle.Title = BilingualText{}
	assert.ErrorIs(t, noTitle.Validate(), ErrMalformedRecord)

	badStatus := valid
	badStatus.Status = "exploded"
	assert.ErrorIs(t, badStatus.Validate(), ErrMalformedRecord)
}
