package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuotationNumber(t *testing.T) {
	issued := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "ZSP-202501-0042", buildQuotationNumber("ZSP", issued, 42))
	assert.Equal(t, "ZSP-202501-9999", buildQuotationNumber("ZSP", issued, 9999))
	// Suffixes wrap into the four-digit space.
	assert.Equal(t, "ZSP-202501-0001", buildQuotationNumber("ZSP", issued, 10001))
}

func TestNewQuotationNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ZSP-\d{6}-\d{4}$`)
	issued := time.Date(2025, time.November, 3, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		number := newQuotationNumber("ZSP", issued)
		assert.Regexp(t, pattern, number)
		assert.Contains(t, number, "-202511-")
	}
}
