package service

import (
	"fmt"
	"math/rand"
	"time"
)

// buildQuotationNumber formats PREFIX-YYYYMM-NNNN. The suffix keeps its
// leading zeros so numbers sort and read uniformly.
func buildQuotationNumber(prefix string, issued time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, issued.Format("200601"), suffix%10000)
}

// newQuotationNumber draws a random suffix. Uniqueness is advisory only; the
// unique index on quotations.quotation_number is the real guard.
func newQuotationNumber(prefix string, issued time.Time) string {
	return buildQuotationNumber(prefix, issued, rand.Intn(10000))
}
