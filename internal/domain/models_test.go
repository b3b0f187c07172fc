package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		InsuranceProvider{}.TableName(): "insurance_providers",
		InsuranceQuote{}.TableName():    "insurance_quotes",
		LoanProvider{}.TableName():      "loan_providers",
		LoanOffer{}.TableName():         "loan_offers",
		Inquiry{}.TableName():           "inquiries",
		IdempotencyKey{}.TableName():    "idempotency_keys",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("table name = %q, want %q", got, want)
		}
	}
}

func TestValidInquiryType(t *testing.T) {
	for _, v := range []string{"consumer", "provider", "partnership", "feedback", "other"} {
		if !ValidInquiryType(v) {
			t.Fatalf("%q should be valid", v)
		}
	}
	for _, v := range []string{"", "Consumer", "marketing", " consumer"} {
		if ValidInquiryType(v) {
			t.Fatalf("%q should be invalid", v)
		}
	}
}

func TestJSONFieldNamesAreSnakeCase(t *testing.T) {
	b, err := json.Marshal(InsuranceProvider{ID: 1, Name: "X", LogoURL: "http://l", QuoteCount: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, field := range []string{`"logo_url"`, `"quote_count"`, `"created_at"`} {
		if !strings.Contains(s, field) {
			t.Fatalf("expected %s in %s", field, s)
		}
	}

	b, err = json.Marshal(Inquiry{ID: 2, InquiryType: InquiryTypeConsumer})
	if err != nil {
		t.Fatalf("marshal inquiry: %v", err)
	}
	if !strings.Contains(string(b), `"inquiry_type":"consumer"`) {
		t.Fatalf("expected inquiry_type field: %s", b)
	}
}

func TestLoanOfferHidesProviderAssociation(t *testing.T) {
	b, err := json.Marshal(LoanOffer{ID: 1, ProviderID: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "Provider\":") || strings.Contains(string(b), `"provider":`) {
		t.Fatalf("association should not serialize: %s", b)
	}
}
