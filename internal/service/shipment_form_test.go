package service

import "testing"

func validShipmentForm() *ShipmentForm {
	return &ShipmentForm{
		CustomerName:        "Acme Trading",
		CustomerEmail:       "ops@acme.example",
		CustomerPhone:       "+86-1380000",
		DepartureLocation:   "Shanghai",
		DestinationLocation: "Rotterdam",
		CurrentLocation:     "Shanghai",
		DepartureDate:       "2026-09-01",
		ETA:                 "2026-10-01",
		Weight:              "1200.5",
		Dimensions:          "12x2x2m",
	}
}

func TestValidateShipmentFormPassesWhenComplete(t *testing.T) {
	errs := ValidateShipmentForm(validShipmentForm())
	if len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %+v", errs)
	}
}

func TestValidateShipmentFormRequiredMessages(t *testing.T) {
	errs := ValidateShipmentForm(&ShipmentForm{})
	want := map[string]string{
		"customerName":        "Customer name is required",
		"customerEmail":       "Customer email is required",
		"customerPhone":       "Customer phone is required",
		"departureLocation":   "Departure location is required",
		"destinationLocation": "Destination location is required",
		"currentLocation":     "Current location is required",
		"departureDate":       "Departure date is required",
		"eta":                 "ETA is required",
		"weight":              "Weight is required",
		"dimensions":          "Dimensions are required",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %+v", len(want), len(errs), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
}

func TestValidateShipmentFormEmailPattern(t *testing.T) {
	form := validShipmentForm()
	form.CustomerEmail = "bad"
	errs := ValidateShipmentForm(form)
	if errs["customerEmail"] != "Invalid email format" {
		t.Fatalf("expected invalid email error, got %+v", errs)
	}

	form.CustomerEmail = "a@b.co"
	errs = ValidateShipmentForm(form)
	if _, ok := errs["customerEmail"]; ok {
		t.Fatalf("expected email error to clear, got %+v", errs)
	}
}

func TestValidateShipmentFormTrimsWhitespace(t *testing.T) {
	form := validShipmentForm()
	form.CustomerName = "   "
	errs := ValidateShipmentForm(form)
	if errs["customerName"] != "Customer name is required" {
		t.Fatalf("whitespace-only name should be rejected, got %+v", errs)
	}

	form = validShipmentForm()
	form.CustomerName = "  Acme  "
	if errs := ValidateShipmentForm(form); len(errs) != 0 {
		t.Fatalf("expected trimmed form to pass, got %+v", errs)
	}
	if form.CustomerName != "Acme" {
		t.Fatalf("expected name to be trimmed, got %q", form.CustomerName)
	}
}

func TestValidateEnquiryForm(t *testing.T) {
	errs := ValidateEnquiryForm(&EnquiryForm{})
	for _, field := range []string{"name", "email", "subject", "message"} {
		if errs[field] == "" {
			t.Fatalf("expected error for field %s, got %+v", field, errs)
		}
	}

	form := &EnquiryForm{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Quote",
		Message: "Need a quote",
	}
	if errs := ValidateEnquiryForm(form); len(errs) != 0 {
		t.Fatalf("expected valid enquiry form, got %+v", errs)
	}
}
