package service

import (
	"errors"
	"strings"
	"testing"

	"mawasim/internal/core"
)

func TestMerchantList_Search(t *testing.T) {
	repo := newFakeMerchantRepo(
		validMerchant("m1", "Elite Fashion", "info@elitefashion.com"),
		validMerchant("m2", "Techno Zone", "hello@technozone.sa"),
		validMerchant("m3", "Home Taste", "order@hometaste.com"),
	)
	svc := NewMerchantService(repo)

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"elite", 1},         // store name, case-insensitive
		{"TECHNOZONE", 1},    // email, case-insensitive
		{"o", 3},             // substring match
		{"nonexistent", 0},
	}

	for _, tt := range tests {
		got, err := svc.List(tt.query)
		if err != nil {
			t.Fatalf("List(%q): %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("List(%q) returned %d merchants; want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestMerchantCreate_Validation(t *testing.T) {
	svc := NewMerchantService(newFakeMerchantRepo())

	m := validMerchant("", "New Store", "new@store.sa")
	m.BusinessType = "unicorns"
	if err := svc.Create(&m, "supersecret"); !errors.Is(err, core.ErrInvalid) {
		t.Errorf("unknown business type must be rejected, got %v", err)
	}

	m = validMerchant("", "New Store", "new@store.sa")
	if err := svc.Create(&m, "short"); !errors.Is(err, core.ErrInvalid) {
		t.Errorf("short password must be rejected, got %v", err)
	}

	m = validMerchant("", "", "new@store.sa")
	if err := svc.Create(&m, "supersecret"); !errors.Is(err, core.ErrInvalid) {
		t.Errorf("empty store name must be rejected, got %v", err)
	}
}

func TestMerchantCreate_DefaultsToActive(t *testing.T) {
	svc := NewMerchantService(newFakeMerchantRepo())

	m := validMerchant("", "New Store", "new@store.sa")
	m.Status = ""
	if err := svc.Create(&m, "supersecret"); err != nil {
		t.Fatal(err)
	}
	if m.Status != core.MerchantActive {
		t.Errorf("new merchants default to active, got %q", m.Status)
	}
}

func TestMerchantUpdate_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeMerchantRepo(validMerchant("m1", "Store", "a@b.sa"))
	svc := NewMerchantService(repo)

	m := validMerchant("m1", "Store", "a@b.sa")
	m.Status = "suspended"
	if err := svc.Update(&m); !errors.Is(err, core.ErrInvalid) {
		t.Errorf("unknown status must be rejected, got %v", err)
	}
}

func TestMerchantDelete_HardDelete(t *testing.T) {
	repo := newFakeMerchantRepo(validMerchant("m1", "Store", "a@b.sa"))
	svc := NewMerchantService(repo)

	if err := svc.Delete("m1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get("m1"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("deleted merchant should be gone, got %v", err)
	}
}

func TestMerchantExportCSV(t *testing.T) {
	repo := newFakeMerchantRepo(validMerchant("m1", "Elite Fashion", "info@elitefashion.com"))
	svc := NewMerchantService(repo)

	data, err := svc.ExportCSV("")
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "id,store_name,business_type,country,email,phone,created_at,status") {
		t.Errorf("missing CSV header:\n%s", out)
	}
	if !strings.Contains(out, "Elite Fashion") || !strings.Contains(out, "info@elitefashion.com") {
		t.Errorf("missing merchant row:\n%s", out)
	}
}
