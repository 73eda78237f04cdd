package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"mawasim/internal/core"
)

// MerchantService is the admin surface over merchant accounts: listing
// with client-grade search, create, full-replace update, hard delete and
// CSV export.
type MerchantService struct {
	repo core.MerchantRepository
}

func NewMerchantService(repo core.MerchantRepository) *MerchantService {
	return &MerchantService{repo: repo}
}

// List returns merchants matching the query: case-insensitive substring
// match on store name or email. An empty query returns everyone.
func (s *MerchantService) List(query string) ([]core.Merchant, error) {
	merchants, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return merchants, nil
	}

	q := strings.ToLower(query)
	matched := make([]core.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if strings.Contains(strings.ToLower(m.StoreName), q) ||
			strings.Contains(strings.ToLower(m.Email), q) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (s *MerchantService) Get(id string) (*core.Merchant, error) {
	return s.repo.GetByID(id)
}

// Create validates the profile and registers a new merchant account.
func (s *MerchantService) Create(m *core.Merchant, password string) error {
	if err := m.MerchantProfile.Validate(); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", core.ErrInvalid)
	}
	if m.Status == "" {
		m.Status = core.MerchantActive
	}
	return s.repo.Create(m, password)
}

// Update is a full-replace upsert of the merchant's profile and status.
func (s *MerchantService) Update(m *core.Merchant) error {
	if err := m.MerchantProfile.Validate(); err != nil {
		return err
	}
	switch m.Status {
	case core.MerchantActive, core.MerchantInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", core.ErrInvalid, m.Status)
	}
	return s.repo.Update(m)
}

// Delete removes the merchant account permanently.
func (s *MerchantService) Delete(id string) error {
	return s.repo.Delete(id)
}

// ExportCSV renders the filtered merchant list as a CSV document.
func (s *MerchantService) ExportCSV(query string) ([]byte, error) {
	merchants, err := s.List(query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "store_name", "business_type", "country", "email", "phone", "created_at", "status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, m := range merchants {
		row := []string{m.ID, m.StoreName, m.BusinessType, m.Country, m.Email, m.Phone, m.CreatedAt, string(m.Status)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
