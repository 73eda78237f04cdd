package repository

import (
	"fmt"

	"mawasim/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBMerchantRepo struct {
	app pbCore.App
}

func NewMerchantRepo(app pbCore.App) core.MerchantRepository {
	return &PBMerchantRepo{app: app}
}

func (r *PBMerchantRepo) toDomain(record *pbCore.Record) *core.Merchant {
	return &core.Merchant{
		MerchantProfile: core.MerchantProfile{
			StoreName:    record.GetString("store_name"),
			BusinessType: record.GetString("business_type"),
			Country:      record.GetString("country"),
			Phone:        record.GetString("phone"),
			Email:        record.Email(),
			Logo:         record.GetString("logo"),
			PrimaryColor: record.GetString("primary_color"),
			Platforms:    record.GetStringSlice("platforms"),
		},
		ID:        record.Id,
		CreatedAt: record.GetString("created"),
		Status:    core.MerchantStatus(record.GetString("status")),
		FCMToken:  record.GetString("fcm_token"),
	}
}

func (r *PBMerchantRepo) apply(record *pbCore.Record, m *core.Merchant) {
	record.Set("store_name", m.StoreName)
	record.Set("business_type", m.BusinessType)
	record.Set("country", m.Country)
	record.Set("phone", m.Phone)
	record.Set("email", m.Email)
	record.Set("logo", m.Logo)
	record.Set("primary_color", m.PrimaryColor)
	record.Set("platforms", m.Platforms)
	record.Set("status", string(m.Status))
	record.Set("fcm_token", m.FCMToken)
}

func (r *PBMerchantRepo) GetByID(id string) (*core.Merchant, error) {
	record, err := r.app.FindRecordById("merchants", id)
	if err != nil {
		return nil, fmt.Errorf("merchant %s: %w", id, core.ErrNotFound)
	}
	return r.toDomain(record), nil
}

func (r *PBMerchantRepo) GetAll() ([]core.Merchant, error) {
	records, err := r.app.FindRecordsByFilter("merchants", "", "+created", 500, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}

	merchants := make([]core.Merchant, 0, len(records))
	for _, rec := range records {
		merchants = append(merchants, *r.toDomain(rec))
	}
	return merchants, nil
}

func (r *PBMerchantRepo) Create(m *core.Merchant, password string) error {
	collection, err := r.app.FindCollectionByNameOrId("merchants")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	r.apply(record, m)
	record.Set("verified", true)
	record.SetPassword(password)

	if err := r.app.Save(record); err != nil {
		return err
	}

	m.ID = record.Id
	m.CreatedAt = record.GetString("created")
	return nil
}

// Update is a full-replace upsert of the profile fields.
// The password is never touched here.
func (r *PBMerchantRepo) Update(m *core.Merchant) error {
	record, err := r.app.FindRecordById("merchants", m.ID)
	if err != nil {
		return fmt.Errorf("merchant %s: %w", m.ID, core.ErrNotFound)
	}

	r.apply(record, m)
	return r.app.Save(record)
}

// Delete is a hard delete, no soft-delete or tombstone.
func (r *PBMerchantRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("merchants", id)
	if err != nil {
		return fmt.Errorf("merchant %s: %w", id, core.ErrNotFound)
	}
	return r.app.Delete(record)
}
