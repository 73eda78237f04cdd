package service

import (
	"context"
	"errors"
	"fmt"

	"mawasim/internal/core"
)

// In-memory fakes for the port interfaces.

type fakeEventRepo struct {
	events   map[string]core.MarketingEvent
	order    []string
	failNext error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]core.MarketingEvent{}}
}

func (r *fakeEventRepo) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakeEventRepo) List() ([]core.MarketingEvent, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	out := make([]core.MarketingEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}
	return out, nil
}

func (r *fakeEventRepo) GetByID(id string) (*core.MarketingEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) Save(e core.MarketingEvent) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	if _, exists := r.events[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) Delete(id string) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	if _, exists := r.events[id]; exists {
		delete(r.events, id)
		for i, existing := range r.order {
			if existing == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

type fakeMerchantRepo struct {
	merchants map[string]core.Merchant
}

func newFakeMerchantRepo(merchants ...core.Merchant) *fakeMerchantRepo {
	r := &fakeMerchantRepo{merchants: map[string]core.Merchant{}}
	for _, m := range merchants {
		r.merchants[m.ID] = m
	}
	return r
}

func (r *fakeMerchantRepo) GetByID(id string) (*core.Merchant, error) {
	m, ok := r.merchants[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &m, nil
}

func (r *fakeMerchantRepo) GetAll() ([]core.Merchant, error) {
	out := make([]core.Merchant, 0, len(r.merchants))
	// Deterministic-enough for tests that only count.
	for _, m := range r.merchants {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMerchantRepo) Create(m *core.Merchant, password string) error {
	if m.ID == "" {
		m.ID = fmt.Sprintf("m%d", len(r.merchants)+1)
	}
	r.merchants[m.ID] = *m
	return nil
}

func (r *fakeMerchantRepo) Update(m *core.Merchant) error {
	if _, ok := r.merchants[m.ID]; !ok {
		return core.ErrNotFound
	}
	r.merchants[m.ID] = *m
	return nil
}

func (r *fakeMerchantRepo) Delete(id string) error {
	if _, ok := r.merchants[id]; !ok {
		return core.ErrNotFound
	}
	delete(r.merchants, id)
	return nil
}

type fakeContentRepo struct {
	byMerchant map[string][]core.GeneratedContent
	failNext   error
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{byMerchant: map[string][]core.GeneratedContent{}}
}

func (r *fakeContentRepo) Append(merchantID string, c core.GeneratedContent) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	// Newest first, like the backing query.
	r.byMerchant[merchantID] = append([]core.GeneratedContent{c}, r.byMerchant[merchantID]...)
	return nil
}

func (r *fakeContentRepo) ListByMerchant(merchantID string) ([]core.GeneratedContent, error) {
	return r.byMerchant[merchantID], nil
}

// fakeGenerator scripts the generative AI collaborator.
type fakeGenerator struct {
	copyText   string
	imageURL   string
	videoURI   string
	pollsUntil int // polls needed before the operation reports done
	polls      int
	prompts    []string
	err        error
}

func (g *fakeGenerator) GenerateCopy(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.copyText, nil
}

func (g *fakeGenerator) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.imageURL, nil
}

func (g *fakeGenerator) StartVideo(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return "operations/fake-video", nil
}

func (g *fakeGenerator) PollVideo(ctx context.Context, operation string) (bool, string, error) {
	g.polls++
	if g.polls >= g.pollsUntil {
		return true, g.videoURI, nil
	}
	return false, "", nil
}

func (g *fakeGenerator) DownloadVideo(ctx context.Context, uri string) ([]byte, error) {
	return []byte("mp4:" + uri), nil
}

type fakeSender struct {
	sent []string // "token|eventID"
	err  error
}

func (s *fakeSender) SendEventReminder(ctx context.Context, token string, event core.MarketingEvent, daysLeft int) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, token+"|"+event.ID)
	return nil
}

var errStorageDown = errors.New("storage down")

func validEvent(id, date string, priority core.Priority) core.MarketingEvent {
	return core.MarketingEvent{
		ID:          id,
		Title:       core.LocalizedText{AR: "مناسبة " + id, EN: "Event " + id},
		Description: core.LocalizedText{AR: "وصف", EN: "Description"},
		Date:        date,
		Type:        core.EventCommercial,
		Priority:    priority,
	}
}

func validMerchant(id, store, email string) core.Merchant {
	return core.Merchant{
		MerchantProfile: core.MerchantProfile{
			StoreName:    store,
			BusinessType: "retail",
			Country:      "SA",
			Phone:        "+966500000000",
			Email:        email,
			PrimaryColor: "#6366f1",
			Platforms:    []string{"Instagram"},
		},
		ID:     id,
		Status: core.MerchantActive,
	}
}
