package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
)

func statusLabel(lang i18n.Lang, s vo.Status) string {
	return i18n.Label(lang, s.String(), s.Label())
}

func priorityLabel(lang i18n.Lang, p vo.Priority) string {
	return i18n.Label(lang, p.String(), p.Label())
}

// Populator resolves the ids a request holds into display references. It
// loads each referenced collection once per call regardless of how many
// requests are passed in.
type Populator struct {
	requestRepo  request.Repository
	customerRepo customer.Repository
	tagRepo      tag.Repository
	userRepo     user.Repository
}

func NewPopulator(requestRepo request.Repository, customerRepo customer.Repository, tagRepo tag.Repository, userRepo user.Repository) *Populator {
	return &Populator{
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
	}
}

func (p *Populator) PopulateOne(ctx context.Context, r *request.Request, lang i18n.Lang) (*dto.RequestDTO, error) {
	out, err := p.Populate(ctx, []*request.Request{r}, lang)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (p *Populator) Populate(ctx context.Context, requests []*request.Request, lang i18n.Lang) ([]dto.RequestDTO, error) {
	var customerIDs, tagIDs, requestIDs, userIDs []uint
	for _, r := range requests {
		customerIDs = append(customerIDs, r.CustomerIDs()...)
		tagIDs = append(tagIDs, r.TagIDs()...)
		requestIDs = append(requestIDs, r.RelatedIDs()...)
		if parent := r.ParentID(); parent != nil {
			requestIDs = append(requestIDs, *parent)
		}
		userIDs = append(userIDs, r.ReferencedUserIDs()...)
	}

	customers, err := p.customerRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	customerByID := make(map[uint]dto.CustomerRefDTO, len(customers))
	for _, c := range customers {
		customerByID[c.ID()] = dto.CustomerRefDTO{ID: c.ID(), Name: c.Name(), Company: c.Company(), Email: c.Email()}
	}

	tags, err := p.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	tagByID := make(map[uint]dto.TagRefDTO, len(tags))
	for _, t := range tags {
		tagByID[t.ID()] = dto.TagRefDTO{ID: t.ID(), Name: t.Name(), Color: t.Color(), Category: t.Category().String()}
	}

	summaries, err := p.requestRepo.GetSummaries(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	summaryByID := make(map[uint]dto.RequestRefDTO, len(summaries))
	for _, s := range summaries {
		summaryByID[s.ID] = dto.RequestRefDTO{ID: s.ID, RequestNumber: s.Number, Title: s.Title}
	}

	users, err := p.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[uint]dto.UserRefDTO, len(users))
	for _, u := range users {
		userByID[u.ID()] = dto.UserRefDTO{ID: u.ID(), Name: u.Name()}
	}
	userRef := func(id uint) *dto.UserRefDTO {
		if u, ok := userByID[id]; ok {
			return &u
		}
		return nil
	}

	out := make([]dto.RequestDTO, 0, len(requests))
	for _, r := range requests {
		item := dto.RequestDTO{
			ID:              r.ID(),
			RequestNumber:   r.Number(),
			Sequence:        r.Sequence(),
			Title:           r.Title(),
			Content:         r.Content(),
			Reporter:        r.Reporter(),
			Status:          r.Status().String(),
			StatusLabel:     statusLabel(lang, r.Status()),
			Priority:        r.Priority().String(),
			PriorityLabel:   priorityLabel(lang, r.Priority()),
			Customers:       pick(r.CustomerIDs(), customerByID),
			Tags:            pick(r.TagIDs(), tagByID),
			RelatedRequests: pick(r.RelatedIDs(), summaryByID),
			CustomFields:    r.CustomFields(),
			Comments:        make([]dto.CommentDTO, 0, len(r.Comments())),
			History:         make([]dto.HistoryDTO, 0, len(r.History())),
			CreatedBy:       userRef(r.CreatedBy()),
			UpdatedBy:       userRef(r.UpdatedBy()),
			CreatedAt:       r.CreatedAt(),
			UpdatedAt:       r.UpdatedAt(),
		}
		if item.CustomFields == nil {
			item.CustomFields = map[string]any{}
		}
		if parent := r.ParentID(); parent != nil {
			if s, ok := summaryByID[*parent]; ok {
				item.ParentRequest = &s
			}
		}
		for _, c := range r.Comments() {
			item.Comments = append(item.Comments, dto.CommentDTO{
				ID:          c.ID(),
				Content:     c.Content(),
				Author:      userRef(c.AuthorID()),
				Attachments: c.Attachments(),
				CreatedAt:   c.CreatedAt(),
			})
		}
		for _, h := range r.History() {
			change := h.Change()
			item.History = append(item.History, dto.HistoryDTO{
				Field:     string(h.Field()),
				OldValue:  change.OldValue(),
				NewValue:  change.NewValue(),
				ChangedBy: userRef(h.ChangedBy()),
				ChangedAt: h.ChangedAt(),
			})
		}
		out = append(out, item)
	}
	return out, nil
}

// pick keeps the order of ids and drops the ones missing from byID.
func pick[T any](ids []uint, byID map[uint]T) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
