package usecase

import (
	"context"
	"fmt"
	"strings"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/lead"
	"notification-admin/internal/lead/repository"
	"notification-admin/internal/model"
	"notification-admin/pkg/querycache"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip lead.CreateInput) (model.Lead, error) {
	if err := validateCreateInput(ip); err != nil {
		return model.Lead{}, err
	}

	email := strings.ToLower(strings.TrimSpace(ip.Email))

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: email}); err == nil {
		return model.Lead{}, lead.ErrEmailExists
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.lead.usecase.Create.repo.GetOne: %v", err)
		return model.Lead{}, err
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Lead: model.Lead{
			Name:        strings.TrimSpace(ip.Name),
			Email:       email,
			Phone:       ip.Phone,
			Message:     ip.Message,
			UTMSource:   ip.UTMSource,
			UTMMedium:   ip.UTMMedium,
			UTMCampaign: ip.UTMCampaign,
			FunnelID:    ip.FunnelID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Create.repo.Create: %v", err)
		return model.Lead{}, err
	}

	if _, err := uc.alerts.Create(ctx, sc, alertfeed.CreateInput{
		Type:    model.AlertTypeLeadNew,
		Title:   fmt.Sprintf("New lead: %s", created.Name),
		Message: fmt.Sprintf("%s <%s> submitted the contact form", created.Name, created.Email),
		LeadID:  created.ID,
	}); err != nil {
		// The lead is stored; a missing alert is not worth failing the capture.
		uc.l.Errorf(ctx, "internal.lead.usecase.Create.alerts.Create: %v", err)
	}

	if err := uc.dispatcher.NotifyLead(ctx, sc, created); err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Create.dispatcher.NotifyLead: %v", err)
	}

	if err := uc.cache.Invalidate(ctx, cacheCollection); err != nil {
		uc.l.Warnf(ctx, "internal.lead.usecase.Create.cache.Invalidate: %v", err)
	}

	return created, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip lead.GetInput) (lead.GetOutput, error) {
	ip.PaginateQuery.Adjust()
	key := fmt.Sprintf("email=%s|utm=%s|q=%s|page=%d|limit=%d",
		ip.Filter.Email, ip.Filter.UTMSource, ip.Filter.Search,
		ip.PaginateQuery.Page, ip.PaginateQuery.Limit)

	out, err := querycache.GetOrLoad(ctx, uc.cache, cacheCollection, key, func(ctx context.Context) (lead.GetOutput, error) {
		leads, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
			Filter: repository.Filter{
				Email:     ip.Filter.Email,
				UTMSource: ip.Filter.UTMSource,
				Search:    ip.Filter.Search,
			},
			PaginateQuery: ip.PaginateQuery,
		})
		if err != nil {
			return lead.GetOutput{}, err
		}

		return lead.GetOutput{Leads: leads, Paginator: pag}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Get.GetOrLoad: %v", err)
		return lead.GetOutput{}, err
	}

	return out, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	l, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Lead{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "internal.lead.usecase.Detail.repo.Detail: %v", err)
		return model.Lead{}, err
	}

	return l, nil
}
