package usecase

import (
	"context"
	"fmt"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/alertfeed/repository"
	"notification-admin/internal/model"
	"notification-admin/pkg/querycache"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip alertfeed.GetInput) (alertfeed.GetOutput, error) {
	if ip.Filter.Type != "" && !model.AlertType(ip.Filter.Type).IsValid() {
		return alertfeed.GetOutput{}, alertfeed.ErrInvalidType
	}

	ip.PaginateQuery.Adjust()
	key := fmt.Sprintf("type=%s|unread=%t|page=%d|limit=%d",
		ip.Filter.Type, ip.Filter.UnreadOnly, ip.PaginateQuery.Page, ip.PaginateQuery.Limit)

	out, err := querycache.GetOrLoad(ctx, uc.cache, cacheCollection, key, func(ctx context.Context) (alertfeed.GetOutput, error) {
		alerts, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
			Filter: repository.Filter{
				Type:       ip.Filter.Type,
				UnreadOnly: ip.Filter.UnreadOnly,
			},
			PaginateQuery: ip.PaginateQuery,
		})
		if err != nil {
			return alertfeed.GetOutput{}, err
		}

		unread, err := uc.repo.CountUnread(ctx, sc)
		if err != nil {
			return alertfeed.GetOutput{}, err
		}

		return alertfeed.GetOutput{
			Alerts:      alerts,
			Paginator:   pag,
			UnreadCount: unread,
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertfeed.usecase.Get.GetOrLoad: %v", err)
		return alertfeed.GetOutput{}, err
	}

	return out, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip alertfeed.CreateInput) (model.AdminAlert, error) {
	if !ip.Type.IsValid() {
		return model.AdminAlert{}, alertfeed.ErrInvalidType
	}

	alert, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Alert: model.AdminAlert{
			Type:    ip.Type,
			Title:   ip.Title,
			Message: ip.Message,
			LeadID:  ip.LeadID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertfeed.usecase.Create.repo.Create: %v", err)
		return model.AdminAlert{}, err
	}

	uc.invalidate(ctx)

	return alert, nil
}

func (uc *usecase) MarkRead(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error) {
	alert, err := uc.repo.MarkRead(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AdminAlert{}, alertfeed.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alertfeed.usecase.MarkRead.repo.MarkRead: %v", err)
		return model.AdminAlert{}, err
	}

	uc.invalidate(ctx)

	return alert, nil
}

func (uc *usecase) MarkAllRead(ctx context.Context, sc model.Scope) (int64, error) {
	count, err := uc.repo.MarkAllRead(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertfeed.usecase.MarkAllRead.repo.MarkAllRead: %v", err)
		return 0, err
	}

	uc.invalidate(ctx)

	return count, nil
}

func (uc *usecase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx, cacheCollection); err != nil {
		uc.l.Warnf(ctx, "internal.alertfeed.usecase.invalidate: %v", err)
	}
}
