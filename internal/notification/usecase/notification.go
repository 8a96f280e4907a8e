package usecase

import (
	"context"
	"fmt"
	"time"

	"notification-admin/internal/model"
	"notification-admin/internal/notification"
	"notification-admin/internal/notification/repository"
	"notification-admin/pkg/querycache"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip notification.GetInput) (notification.GetOutput, error) {
	if ip.Filter.Channel != "" && !model.Channel(ip.Filter.Channel).IsValid() {
		return notification.GetOutput{}, notification.ErrInvalidChannel
	}
	if ip.Filter.Status != "" && !model.DeliveryStatus(ip.Filter.Status).IsValid() {
		return notification.GetOutput{}, notification.ErrInvalidStatus
	}

	ip.PaginateQuery.Adjust()
	key := getCacheKey(ip)

	out, err := querycache.GetOrLoad(ctx, uc.cache, cacheCollection, key, func(ctx context.Context) (notification.GetOutput, error) {
		notifs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
			Filter: repository.Filter{
				Channel:   ip.Filter.Channel,
				Status:    ip.Filter.Status,
				LeadID:    ip.Filter.LeadID,
				StartDate: ip.Filter.StartDate,
				EndDate:   ip.Filter.EndDate,
			},
			PaginateQuery: ip.PaginateQuery,
		})
		if err != nil {
			return notification.GetOutput{}, err
		}

		return notification.GetOutput{
			Notifications: notifs,
			Paginator:     pag,
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Get.GetOrLoad: %v", err)
		return notification.GetOutput{}, err
	}

	return out, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error) {
	n, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.DeliveryNotification{}, notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.Detail.repo.Detail: %v", err)
		return model.DeliveryNotification{}, err
	}

	return n, nil
}

func (uc *usecase) Retry(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error) {
	if !sc.CanMutate() {
		return model.DeliveryNotification{}, notification.ErrUnauthorized
	}

	n, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.DeliveryNotification{}, notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.Retry.repo.Detail: %v", err)
		return model.DeliveryNotification{}, err
	}

	if !n.CanRetry() {
		return model.DeliveryNotification{}, notification.ErrNotRetryable
	}

	status := model.DeliveryStatusRetrying
	errMsg := ""
	nextRetry := time.Now()
	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:           id,
		Status:       &status,
		ErrorMessage: &errMsg,
		NextRetryAt:  &nextRetry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Retry.repo.Update: %v", err)
		return model.DeliveryNotification{}, err
	}

	if err := uc.cache.Invalidate(ctx, cacheCollection); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.Retry.cache.Invalidate: %v", err)
	}

	return updated, nil
}

func getCacheKey(ip notification.GetInput) string {
	var start, end int64
	if ip.Filter.StartDate != nil {
		start = ip.Filter.StartDate.Unix()
	}
	if ip.Filter.EndDate != nil {
		end = ip.Filter.EndDate.Unix()
	}

	return fmt.Sprintf("ch=%s|st=%s|lead=%s|from=%d|to=%d|page=%d|limit=%d",
		ip.Filter.Channel, ip.Filter.Status, ip.Filter.LeadID,
		start, end,
		ip.PaginateQuery.Page, ip.PaginateQuery.Limit,
	)
}
