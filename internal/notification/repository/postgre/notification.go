package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"notification-admin/internal/model"
	"notification-admin/internal/notification/repository"
	"notification-admin/pkg/paginator"
	postgresPkg "notification-admin/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error) {
	q, err := r.buildFilterQuery(ctx, r.db.WithContext(ctx).Model(&notificationRow{}), opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.buildFilterQuery: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "counting notifications")
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []notificationRow
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Find: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "listing notifications")
	}

	res := make([]model.DeliveryNotification, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}

	return res, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Detail.IsUUID: %v", err)
		return model.DeliveryNotification{}, err
	}

	var row notificationRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DeliveryNotification{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Detail.First: %v", err)
		return model.DeliveryNotification{}, errors.Wrap(err, "fetching notification")
	}

	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.DeliveryNotification, error) {
	q, err := r.buildFilterQuery(ctx, r.db.WithContext(ctx).Model(&notificationRow{}), opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.List.buildFilterQuery: %v", err)
		return nil, err
	}

	var rows []notificationRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.List.Find: %v", err)
		return nil, errors.Wrap(err, "listing notifications")
	}

	res := make([]model.DeliveryNotification, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.DeliveryNotification, error) {
	n := opts.Notification
	if n.ID == "" {
		n.ID = uuid.NewString()
	} else if err := postgresPkg.IsUUID(n.ID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Create.IsUUID: %v", err)
		return model.DeliveryNotification{}, err
	}

	now := r.clock()
	n.CreatedAt = now
	n.UpdatedAt = now

	row := newNotificationRow(n)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Create.Create: %v", err)
		return model.DeliveryNotification{}, errors.Wrap(err, "creating notification")
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.DeliveryNotification, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Update.IsUUID: %v", err)
		return model.DeliveryNotification{}, err
	}

	updates := map[string]interface{}{
		"updated_at": r.clock(),
	}
	if opts.Status != nil {
		updates["status"] = opts.Status.String()
	}
	if opts.Attempts != nil {
		updates["attempts"] = *opts.Attempts
	}
	if opts.ErrorMessage != nil {
		if *opts.ErrorMessage == "" {
			updates["error_message"] = null.String{}
		} else {
			updates["error_message"] = null.StringFrom(*opts.ErrorMessage)
		}
	}
	if opts.NextRetryAt != nil {
		updates["next_retry_at"] = null.TimeFrom(*opts.NextRetryAt)
	}
	if opts.SentAt != nil {
		updates["sent_at"] = null.TimeFrom(*opts.SentAt)
	}

	tx := r.db.WithContext(ctx).Model(&notificationRow{}).Where("id = ?", opts.ID).Updates(updates)
	if tx.Error != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Update.Updates: %v", tx.Error)
		return model.DeliveryNotification{}, errors.Wrap(tx.Error, "updating notification")
	}
	if tx.RowsAffected == 0 {
		return model.DeliveryNotification{}, repository.ErrNotFound
	}

	var row notificationRow
	if err := r.db.WithContext(ctx).Where("id = ?", opts.ID).First(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Update.Reload: %v", err)
		return model.DeliveryNotification{}, errors.Wrap(err, "reloading notification")
	}

	return row.toModel(), nil
}

func (r *implRepository) ListDue(ctx context.Context, opts repository.ListDueOptions) ([]model.DeliveryNotification, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows []notificationRow
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []string{model.DeliveryStatusPending.String(), model.DeliveryStatusRetrying.String()}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", opts.Now).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListDue.Find: %v", err)
		return nil, errors.Wrap(err, "listing due notifications")
	}

	res := make([]model.DeliveryNotification, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, nil
}
