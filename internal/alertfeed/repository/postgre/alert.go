package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"notification-admin/internal/alertfeed/repository"
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
	postgresPkg "notification-admin/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.AdminAlert, paginator.Paginator, error) {
	q := r.db.WithContext(ctx).Model(&alertRow{})
	if opts.Filter.Type != "" {
		q = q.Where("type = ?", opts.Filter.Type)
	}
	if opts.Filter.UnreadOnly {
		q = q.Where("read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "counting alerts")
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []alertRow
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Get.Find: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "listing alerts")
	}

	res := make([]model.AdminAlert, len(rows))
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

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Detail.IsUUID: %v", err)
		return model.AdminAlert{}, err
	}

	var row alertRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AdminAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Detail.First: %v", err)
		return model.AdminAlert{}, errors.Wrap(err, "fetching alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AdminAlert, error) {
	a := opts.Alert
	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if err := postgresPkg.IsUUID(a.ID); err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Create.IsUUID: %v", err)
		return model.AdminAlert{}, err
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.clock()
	}

	row := newAlertRow(a)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.Create.Create: %v", err)
		return model.AdminAlert{}, errors.Wrap(err, "creating alert")
	}

	return row.toModel(), nil
}

// MarkRead is monotonic: an already-read alert keeps its original read_at.
func (r *implRepository) MarkRead(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.MarkRead.IsUUID: %v", err)
		return model.AdminAlert{}, err
	}

	tx := r.db.WithContext(ctx).Model(&alertRow{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", null.TimeFrom(r.clock()))
	if tx.Error != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.MarkRead.Update: %v", tx.Error)
		return model.AdminAlert{}, errors.Wrap(tx.Error, "marking alert read")
	}

	var row alertRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AdminAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.MarkRead.Reload: %v", err)
		return model.AdminAlert{}, errors.Wrap(err, "reloading alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) MarkAllRead(ctx context.Context, sc model.Scope) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&alertRow{}).
		Where("read_at IS NULL").
		Update("read_at", null.TimeFrom(r.clock()))
	if tx.Error != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.MarkAllRead.Update: %v", tx.Error)
		return 0, errors.Wrap(tx.Error, "marking all alerts read")
	}

	return tx.RowsAffected, nil
}

func (r *implRepository) CountUnread(ctx context.Context, sc model.Scope) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&alertRow{}).
		Where("read_at IS NULL").
		Count(&count).Error; err != nil {
		r.l.Errorf(ctx, "internal.alertfeed.repository.postgres.CountUnread.Count: %v", err)
		return 0, errors.Wrap(err, "counting unread alerts")
	}

	return count, nil
}
