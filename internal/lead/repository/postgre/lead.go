package postgres

import (
	"context"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"notification-admin/internal/lead/repository"
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
	postgresPkg "notification-admin/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Lead, paginator.Paginator, error) {
	q := r.db.WithContext(ctx).Model(&leadRow{})
	if opts.Filter.Email != "" {
		q = q.Where("email = ?", strings.ToLower(opts.Filter.Email))
	}
	if opts.Filter.UTMSource != "" {
		q = q.Where("utm_source = ?", opts.Filter.UTMSource)
	}
	if opts.Filter.Search != "" {
		pattern := "%" + opts.Filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "counting leads")
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []leadRow
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Get.Find: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "listing leads")
	}

	res := make([]model.Lead, len(rows))
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

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Detail.IsUUID: %v", err)
		return model.Lead{}, err
	}

	var row leadRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Lead{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Detail.First: %v", err)
		return model.Lead{}, errors.Wrap(err, "fetching lead")
	}

	return row.toModel(), nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Lead, error) {
	q := r.db.WithContext(ctx)
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.lead.repository.postgres.GetOne.IsUUID: %v", err)
			return model.Lead{}, err
		}
		q = q.Where("id = ?", opts.ID)
	case opts.Email != "":
		q = q.Where("email = ?", strings.ToLower(opts.Email))
	default:
		return model.Lead{}, repository.ErrNotFound
	}

	var row leadRow
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Lead{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.lead.repository.postgres.GetOne.First: %v", err)
		return model.Lead{}, errors.Wrap(err, "fetching lead")
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Lead, error) {
	l := opts.Lead
	if l.ID == "" {
		l.ID = uuid.NewString()
	} else if err := postgresPkg.IsUUID(l.ID); err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Create.IsUUID: %v", err)
		return model.Lead{}, err
	}

	l.Email = strings.ToLower(l.Email)
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.clock()
	}

	row := newLeadRow(l)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.postgres.Create.Create: %v", err)
		return model.Lead{}, errors.Wrap(err, "creating lead")
	}

	return row.toModel(), nil
}
