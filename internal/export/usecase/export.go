package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/export"
	"notification-admin/internal/model"
	notifRepo "notification-admin/internal/notification/repository"
)

var csvHeader = []string{
	"id", "lead_id", "funnel_id", "channel", "recipient", "subject",
	"status", "attempts", "error_message", "sent_at", "created_at",
}

func (uc *usecase) ExportNotifications(ctx context.Context, sc model.Scope, ip export.ExportInput) (export.ExportOutput, error) {
	if !sc.CanMutate() {
		return export.ExportOutput{}, export.ErrUnauthorized
	}

	notifs, err := uc.repo.List(ctx, sc, notifRepo.ListOptions{
		Filter: notifRepo.Filter{
			Channel:   ip.Filter.Channel,
			Status:    ip.Filter.Status,
			LeadID:    ip.Filter.LeadID,
			StartDate: ip.Filter.StartDate,
			EndDate:   ip.Filter.EndDate,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.export.usecase.ExportNotifications.repo.List: %v", err)
		return export.ExportOutput{}, err
	}

	if len(notifs) == 0 {
		return export.ExportOutput{}, export.ErrNoRows
	}

	data, err := buildCSV(notifs)
	if err != nil {
		uc.l.Errorf(ctx, "internal.export.usecase.ExportNotifications.buildCSV: %v", err)
		return export.ExportOutput{}, err
	}

	objectName := fmt.Sprintf("exports/notifications-%s.csv", uc.clock().UTC().Format("20060102-150405"))
	if _, err := uc.minio.Upload(ctx, objectName, data, "text/csv"); err != nil {
		uc.l.Errorf(ctx, "internal.export.usecase.ExportNotifications.minio.Upload: %v", err)
		return export.ExportOutput{}, err
	}

	url, err := uc.minio.PresignedGetURL(ctx, objectName, downloadURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "internal.export.usecase.ExportNotifications.minio.PresignedGetURL: %v", err)
		return export.ExportOutput{}, err
	}

	if _, err := uc.alerts.Create(ctx, sc, alertfeed.CreateInput{
		Type:    model.AlertTypeExportComplete,
		Title:   "Notification export ready",
		Message: fmt.Sprintf("%d rows exported to %s", len(notifs), objectName),
	}); err != nil {
		uc.l.Errorf(ctx, "internal.export.usecase.ExportNotifications.alerts.Create: %v", err)
	}

	return export.ExportOutput{
		ObjectName:  objectName,
		DownloadURL: url,
		RowCount:    len(notifs),
	}, nil
}

func buildCSV(notifs []model.DeliveryNotification) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, n := range notifs {
		sentAt := ""
		if n.SentAt != nil {
			sentAt = n.SentAt.Format(time.RFC3339)
		}

		record := []string{
			n.ID,
			n.LeadID,
			n.FunnelID,
			n.Channel.String(),
			n.Recipient,
			n.Subject,
			n.Status.String(),
			strconv.Itoa(n.Attempts),
			n.ErrorMessage,
			sentAt,
			n.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
