package http

import (
	"notification-admin/internal/alertfeed"
	"notification-admin/pkg/discord"
	"notification-admin/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc alertfeed.UseCase
	d  discord.IDiscord
}

func New(l log.Logger, uc alertfeed.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
