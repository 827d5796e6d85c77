// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"teamup-service/internal/usecase"

	"go.uber.org/zap"
)

// Handler exposes the usecase layer over HTTP.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
