package home

import (
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/registry"
	"github.com/angristan/home-tui/internal/wifi"
)

// Errors surfaced by Home, re-exported so callers only need one import
var (
	ErrInvalidIntensity = models.ErrInvalidIntensity
	ErrInvalidTime      = models.ErrInvalidTime
	ErrInvalidEdge      = models.ErrInvalidEdge
	ErrUnknownRoom      = registry.ErrUnknownRoom
	ErrGateClosed       = wifi.ErrGateClosed
	ErrWifiOff          = wifi.ErrWifiOff
	ErrPoorSignal       = wifi.ErrPoorSignal
	ErrUnknownNetwork   = wifi.ErrUnknownNetwork
)
