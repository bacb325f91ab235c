package chart

import "context"

// SettingsRepository stores the chart's global properties. A property that
// has never been set reads as the empty string.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}
