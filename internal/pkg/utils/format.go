package utils

import (
	"fmt"
	"net/url"
)

// FormatMinutes renders a duration in minutes as "{h}ч {m}м", or "{m}м" under an hour.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0м"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dч %dм", hours, mins)
	}
	return fmt.Sprintf("%dм", mins)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// ClampPercent limits a percentage to [0, 100].
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// AvatarURL returns avatar when set, otherwise a generated initials avatar.
func AvatarURL(avatar, name string, size int) string {
	if avatar != "" {
		return avatar
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&size=%d", url.QueryEscape(name), size)
}
