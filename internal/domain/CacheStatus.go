package domain

import "time"

// CacheStatus descreve a entrada atual do cache do dataset
type CacheStatus struct {
	Loaded     bool       `json:"loaded"`
	Version    uint64     `json:"version"`
	Source     string     `json:"source"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	TTLSeconds float64    `json:"ttl_seconds"`
	Hits       uint64     `json:"hits"`
	Misses     uint64     `json:"misses"`
	LastError  string     `json:"last_error,omitempty"`
}
