package domain

import (
	"fmt"
	"strings"
	"time"
)

type Marketplace string

const (
	MarketplaceOzon        Marketplace = "ozon"
	MarketplaceWildberries Marketplace = "wildberries"
)

// ParseMarketplace aceita os nomes usados pelos clientes antigos (OZON / WB)
func ParseMarketplace(value string) (Marketplace, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ozon":
		return MarketplaceOzon, nil
	case "wildberries", "wb":
		return MarketplaceWildberries, nil
	default:
		return "", fmt.Errorf("marketplace desconhecido: %q", value)
	}
}

// Credentials são imutáveis durante toda a execução de um job
type Credentials struct {
	Marketplace  Marketplace
	ClientID     string
	ClientSecret string
	AdAPIID      string
	AdAPISecret  string
}

func (c Credentials) HasAdAPI() bool {
	return c.AdAPIID != "" && c.AdAPISecret != ""
}

type Shop struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Marketplace    Marketplace `json:"marketplace"`
	PerfKey        string      `json:"perf_key"`
	PerfSecret     string      `json:"perf_secret,omitempty"`
	ClientID       string      `json:"client_id"`
	ClientKey      string      `json:"client_key,omitempty"`
	SpreadsheetURL *string     `json:"spreadsheet_url"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (s *Shop) Credentials() Credentials {
	return Credentials{
		Marketplace:  s.Marketplace,
		ClientID:     s.ClientID,
		ClientSecret: s.ClientKey,
		AdAPIID:      s.PerfKey,
		AdAPISecret:  s.PerfSecret,
	}
}

// Masked devolve uma cópia sem os segredos, para listagens
func (s *Shop) Masked() *Shop {
	masked := *s
	masked.PerfSecret = maskSecret(s.PerfSecret)
	masked.ClientKey = maskSecret(s.ClientKey)
	return &masked
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

type UpsertShopRequest struct {
	Name           string  `json:"name"`
	Marketplace    string  `json:"marketplace"`
	PerfKey        string  `json:"perf_key"`
	PerfSecret     string  `json:"perf_secret"`
	ClientID       string  `json:"client_id"`
	ClientKey      string  `json:"client_key"`
	SpreadsheetURL *string `json:"spreadsheet_url"`
}
