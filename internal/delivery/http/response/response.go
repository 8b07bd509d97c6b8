// Package response defines the wire shapes the handlers write. The
// account endpoints return a single message field; clients display it
// verbatim, so the strings are part of the contract.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageResponse is the body shape shared by the account endpoints.
type MessageResponse struct {
	Message string     `json:"message"`
	Tokens  *TokenPair `json:"tokens,omitempty"`
}

// TokenPair carries the session tokens when issuance is enabled.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Message writes a bare confirmation body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// MessageWithTokens writes a confirmation body carrying session tokens.
func MessageWithTokens(c echo.Context, statusCode int, message, accessToken, refreshToken string) error {
	return c.JSON(statusCode, MessageResponse{
		Message: message,
		Tokens: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	})
}

// SensorResponse is one dashboard reading on the wire.
type SensorResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Status string  `json:"status"`
}

// DashboardResponse is the full dashboard snapshot on the wire.
type DashboardResponse struct {
	Sensors      []SensorResponse `json:"sensors"`
	IrrigationOn bool             `json:"irrigationOn"`
	Alerts       []string         `json:"alerts"`
}
