package dto

import (
	"time"

	"church_backend/internal/domain"
)

type SyncResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Count     int       `json:"count"`
	Skipped   int       `json:"skipped,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func ToSyncResponse(result *domain.SyncResult) SyncResponse {
	return SyncResponse{
		Success:   result.Success,
		Message:   result.Message,
		Count:     result.Count,
		Skipped:   result.Skipped,
		Timestamp: result.Timestamp,
	}
}

type SermonListResponse struct {
	Success     bool            `json:"success"`
	Count       int             `json:"count"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Sermons     []domain.Sermon `json:"sermons"`
}

type SermonResponse struct {
	Success bool          `json:"success"`
	Sermon  domain.Sermon `json:"sermon"`
}

type EventListResponse struct {
	Success     bool           `json:"success"`
	Count       int            `json:"count"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Events      []domain.Event `json:"events"`
}

type RegistrationCreatedResponse struct {
	RegistrationID   string    `json:"registrationId"`
	ParticipantName  string    `json:"participantName"`
	CampDates        string    `json:"campDates"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}

func ToRegistrationCreated(reg *domain.Registration) RegistrationCreatedResponse {
	return RegistrationCreatedResponse{
		RegistrationID:   reg.ID,
		ParticipantName:  reg.ParticipantName,
		CampDates:        reg.CampDates,
		RegistrationDate: reg.CreatedAt,
		Status:           reg.Status,
	}
}

type RegistrationListResponse struct {
	Success       bool                  `json:"success"`
	Count         int                   `json:"count"`
	Registrations []domain.Registration `json:"registrations"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
