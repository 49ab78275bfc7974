package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"church_backend/internal/config"
	"church_backend/internal/domain"
)

var phoneRegexp = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

// RegistrationInput is one youth-camp registration submission as received
// from the public form.
type RegistrationInput struct {
	ParticipantName     string `json:"participantName" validate:"required"`
	ParentGuardianName  string `json:"parentGuardianName" validate:"required"`
	Sex                 string `json:"sex" validate:"required"`
	Age                 int    `json:"age" validate:"required"`
	ContactPhone        string `json:"contactPhone" validate:"required,usphone"`
	ContactEmail        string `json:"contactEmail" validate:"required,email"`
	EmergencyName       string `json:"emergencyContactName" validate:"required"`
	EmergencyPhone      string `json:"emergencyContactPhone" validate:"required,usphone"`
	EmergencyRelation   string `json:"emergencyContactRelation" validate:"required"`
	Accommodations      string `json:"accommodations"`
	MedicalConditions   string `json:"medicalConditions"`
	Allergies           string `json:"allergies"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	WaiverAccepted      bool   `json:"waiverAccepted"`
	ParentSignature     string `json:"parentSignature" validate:"required"`
	CampYear            int    `json:"campYear"`
}

// RegistrationService validates, normalizes and stores youth-camp
// registrations, and serves the administrative surface over them.
type RegistrationService struct {
	registrations RegistrationStore
	publisher     Publisher
	validate      *validator.Validate
	camp          config.CampConfig
	logger        *slog.Logger
}

func NewRegistrationService(
	registrations RegistrationStore,
	publisher Publisher,
	camp config.CampConfig,
	logger *slog.Logger,
) *RegistrationService {
	validate := validator.New()

	// Report errors under the form's field names, not Go struct names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})

	return &RegistrationService{
		registrations: registrations,
		publisher:     publisher,
		validate:      validate,
		camp:          camp,
		logger:        logger,
	}
}

// Create validates one submission, enforces the duplicate rule, applies
// defaults and stores the registration. Every violated rule is reported in
// one aggregated error; nothing is written on failure.
func (s *RegistrationService) Create(ctx context.Context, input RegistrationInput) (*domain.Registration, error) {
	input = trimInput(input)

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if input.CampYear == 0 {
		input.CampYear = time.Now().Year()
	}

	exists, err := s.registrations.ExistsActive(ctx, input.ParticipantName, input.ContactEmail, input.CampYear)
	if err != nil {
		return nil, fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRegistration
	}

	reg := &domain.Registration{
		ID:                  uuid.New().String(),
		ParticipantName:     input.ParticipantName,
		ParentGuardianName:  input.ParentGuardianName,
		Sex:                 input.Sex,
		Age:                 input.Age,
		ContactPhone:        input.ContactPhone,
		ContactEmail:        input.ContactEmail,
		EmergencyName:       input.EmergencyName,
		EmergencyPhone:      input.EmergencyPhone,
		EmergencyRelation:   input.EmergencyRelation,
		Accommodations:      input.Accommodations,
		MedicalConditions:   input.MedicalConditions,
		Allergies:           input.Allergies,
		DietaryRestrictions: input.DietaryRestrictions,
		WaiverAccepted:      input.WaiverAccepted,
		ParentSignature:     input.ParentSignature,
		Status:              domain.RegistrationStatusPending,
		CampYear:            input.CampYear,
		CampDates:           s.camp.Dates,
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		"registration_id", reg.ID,
		"participant", reg.ParticipantName,
		"camp_year", reg.CampYear,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishRegistration(ctx, reg, "created"); err != nil {
			s.logger.Error("failed to publish registration", "registration_id", reg.ID, "error", err)
		}
	}

	return reg, nil
}

func (s *RegistrationService) List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.registrations.List(ctx, filter)
}

func (s *RegistrationService) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	return s.registrations.GetByID(ctx, id)
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status string) (*domain.Registration, error) {
	switch status {
	case domain.RegistrationStatusPending,
		domain.RegistrationStatusApproved,
		domain.RegistrationStatusCancelled:
	default:
		return nil, domain.ErrInvalidStatus
	}

	if err := s.registrations.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	reg, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registration status updated", "registration_id", id, "status", status)

	if s.publisher != nil {
		if err := s.publisher.PublishRegistration(ctx, reg, "status_changed"); err != nil {
			s.logger.Error("failed to publish status change", "registration_id", id, "error", err)
		}
	}

	return reg, nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.registrations.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("registration deleted", "registration_id", id)
	return nil
}

func (s *RegistrationService) validateInput(input RegistrationInput) error {
	fields := make(map[string]string)

	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate registration: %w", err)
		}
		for _, fieldErr := range verrs {
			fields[fieldErr.Field()] = messageForTag(fieldErr.Tag())
		}
	}

	// Age bounds come from configuration; skip when age is already flagged
	// as missing.
	if _, flagged := fields["age"]; !flagged {
		if input.Age < s.camp.MinAge || input.Age > s.camp.MaxAge {
			fields["age"] = fmt.Sprintf("must be between %d and %d", s.camp.MinAge, s.camp.MaxAge)
		}
	}

	// The waiver is reported distinctly: it is a legal requirement, not a
	// malformed field.
	if !input.WaiverAccepted {
		fields["waiverAccepted"] = domain.ErrWaiverNotAccepted.Error()
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "usphone":
		return "must match format (XXX) XXX-XXXX"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func trimInput(input RegistrationInput) RegistrationInput {
	input.ParticipantName = strings.TrimSpace(input.ParticipantName)
	input.ParentGuardianName = strings.TrimSpace(input.ParentGuardianName)
	input.Sex = strings.TrimSpace(input.Sex)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)
	input.EmergencyName = strings.TrimSpace(input.EmergencyName)
	input.EmergencyPhone = strings.TrimSpace(input.EmergencyPhone)
	input.EmergencyRelation = strings.TrimSpace(input.EmergencyRelation)
	input.Accommodations = strings.TrimSpace(input.Accommodations)
	input.MedicalConditions = strings.TrimSpace(input.MedicalConditions)
	input.Allergies = strings.TrimSpace(input.Allergies)
	input.DietaryRestrictions = strings.TrimSpace(input.DietaryRestrictions)
	input.ParentSignature = strings.TrimSpace(input.ParentSignature)
	return input
}
