package domain

import "time"

// Registration statuses. Only an authenticated admin action moves a
// registration out of pending.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusCancelled = "cancelled"
)

// Registration is one youth-camp sign-up.
type Registration struct {
	ID                  string    `db:"id" json:"registrationId"`
	ParticipantName     string    `db:"participant_name" json:"participantName"`
	ParentGuardianName  string    `db:"parent_guardian_name" json:"parentGuardianName"`
	Sex                 string    `db:"sex" json:"sex"`
	Age                 int       `db:"age" json:"age"`
	ContactPhone        string    `db:"contact_phone" json:"contactPhone"`
	ContactEmail        string    `db:"contact_email" json:"contactEmail"`
	EmergencyName       string    `db:"emergency_name" json:"emergencyContactName"`
	EmergencyPhone      string    `db:"emergency_phone" json:"emergencyContactPhone"`
	EmergencyRelation   string    `db:"emergency_relation" json:"emergencyContactRelation"`
	Accommodations      string    `db:"accommodations" json:"accommodations,omitempty"`
	MedicalConditions   string    `db:"medical_conditions" json:"medicalConditions,omitempty"`
	Allergies           string    `db:"allergies" json:"allergies,omitempty"`
	DietaryRestrictions string    `db:"dietary_restrictions" json:"dietaryRestrictions,omitempty"`
	WaiverAccepted      bool      `db:"waiver_accepted" json:"waiverAccepted"`
	ParentSignature     string    `db:"parent_signature" json:"parentSignature"`
	Status              string    `db:"status" json:"status"`
	CampYear            int       `db:"camp_year" json:"campYear"`
	CampDates           string    `db:"camp_dates" json:"campDates"`
	CreatedAt           time.Time `db:"created_at" json:"registrationDate"`
	UpdatedAt           time.Time `db:"updated_at" json:"-"`
}

// RegistrationFilter narrows admin listing queries.
type RegistrationFilter struct {
	Status   string
	CampYear int
	Limit    int
	Offset   int
}
