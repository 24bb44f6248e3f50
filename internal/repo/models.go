package repo

import "time"

// Status e tipo de consulta.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"

	KindRemote   = "REMOTE"
	KindInPerson = "IN_PERSON"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PatientProfile é 1:1 com um User de perfil PATIENT (mesmo id).
type PatientProfile struct {
	ID        int                    `json:"id"`
	Phone     string                 `json:"phone"`
	BirthDate string                 `json:"birth_date"`
	Address   map[string]interface{} `json:"address"`
	CreatedAt time.Time              `json:"created_at"`
}

// ProfessionalProfile é 1:1 com um User de perfil PROFESSIONAL (mesmo id).
type ProfessionalProfile struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"license_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// Appointment compara scheduled_at como string opaca: o invariante de conflito
// vale para o par exato (professional_id, scheduled_at).
type Appointment struct {
	ID             int       `json:"id"`
	PatientID      int       `json:"patient_id"`
	ProfessionalID int       `json:"professional_id"`
	ScheduledAt    string    `json:"scheduled_at"`
	Status         string    `json:"status"`
	Kind           string    `json:"kind"`
	RemoteLink     string    `json:"remote_link"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      int       `json:"created_by"`
}

type Attendance struct {
	AppointmentID  int       `json:"appointment_id"`
	ProfessionalID int       `json:"professional_id"`
	PatientID      int       `json:"patient_id"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes"`
}

type RecordEntry struct {
	PatientID      int       `json:"patient_id"`
	Timestamp      time.Time `json:"timestamp"`
	Description    string    `json:"description"`
	ProfessionalID int       `json:"professional_id"`
	AppointmentID  int       `json:"appointment_id"`
}

// Notification é append-only; RecipientID endereça paciente, ProfessionalID o
// profissional (a remoção de consulta grava uma entrada para cada um).
type Notification struct {
	RecipientID    int       `json:"recipient_id,omitempty"`
	ProfessionalID int       `json:"professional_id,omitempty"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}
