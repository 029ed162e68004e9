package models

type ConsultationReason struct {
	ID       int64  `json:"id"`
	Label    string `json:"libelle"`
	Duration int    `json:"duree_estimee"`
	Fee      string `json:"tarif"`
}

type PatientRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Appointment struct {
	ID           int64               `json:"id"`
	Patient      *PatientRef         `json:"patient,omitempty"`
	Professional Professional        `json:"professionnel"`
	Office       *Office             `json:"cabinet"`
	Reason       *ConsultationReason `json:"motif_consultation"`
	Date         string              `json:"date"`
	StartTime    string              `json:"heure_debut"`
	EndTime      string              `json:"heure_fin"`
	Status       string              `json:"statut"`
	Mode         string              `json:"mode"`
	PatientNotes string              `json:"notes_patient"`
	ReminderSent bool                `json:"rappel_envoye"`
	CreatedAt    string              `json:"date_creation"`
}

type AppointmentRequest struct {
	ProfessionalID int64  `json:"professionnel_id"`
	OfficeID       int64  `json:"cabinet_id"`
	Date           string `json:"date"`
	StartTime      string `json:"heure_debut"`
	Mode           string `json:"mode"`
	PatientNotes   string `json:"notes_patient"`
	ReasonID       int64  `json:"motif_consultation_id,omitempty"`
}

type OfficeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nom"`
}

type AvailabilityRule struct {
	ID           int64     `json:"id"`
	Weekday      int       `json:"jour_semaine"`
	StartTime    string    `json:"heure_debut"`
	EndTime      string    `json:"heure_fin"`
	SlotDuration int       `json:"duree_creneau"`
	Office       OfficeRef `json:"cabinet"`
}

type AvailabilityRuleInput struct {
	OfficeID     int64  `json:"cabinet_id"`
	Weekday      int    `json:"jour_semaine"`
	StartTime    string `json:"heure_debut"`
	EndTime      string `json:"heure_fin"`
	SlotDuration int    `json:"duree_creneau"`
}
