package models

type Specialty struct {
	ID          int64  `json:"id"`
	Name        string `json:"nom"`
	Description string `json:"description"`
	Icon        string `json:"icone,omitempty"`
}

type Office struct {
	ID         int64  `json:"id"`
	Name       string `json:"nom"`
	Address    string `json:"adresse"`
	City       string `json:"ville"`
	PostalCode string `json:"code_postal"`
	Phone      string `json:"telephone"`
	Latitude   string `json:"latitude,omitempty"`
	Longitude  string `json:"longitude,omitempty"`
}

type OfficeInput struct {
	Name       string `json:"nom"`
	Address    string `json:"adresse"`
	City       string `json:"ville"`
	PostalCode string `json:"code_postal"`
	Phone      string `json:"telephone"`
}

type Professional struct {
	ID                  int64     `json:"id"`
	LastName            string    `json:"nom"`
	FirstName           string    `json:"prenom"`
	Email               string    `json:"email"`
	Specialty           Specialty `json:"specialite"`
	Bio                 string    `json:"bio"`
	PhotoURL            string    `json:"photo_url"`
	ConsultationFee     string    `json:"tarif_consultation"`
	AcceptsTeleconsult  bool      `json:"accepte_teleconsultation"`
	ValidationStatus    string    `json:"statut_validation"`
	Offices             []Office  `json:"cabinets"`
}

// ManagedProfessional is the flat shape used by the admin manage endpoints,
// where the specialty is sent as a bare ID and the fee as a number.
type ManagedProfessional struct {
	ID                 int64   `json:"id,omitempty"`
	LastName           string  `json:"nom"`
	FirstName          string  `json:"prenom"`
	Email              string  `json:"email"`
	SpecialtyID        int64   `json:"specialite"`
	Bio                string  `json:"bio"`
	ConsultationFee    float64 `json:"tarif_consultation"`
	AcceptsTeleconsult bool    `json:"accepte_teleconsultation"`
	ValidationStatus   string  `json:"statut_validation"`
}

// OfficeSummary renders the office list the way the search cards show it.
func (p Professional) OfficeSummary() string {
	if len(p.Offices) == 0 {
		return "Cabinet non renseigné"
	}
	summary := ""
	for i, office := range p.Offices {
		if i > 0 {
			summary += ", "
		}
		summary += office.Name + " - " + office.City
	}
	return summary
}

func (p Professional) FirstOffice() *Office {
	if len(p.Offices) == 0 {
		return nil
	}
	return &p.Offices[0]
}

func (p Professional) OfficeByID(id int64) *Office {
	for i := range p.Offices {
		if p.Offices[i].ID == id {
			return &p.Offices[i]
		}
	}
	return nil
}
