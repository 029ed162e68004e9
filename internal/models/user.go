package models

// Identity is the authenticated user as returned by the login endpoint.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

func (i Identity) DisplayName() string {
	if i.FirstName != "" {
		return i.FirstName
	}
	if i.Username != "" {
		return i.Username
	}
	return "Utilisateur"
}

// Client is the full account record served by the profile and admin endpoints.
type Client struct {
	ID                     int64   `json:"id"`
	Username               string  `json:"username"`
	Email                  string  `json:"email"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	BirthDate              *string `json:"date_naissance"`
	Sex                    *string `json:"sexe"`
	Phone                  string  `json:"telephone"`
	EmergencyPhone         string  `json:"telephone_urgence"`
	Address                string  `json:"adresse_complete"`
	City                   string  `json:"ville"`
	PostalCode             string  `json:"code_postal"`
	Country                string  `json:"pays"`
	SocialSecurityNumber   string  `json:"numero_securite_sociale"`
	NotificationPreference string  `json:"preference_notification"`
	AccountType            string  `json:"type_compte"`
	Status                 string  `json:"statut"`
	IsAdmin                bool    `json:"is_admin"`
}
