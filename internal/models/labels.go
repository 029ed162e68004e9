package models

const (
	StatusPending   = "EN_ATTENTE"
	StatusConfirmed = "CONFIRME"
	StatusCompleted = "TERMINE"
	StatusCancelled = "ANNULE"

	ModeInPerson = "PRESENTIEL"
	ModeRemote   = "TELECONSULTATION"
)

var statusLabels = map[string]string{
	StatusPending:   "En attente",
	StatusConfirmed: "Confirmé",
	StatusCompleted: "Terminé",
	StatusCancelled: "Annulé",
}

var statusBadgeClasses = map[string]string{
	StatusPending:   "badge-warning",
	StatusConfirmed: "badge-success",
	StatusCompleted: "badge-info",
	StatusCancelled: "badge-danger",
}

var modeLabels = map[string]string{
	ModeInPerson: "Présentiel",
	ModeRemote:   "Téléconsultation",
}

// Unknown codes fall back to the raw code so new backend values still render.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

func StatusBadgeClass(code string) string {
	if class, ok := statusBadgeClasses[code]; ok {
		return class
	}
	return "badge-default"
}

func ValidStatus(code string) bool {
	_, ok := statusLabels[code]
	return ok
}

func ModeLabel(code string) string {
	if label, ok := modeLabels[code]; ok {
		return label
	}
	return code
}

var weekdayLabels = [7]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// WeekdayLabel maps the backend weekday index (0 = Monday) to its display name.
func WeekdayLabel(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return weekdayLabels[index]
}
