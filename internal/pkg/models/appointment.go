package models

import (
	"encoding/json"
	"sort"
	"time"
)

// ServiceType discriminates the kind of service an appointment books
type ServiceType string

// ServiceTypeWalk is the only service kind currently offered
const ServiceTypeWalk ServiceType = "passeio"

// AppointmentRequest is the body of POST /servico
type AppointmentRequest struct {
	WalkerID    string       `json:"passeadorId"`
	PetID       string       `json:"petId"`
	TutorID     string       `json:"tutorId"`
	ScheduledAt time.Time    `json:"dataServico"`
	Time        string       `json:"horarioServico"`
	Location    GeoJSONPoint `json:"localizacaoServico"`
	ServiceType ServiceType  `json:"tipoServico"`
}

// AppointmentParty is the embedded walker or pet summary of an appointment
type AppointmentParty struct {
	Name  string  `json:"nome"`
	Photo *string `json:"foto,omitempty"`
}

// Appointment is a walk booking as stored by the marketplace
type Appointment struct {
	ID          ID                `json:"servicoId"`
	WalkerID    ID                `json:"passeadorId"`
	PetID       ID                `json:"petId"`
	TutorID     ID                `json:"tutorId,omitempty"`
	Date        string            `json:"dataServico"`
	Time        string            `json:"horarioServico"`
	Status      string            `json:"status,omitempty"`
	ServiceType ServiceType       `json:"tipoServico,omitempty"`
	Walker      *AppointmentParty `json:"passeador,omitempty"`
	Pet         *AppointmentParty `json:"pet,omitempty"`
}

// UnmarshalJSON also accepts the older "data"/"horario" field names
func (a *Appointment) UnmarshalJSON(data []byte) error {
	type plain Appointment
	var aux struct {
		plain
		LegacyDate string `json:"data"`
		LegacyTime string `json:"horario"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Appointment(aux.plain)
	if a.Date == "" {
		a.Date = aux.LegacyDate
	}
	if a.Time == "" {
		a.Time = aux.LegacyTime
	}
	return nil
}

// StartsAt combines the appointment date and time. ok is false when
// the date cannot be parsed.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, bool) {
	day, err := time.Parse(time.RFC3339, a.Date)
	if err == nil {
		day = day.In(loc)
	} else if day, err = time.ParseInLocation(DateLayout, firstN(a.Date, 10), loc); err != nil {
		return time.Time{}, false
	}
	if clock, err := time.Parse(ClockLayout, firstN(a.Time, 5)); err == nil {
		day = time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	}
	return day, true
}

// SortAppointments orders appointments by start date and time, unparseable ones last
func SortAppointments(appointments []Appointment, loc *time.Location) {
	sort.SliceStable(appointments, func(i, j int) bool {
		ti, oki := appointments[i].StartsAt(loc)
		tj, okj := appointments[j].StartsAt(loc)
		if oki != okj {
			return oki
		}
		return ti.Before(tj)
	})
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
