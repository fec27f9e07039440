package constants

// NATS Subjects
const (
	// Tutor Service
	SubjectAppointmentProposed = "servico.proposed"
)
