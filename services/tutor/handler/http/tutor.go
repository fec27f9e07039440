package http

import (
	"github.com/piresc/passeio/services/tutor"
)

// TutorHandler handles the authenticated tutor screens
type TutorHandler struct {
	tutorUC tutor.TutorUC
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(tutorUC tutor.TutorUC) *TutorHandler {
	return &TutorHandler{tutorUC: tutorUC}
}
