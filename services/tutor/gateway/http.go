package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	httpclient "github.com/piresc/passeio/internal/pkg/http"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/utils"
)

// HTTPGateway calls the marketplace REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

type credentials struct {
	Name     string `json:"nome,omitempty"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// RegisterTutor creates a tutor account
func (gw *HTTPGateway) RegisterTutor(ctx context.Context, req models.RegisterRequest) error {
	body := credentials{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}
	if err := gw.client.PostJSON(ctx, "/tutor", "", body, nil); err != nil {
		return fmt.Errorf("failed to register tutor: %w", err)
	}
	return nil
}

// Login exchanges credentials for a marketplace token
func (gw *HTTPGateway) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := credentials{Email: strings.TrimSpace(email), Password: password}
	if err := gw.client.PostJSON(ctx, "/tutor/login", "", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	return &resp, nil
}

// GetTutor fetches the tutor record
func (gw *HTTPGateway) GetTutor(ctx context.Context, token, tutorID string) (*models.Tutor, error) {
	var t models.Tutor
	if err := gw.client.GetJSON(ctx, "/tutor/"+url.PathEscape(tutorID), token, &t); err != nil {
		return nil, fmt.Errorf("failed to get tutor: %w", err)
	}
	return &t, nil
}

// ListWalkers fetches the walker directory
func (gw *HTTPGateway) ListWalkers(ctx context.Context, token string) ([]models.WalkerSummary, error) {
	walkers := []models.WalkerSummary{}
	// the tutor retries the list by reloading
	if err := gw.client.GetJSONOnce(ctx, "/passeador", token, &walkers); err != nil {
		return nil, fmt.Errorf("failed to list walkers: %w", err)
	}
	return walkers, nil
}

// GetWalker fetches one walker's detail record
func (gw *HTTPGateway) GetWalker(ctx context.Context, token, walkerID string) (*models.WalkerDetail, error) {
	var detail models.WalkerDetail
	// detail failures degrade to a fallback and stay out of the list's breaker
	if err := gw.client.GetJSONUnguarded(ctx, "/passeador/"+url.PathEscape(walkerID), token, &detail); err != nil {
		return nil, fmt.Errorf("failed to get walker %s: %w", walkerID, err)
	}
	return &detail, nil
}

// ListPets fetches the tutor's pets
func (gw *HTTPGateway) ListPets(ctx context.Context, token, tutorID string) ([]models.Pet, error) {
	pets := []models.Pet{}
	if err := gw.client.GetJSON(ctx, "/pet/tutor/"+url.PathEscape(tutorID), token, &pets); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

// CreatePet uploads the pet form with its photo
func (gw *HTTPGateway) CreatePet(ctx context.Context, token, tutorID string, reg models.PetRegistration) (*models.Pet, error) {
	form := httpclient.MultipartForm{
		Fields: map[string]string{
			"nome":    utils.SanitizeString(reg.Name),
			"raca":    utils.SanitizeString(reg.Breed),
			"idade":   strings.TrimSpace(reg.Age),
			"tutorId": tutorID,
		},
	}
	if weight := strings.TrimSpace(reg.Weight); weight != "" {
		form.Fields["peso"] = strings.Replace(weight, ",", ".", 1)
	}
	if notes := strings.TrimSpace(reg.Notes); notes != "" {
		form.Fields["observacoes"] = notes
	}
	if len(reg.Photo.Content) > 0 {
		form.Files = append(form.Files, httpclient.FilePart{
			Field:       "foto",
			Filename:    reg.Photo.Filename,
			ContentType: reg.Photo.ContentType,
			Content:     reg.Photo.Content,
		})
	}

	var pet models.Pet
	if err := gw.client.PostMultipart(ctx, "/pet", token, form, &pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &pet, nil
}

// DeletePet removes a pet
func (gw *HTTPGateway) DeletePet(ctx context.Context, token, petID string) error {
	if err := gw.client.Delete(ctx, "/pet/"+url.PathEscape(petID), token); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}

// CreateAppointment proposes a walk. The request is sent once.
func (gw *HTTPGateway) CreateAppointment(ctx context.Context, token string, req models.AppointmentRequest) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := gw.client.PostJSON(ctx, "/servico", token, req, &appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

// ListAppointments fetches the tutor's walks
func (gw *HTTPGateway) ListAppointments(ctx context.Context, token, tutorID string) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := gw.client.GetJSON(ctx, "/servico/tutor/"+url.PathEscape(tutorID), token, &appointments); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// CancelAppointment cancels a walk
func (gw *HTTPGateway) CancelAppointment(ctx context.Context, token, appointmentID string) error {
	if err := gw.client.Delete(ctx, "/servico/"+url.PathEscape(appointmentID), token); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}
