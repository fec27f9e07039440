package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/utils"
)

// maxPhotoSize caps the pet picture forwarded to the marketplace
const maxPhotoSize = 10 << 20

// ListPets returns the tutor's pets
func (h *TutorHandler) ListPets(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	pets, err := h.tutorUC.ListPets(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", pets)
}

// RegisterPet accepts the multipart pet form with its "foto" file
func (h *TutorHandler) RegisterPet(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	reg := models.PetRegistration{
		Name:   c.FormValue("nome"),
		Breed:  c.FormValue("raca"),
		Age:    c.FormValue("idade"),
		Weight: c.FormValue("peso"),
		Notes:  c.FormValue("observacoes"),
	}

	photo, err := readPhoto(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	reg.Photo = photo

	pet, err := h.tutorUC.RegisterPet(c.Request().Context(), session, reg)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Pet cadastrado com sucesso!", pet)
}

// DeletePet removes one of the tutor's pets
func (h *TutorHandler) DeletePet(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	petID := c.Param("id")
	if petID == "" {
		return utils.BadRequestResponse(c, "Invalid pet ID")
	}

	if err := h.tutorUC.DeletePet(c.Request().Context(), session, petID); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pet removido", nil)
}

// readPhoto returns an empty photo when no file was sent
func readPhoto(c echo.Context) (models.PetPhoto, error) {
	header, err := c.FormFile("foto")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return models.PetPhoto{}, nil
	}
	if err != nil {
		return models.PetPhoto{}, errs.NewValidationError("foto", "Não foi possível ler a foto.")
	}
	if header.Size > maxPhotoSize {
		return models.PetPhoto{}, errs.NewValidationError("foto", "A foto deve ter no máximo 10 MB.")
	}

	file, err := header.Open()
	if err != nil {
		return models.PetPhoto{}, errs.NewValidationError("foto", "Não foi possível ler a foto.")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		return models.PetPhoto{}, errs.NewValidationError("foto", "Não foi possível ler a foto.")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return models.PetPhoto{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
