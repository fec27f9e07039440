package models

// Pet belongs to a tutor
type Pet struct {
	ID      ID       `json:"petId"`
	Name    string   `json:"nome"`
	Breed   string   `json:"raca"`
	Age     int      `json:"idade,omitempty"`
	Weight  *float64 `json:"peso,omitempty"`
	Notes   string   `json:"observacoes,omitempty"`
	Photo   *string  `json:"foto,omitempty"`
	TutorID ID       `json:"tutorId,omitempty"`
}

// PetPhoto is an uploaded picture forwarded to the marketplace
type PetPhoto struct {
	Filename    string
	ContentType string
	Content     []byte
}

// PetRegistration carries the pet form
type PetRegistration struct {
	Name   string   `form:"nome" json:"nome" validate:"required,notblank"`
	Breed  string   `form:"raca" json:"raca" validate:"required,notblank"`
	Age    string   `form:"idade" json:"idade" validate:"required,posint"`
	Weight string   `form:"peso" json:"peso" validate:"omitempty,posnumber"`
	Notes  string   `form:"observacoes" json:"observacoes"`
	Photo  PetPhoto `form:"-" json:"-"`
}
