package entity

// Artista perfil público do artista.
type Artista struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Genero string `json:"genero"`
	Bio    string `json:"bio,omitempty"`
}
