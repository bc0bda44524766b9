package entity

// Sessao identidade assinada + token bearer, persistida localmente pelo gateway.
// Invariante: uma requisição é "autenticada" sse Token é não vazio.
type Sessao struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

// Autenticada informa se há token presente.
func (s Sessao) Autenticada() bool {
	return s.Token != ""
}
