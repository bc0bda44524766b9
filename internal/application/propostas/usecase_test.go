package propostas

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// chamada registra uma requisição feita pelo caso de uso.
type chamada struct {
	Metodo  string
	Caminho string
	Corpo   interface{}
}

// clienteFake responde por caminho e grava o histórico de chamadas.
type clienteFake struct {
	respostas map[string]interface{}
	erros     map[string]error
	historico []chamada
}

func novoClienteFake() *clienteFake {
	return &clienteFake{respostas: map[string]interface{}{}, erros: map[string]error{}}
}

func (f *clienteFake) Fazer(_ context.Context, metodo, caminho string, corpo, saida interface{}) error {
	f.historico = append(f.historico, chamada{Metodo: metodo, Caminho: caminho, Corpo: corpo})
	chave := metodo + " " + caminho
	if err, ok := f.erros[chave]; ok {
		return err
	}
	if resp, ok := f.respostas[chave]; ok && saida != nil {
		b, _ := json.Marshal(resp)
		return json.Unmarshal(b, saida)
	}
	return nil
}

func novoServicoTeste(f *clienteFake) *Servico {
	return NovoServico(f, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func TestCriarPropostaPendente(t *testing.T) {
	fake := novoClienteFake()
	fake.respostas["POST /propostaCasa"] = entity.Proposta{ID: "77", Status: entity.PropostaPendente}
	svc := novoServicoTeste(fake)

	criada, err := svc.Criar(context.Background(), RecursoCasa, dto.CriarPropostaRequest{
		EventoID:  "9",
		ArtistaID: "3",
		CasaID:    "1",
		Cache:     decimal.NewFromFloat(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, "77", criada.ID)

	require.Len(t, fake.historico, 1)
	corpo := fake.historico[0].Corpo.(map[string]interface{})
	assert.Equal(t, entity.PropostaPendente, corpo["status"], "proposta nova nasce pendente")
}

func TestCriarRecusaRecursoDesconhecido(t *testing.T) {
	svc := novoServicoTeste(novoClienteFake())
	_, err := svc.Criar(context.Background(), "propostaQualquer", dto.CriarPropostaRequest{EventoID: "1", ArtistaID: "2"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestDecidirRecusadaNaoCriaVinculo(t *testing.T) {
	fake := novoClienteFake()
	fake.respostas["GET /propostaArtista/5"] = entity.Proposta{ID: "5", EventoID: "9", ArtistaID: "3", Status: entity.PropostaPendente}
	svc := novoServicoTeste(fake)

	p, err := svc.Decidir(context.Background(), RecursoArtista, "5", entity.PropostaRecusada)
	require.NoError(t, err)
	assert.Equal(t, entity.PropostaRecusada, p.Status)

	for _, ch := range fake.historico {
		assert.NotEqual(t, "/eventoArtista", ch.Caminho, "recusar não deve vincular artista ao evento")
	}
}

func TestDecidirAceitaCriaVinculo(t *testing.T) {
	fake := novoClienteFake()
	fake.respostas["GET /propostaArtista/5"] = entity.Proposta{ID: "5", EventoID: "9", ArtistaID: "3", Status: entity.PropostaPendente}
	svc := novoServicoTeste(fake)

	p, err := svc.Decidir(context.Background(), RecursoArtista, "5", entity.PropostaAceita)
	require.NoError(t, err)
	assert.Equal(t, entity.PropostaAceita, p.Status)

	ultima := fake.historico[len(fake.historico)-1]
	require.Equal(t, "/eventoArtista", ultima.Caminho)
	vinculo := ultima.Corpo.(map[string]string)
	assert.Equal(t, "9", vinculo["eventoId"])
	assert.Equal(t, "3", vinculo["artistaId"])
}

func TestDecidirRestauraStatusQuandoVinculoFalha(t *testing.T) {
	fake := novoClienteFake()
	fake.respostas["GET /propostaArtista/5"] = entity.Proposta{ID: "5", EventoID: "9", ArtistaID: "3", Status: entity.PropostaPendente}
	fake.erros["POST /eventoArtista"] = errors.New("eventos fora do ar")
	svc := novoServicoTeste(fake)

	_, err := svc.Decidir(context.Background(), RecursoArtista, "5", entity.PropostaAceita)
	require.Error(t, err)

	// GET, PUT aceita, POST vínculo (falha), PUT de restauração
	require.Len(t, fake.historico, 4)
	restauracao := fake.historico[3]
	assert.Equal(t, "PUT", restauracao.Metodo)
	restaurada := restauracao.Corpo.(entity.Proposta)
	assert.Equal(t, entity.PropostaPendente, restaurada.Status, "status anterior deve ser reposto")
}

func TestDecidirSemRestauracaoNaoCompensa(t *testing.T) {
	fake := novoClienteFake()
	fake.respostas["GET /propostaArtista/5"] = entity.Proposta{ID: "5", EventoID: "9", ArtistaID: "3", Status: entity.PropostaPendente}
	fake.erros["POST /eventoArtista"] = errors.New("eventos fora do ar")
	svc := novoServicoTeste(fake).SemRestauracao()

	_, err := svc.Decidir(context.Background(), RecursoArtista, "5", entity.PropostaAceita)
	require.Error(t, err)
	assert.Len(t, fake.historico, 3, "sem compensação não há quarta chamada")
}

func TestDecidirRejeitaStatusInvalido(t *testing.T) {
	svc := novoServicoTeste(novoClienteFake())
	_, err := svc.Decidir(context.Background(), RecursoArtista, "5", "TALVEZ")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
