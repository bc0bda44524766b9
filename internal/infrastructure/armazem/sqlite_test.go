package armazem_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/armazem"
)

func lojaDeTeste(t *testing.T) *armazem.Loja {
	t.Helper()
	loja, err := armazem.Abrir(filepath.Join(t.TempDir(), "teste.db"))
	require.NoError(t, err)
	t.Cleanup(func() { loja.Fechar() })
	return loja
}

func TestSessao_CicloCompleto(t *testing.T) {
	loja := lojaDeTeste(t)

	// sem sessão: zero, sem erro
	sess, err := loja.Carregar()
	require.NoError(t, err)
	assert.False(t, sess.Autenticada())
	assert.Empty(t, loja.Token())

	gravada := entity.Sessao{
		Token: "tok-1",
		Usuario: entity.Usuario{ID: "u-1", Nome: "Maria", Email: "m@x.com", Papel: papel.Artista},
	}
	require.NoError(t, loja.Salvar(gravada))

	lida, err := loja.Carregar()
	require.NoError(t, err)
	assert.Equal(t, gravada, lida)
	assert.Equal(t, "tok-1", loja.Token())

	// salvar de novo sobrescreve (upsert)
	gravada.Token = "tok-2"
	require.NoError(t, loja.Salvar(gravada))
	assert.Equal(t, "tok-2", loja.Token())

	require.NoError(t, loja.Limpar())
	sess, err = loja.Carregar()
	require.NoError(t, err)
	assert.False(t, sess.Autenticada())
}

func TestAvatar_UpsertPorUsuario(t *testing.T) {
	loja := lojaDeTeste(t)

	url, err := loja.AvatarDe("u-1")
	require.NoError(t, err)
	assert.Empty(t, url, "sem avatar cacheado devolve vazio")

	require.NoError(t, loja.SalvarAvatar("u-1", "data:image/png;base64,AAA"))
	require.NoError(t, loja.SalvarAvatar("u-2", "data:image/png;base64,BBB"))
	require.NoError(t, loja.SalvarAvatar("u-1", "data:image/png;base64,CCC"))

	url, err = loja.AvatarDe("u-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,CCC", url, "última gravação vence")

	url, err = loja.AvatarDe("u-2")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,BBB", url)
}
