// Package armazem persiste o estado local do gateway num sqlite embutido: a
// sessão corrente e os avatares cacheados por usuário. Chaves com namespace,
// sem sincronização com os serviços.
package armazem

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
)

const chaveSessao = "sessao"

// Loja armazém local sobre sqlite. Implementa sessao.Armazem e
// upstream.FonteToken.
//
// Sem locking próprio além do driver: o acesso é serializado pelo pool do
// database/sql. Duas réplicas apontando para o mesmo arquivo disputam em
// last-write-wins, mesma postura do storage do navegador entre abas.
type Loja struct {
	db *sql.DB
}

// Abrir abre (ou cria) o arquivo sqlite e garante o esquema.
func Abrir(caminho string) (*Loja, error) {
	db, err := sql.Open("sqlite", caminho)
	if err != nil {
		return nil, fmt.Errorf("armazem: abrir %s: %w", caminho, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("armazem: habilitar WAL: %w", err)
	}
	esquema := `
	CREATE TABLE IF NOT EXISTS estado (
		chave TEXT PRIMARY KEY,
		valor TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS avatar (
		usuario_id TEXT PRIMARY KEY,
		data_url   TEXT NOT NULL
	);`
	if _, err := db.Exec(esquema); err != nil {
		return nil, fmt.Errorf("armazem: criar esquema: %w", err)
	}
	return &Loja{db: db}, nil
}

// Fechar fecha o arquivo.
func (l *Loja) Fechar() error { return l.db.Close() }

// ── Sessão ────────────────────────────────────────────────────────────────────

// Carregar lê a sessão persistida. Ausência ou JSON ilegível devolvem sessão
// zero sem erro: o chamador trata ambos como "não autenticado".
func (l *Loja) Carregar() (entity.Sessao, error) {
	var valor string
	err := l.db.QueryRow(`SELECT valor FROM estado WHERE chave = ?`, chaveSessao).Scan(&valor)
	if err == sql.ErrNoRows {
		return entity.Sessao{}, nil
	}
	if err != nil {
		return entity.Sessao{}, fmt.Errorf("armazem: ler sessão: %w", err)
	}
	var sess entity.Sessao
	if err := json.Unmarshal([]byte(valor), &sess); err != nil {
		return entity.Sessao{}, nil // registro corrompido conta como ausente
	}
	return sess, nil
}

// Salvar grava (upsert) a sessão serializada.
func (l *Loja) Salvar(sess entity.Sessao) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("armazem: serializar sessão: %w", err)
	}
	_, err = l.db.Exec(`
		INSERT INTO estado (chave, valor) VALUES (?, ?)
		ON CONFLICT(chave) DO UPDATE SET valor = excluded.valor
	`, chaveSessao, string(b))
	if err != nil {
		return fmt.Errorf("armazem: gravar sessão: %w", err)
	}
	return nil
}

// Limpar descarta a sessão persistida.
func (l *Loja) Limpar() error {
	_, err := l.db.Exec(`DELETE FROM estado WHERE chave = ?`, chaveSessao)
	if err != nil {
		return fmt.Errorf("armazem: limpar sessão: %w", err)
	}
	return nil
}

// Token implementação de upstream.FonteToken: token da sessão corrente ou vazio.
func (l *Loja) Token() string {
	sess, err := l.Carregar()
	if err != nil {
		return ""
	}
	return sess.Token
}

// ── Avatares ──────────────────────────────────────────────────────────────────

// AvatarDe devolve o data URL do avatar cacheado para o usuário, ou vazio.
func (l *Loja) AvatarDe(usuarioID string) (string, error) {
	var dataURL string
	err := l.db.QueryRow(`SELECT data_url FROM avatar WHERE usuario_id = ?`, usuarioID).Scan(&dataURL)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("armazem: ler avatar: %w", err)
	}
	return dataURL, nil
}

// SalvarAvatar grava (upsert) o data URL do avatar do usuário.
func (l *Loja) SalvarAvatar(usuarioID, dataURL string) error {
	_, err := l.db.Exec(`
		INSERT INTO avatar (usuario_id, data_url) VALUES (?, ?)
		ON CONFLICT(usuario_id) DO UPDATE SET data_url = excluded.data_url
	`, usuarioID, dataURL)
	if err != nil {
		return fmt.Errorf("armazem: gravar avatar: %w", err)
	}
	return nil
}
