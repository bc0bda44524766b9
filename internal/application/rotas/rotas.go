// Package rotas implementa a tabela de rotas navegáveis do Night Out e a
// guarda de acesso por papel. A tabela compila cada padrão (segmentos :param
// viram grupos de captura) UMA vez na construção; a resolução por requisição é
// só um laço de regexes já prontas, e "primeira rota declarada vence" é uma
// propriedade explícita da ordem do slice.
package rotas

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rota padrão de caminho com segmentos :param e o nome da página associada.
type Rota struct {
	Padrao string
	Nome   string
}

// Correspondencia resultado da resolução de um caminho.
type Correspondencia struct {
	Rota   Rota
	Params map[string]string
}

type rotaCompilada struct {
	rota   Rota
	re     *regexp.Regexp
	params []string // nomes dos :params, na ordem dos grupos de captura
}

// Tabela conjunto ordenado de rotas compiladas. Caminhos sem correspondência
// resolvem para a rota padrão (não há estado "not found").
type Tabela struct {
	rotas  []rotaCompilada
	padrao Rota
}

// NovaTabela compila as rotas na ordem declarada. nomePadrao indica qual delas
// recebe os caminhos sem correspondência; deve existir na lista.
func NovaTabela(rotas []Rota, nomePadrao string) (*Tabela, error) {
	t := &Tabela{}
	var achouPadrao bool
	for _, r := range rotas {
		rc, err := compilar(r)
		if err != nil {
			return nil, err
		}
		t.rotas = append(t.rotas, rc)
		if r.Nome == nomePadrao {
			t.padrao = r
			achouPadrao = true
		}
	}
	if !achouPadrao {
		return nil, fmt.Errorf("rotas: rota padrão %q não declarada", nomePadrao)
	}
	return t, nil
}

// compilar transforma "/evento/:id" em ^/evento/([^/]+)$, registrando os nomes
// dos parâmetros na ordem dos grupos.
func compilar(r Rota) (rotaCompilada, error) {
	segmentos := strings.Split(r.Padrao, "/")
	var b strings.Builder
	b.WriteString("^")
	var params []string
	for i, seg := range segmentos {
		if i > 0 {
			b.WriteString("/")
		}
		if strings.HasPrefix(seg, ":") {
			params = append(params, seg[1:])
			b.WriteString("([^/]+)")
			continue
		}
		b.WriteString(regexp.QuoteMeta(seg))
	}
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return rotaCompilada{}, fmt.Errorf("rotas: padrão %q inválido: %w", r.Padrao, err)
	}
	return rotaCompilada{rota: r, re: re, params: params}, nil
}

// Resolver devolve a primeira rota cujo padrão casa com o caminho, com os
// grupos capturados decodificados (URL) no mapa de parâmetros. Sem
// correspondência, devolve a rota padrão com parâmetros vazios.
func (t *Tabela) Resolver(caminho string) Correspondencia {
	for _, rc := range t.rotas {
		m := rc.re.FindStringSubmatch(caminho)
		if m == nil {
			continue
		}
		params := make(map[string]string, len(rc.params))
		for i, nome := range rc.params {
			valor := m[i+1]
			if dec, err := url.PathUnescape(valor); err == nil {
				valor = dec
			}
			params[nome] = valor
		}
		return Correspondencia{Rota: rc.rota, Params: params}
	}
	return Correspondencia{Rota: t.padrao, Params: map[string]string{}}
}
