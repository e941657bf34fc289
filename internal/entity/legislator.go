package entity

import (
	"encoding/json"
	"strconv"
)

// Chamber é a casa legislativa do parlamentar (o "cargo" no JSON).
type Chamber string

const (
	ChamberDeputy  Chamber = "Deputado"
	ChamberSenator Chamber = "Senador"
)

// Legislator é a união Deputy | Senator. O método não exportado fecha a
// interface para os dois tipos deste pacote.
//
// Key é o identificador dentro da casa: um deputado e um senador podem ter o
// mesmo Key sem serem a mesma pessoa.
type Legislator interface {
	Chamber() Chamber
	Key() string
	DisplayName() string
	PartyAcronym() string
	StateAcronym() string
	Photo() string

	isLegislator()
}

// Entidade: Deputy (Câmara dos Deputados)
type Deputy struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Party    string `json:"siglaPartido"`
	State    string `json:"siglaUf"`
	PhotoURL string `json:"urlFoto"`
}

func (d Deputy) Chamber() Chamber { return ChamberDeputy }
func (d Deputy) Key() string { return strconv.FormatInt(d.ID, 10) }
func (d Deputy) DisplayName() string { return d.Name }
func (d Deputy) PartyAcronym() string { return d.Party }
func (d Deputy) StateAcronym() string { return d.State }
func (d Deputy) Photo() string { return d.PhotoURL }
func (d Deputy) isLegislator() {}

func (d Deputy) MarshalJSON() ([]byte, error) {
	type plain Deputy
	return json.Marshal(struct {
		plain
		Cargo Chamber `json:"cargo"`
	}{plain(d), ChamberDeputy})
}

// Entidade: Senator (Senado Federal). O ID é o CodigoParlamentar como texto.
type Senator struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Party    string `json:"siglaPartido,omitempty"`
	State    string `json:"siglaUf,omitempty"`
	PhotoURL string `json:"urlFoto,omitempty"`
}

func (s Senator) Chamber() Chamber { return ChamberSenator }
func (s Senator) Key() string { return s.ID }
func (s Senator) DisplayName() string { return s.Name }
func (s Senator) PartyAcronym() string { return s.Party }
func (s Senator) StateAcronym() string { return s.State }
func (s Senator) Photo() string { return s.PhotoURL }
func (s Senator) isLegislator() {}

func (s Senator) MarshalJSON() ([]byte, error) {
	type plain Senator
	return json.Marshal(struct {
		plain
		Cargo Chamber `json:"cargo"`
	}{plain(s), ChamberSenator})
}
