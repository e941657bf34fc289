package entity

// DeputyProfile é o detalhe de /deputados/{id}. Senadores não têm perfil
// próprio: a ficha deles é o registro da lista de exercício.
type DeputyProfile struct {
	ID             int64        `json:"id"`
	CivilName      string       `json:"nomeCivil"`
	ElectoralName  string       `json:"nomeEleitoral"`
	CPF            string       `json:"cpf,omitempty"`
	Sex            string       `json:"sexo,omitempty"`
	Website        string       `json:"urlWebsite,omitempty"`
	SocialNetworks []string     `json:"redeSocial,omitempty"`
	CurrentStatus  DeputyStatus `json:"ultimoStatus"`
}

type DeputyStatus struct {
	Name     string  `json:"nome"`
	Party    string  `json:"siglaPartido"`
	State    string  `json:"siglaUf"`
	PhotoURL string  `json:"urlFoto"`
	Office   *Office `json:"gabinete,omitempty"`
}

// Office: gabinete. Todos os campos são opcionais no upstream.
type Office struct {
	Name     string `json:"nome,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Building string `json:"predio,omitempty"`
	Room     string `json:"sala,omitempty"`
	Floor    string `json:"andar,omitempty"`
}

// Deputy reduz o perfil à ficha usada nas buscas e nas legendas.
func (p *DeputyProfile) Deputy() Deputy {
	name := p.CurrentStatus.Name
	if name == "" {
		name = p.ElectoralName
	}
	return Deputy{
		ID:       p.ID,
		Name:     name,
		Party:    p.CurrentStatus.Party,
		State:    p.CurrentStatus.State,
		PhotoURL: p.CurrentStatus.PhotoURL,
	}
}
