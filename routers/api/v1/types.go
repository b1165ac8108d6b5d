package v1

import (
	"github.com/technegotia/tn_quests/entities"
)

type loginRes struct {
	Token string `json:"token"`
}

type getUserRes struct {
	User entities.User `json:"user"`
}

type getRegistrationRes struct {
	Registration entities.Registration `json:"registration"`
}

type getRegistrationsRes struct {
	Registrations []entities.Registration `json:"registrations"`
}

type createRegistrationReq struct {
	TeamName        string                `json:"team_name"`
	Members         []entities.TeamMember `json:"members"`
	PaymentProofURL string                `json:"payment_proof_url"`
}

type getQuestsRes struct {
	Quests []entities.Quest `json:"quests"`
}

type getQuestRes struct {
	Quest entities.Quest `json:"quest"`
}

type getSelectionRes struct {
	Quest     *entities.Quest     `json:"quest"`
	Selection *entities.Selection `json:"selection"`
}

type streamErrorRes struct {
	Error string `json:"error"`
}
