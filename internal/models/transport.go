package models

import (
	"time"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

// Create requests use plain pointers for optional fields, patch requests
// use patch.Field so that null can clear a value.

type AuthReq struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Name      string `json:"name" validate:"max=255"`
	Firstname string `json:"firstname" validate:"max=255"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserPatchReq struct {
	Name      patch.Field[string] `json:"name" validate:"omitempty,max=255"`
	Firstname patch.Field[string] `json:"firstname" validate:"omitempty,max=255"`
	Email     patch.Field[string] `json:"email" validate:"omitempty,email,max=255"`
	Password  *string             `json:"password" validate:"omitempty,min=8,max=72"`
}

type RepertoireReq struct {
	Label  string `json:"label" validate:"required,min=1,max=255"`
	UserID string `json:"userId" validate:"required,uuid"`
}

type RepertoirePatchReq struct {
	Label patch.Field[string] `json:"label" validate:"omitempty,min=1,max=255"`
}

type GroupeReq struct {
	Label        string  `json:"label" validate:"required,min=1,max=255"`
	Color        *string `json:"color" validate:"omitempty,max=50"`
	RepertoireID string  `json:"repertoireId" validate:"required,uuid"`
}

type GroupePatchReq struct {
	Label patch.Field[string] `json:"label" validate:"omitempty,min=1,max=255"`
	Color patch.Field[string] `json:"color" validate:"omitempty,max=50"`
}

type TacheReq struct {
	Label    string     `json:"label" validate:"required,min=1,max=255"`
	Detail   *string    `json:"detail" validate:"omitempty,max=2000"`
	Date     *time.Time `json:"date"`
	GroupeID string     `json:"groupeId" validate:"required,uuid"`
	Labels   []string   `json:"labels" validate:"omitempty,dive,uuid"`
}

type TachePatchReq struct {
	Label  patch.Field[string]    `json:"label" validate:"omitempty,min=1,max=255"`
	Detail patch.Field[string]    `json:"detail" validate:"omitempty,max=2000"`
	Date   patch.Field[time.Time] `json:"date"`
}

type LabelReq struct {
	Label        string  `json:"label" validate:"required,min=1,max=255"`
	Color        *string `json:"color" validate:"omitempty,max=50"`
	RepertoireID string  `json:"repertoireId" validate:"required,uuid"`
}

type LabelPatchReq struct {
	Label patch.Field[string] `json:"label" validate:"omitempty,min=1,max=255"`
	Color patch.Field[string] `json:"color" validate:"omitempty,max=50"`
}

type NoteReq struct {
	Label        *string `json:"label" validate:"omitempty,max=255"`
	Message      *string `json:"message" validate:"omitempty,max=10000"`
	RepertoireID string  `json:"repertoireId" validate:"required,uuid"`
}

type NotePatchReq struct {
	Label   patch.Field[string] `json:"label" validate:"omitempty,max=255"`
	Message patch.Field[string] `json:"message" validate:"omitempty,max=10000"`
}

type MessageResp struct {
	Message string `json:"message"`
}

type DeleteResp struct {
	Deleted bool `json:"deleted"`
}
