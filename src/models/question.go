package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical question types produced by the normalizer.
const (
	QTypeSingle = "single"
	QTypeMulti  = "multi"
	QTypeRating = "rating"
	QTypeText   = "text"
)

// Question คำถามใน catalog
//
// Type keeps whatever vocabulary the row was stored with (MCQ_S004,
// TRUE_FALSE, RATING, ...). Options may be a []string, a []{key,value}
// list, or a single delimited string - the normalizer copes with all three.
type Question struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID   primitive.ObjectID `bson:"formId,omitempty" json:"formId,omitempty"`
	Text     string             `bson:"text" json:"text"`
	Type     string             `bson:"type" json:"type"`
	Options  interface{}        `bson:"options,omitempty" json:"options,omitempty"`
	Required bool               `bson:"required,omitempty" json:"required,omitempty"`
	Points   int                `bson:"points,omitempty" json:"points,omitempty"`
	Order    int                `bson:"order,omitempty" json:"order,omitempty"`
}

// NormalizedQuestion is the single canonical shape every consumer works
// with after normalization. Renderers and the analytics engine never see
// the stored representations.
type NormalizedQuestion struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Type             string   `json:"type"`
	Options          []string `json:"options"`
	MultiSelect      bool     `json:"multiSelect"`
	LongText         bool     `json:"longText"`
	RenderAsDropdown bool     `json:"renderAsDropdown"`
	Required         bool     `json:"required"`
}
