package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Contact holds the schema definition for the Contact entity.
// A row is created once per accepted submission and never mutated.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.UUID("uuid", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.String("name"),
		field.String("email"),
		field.String("phone"),
		field.String("country_code").Default(""),
		field.String("company").Optional().Default(""),
		field.String("subject"),
		field.String("service_interest").Optional().Default(""),
		field.String("budget_range").Optional().Default(""),
		field.Text("message"),
		field.Float("captcha_score").Optional().Nillable(),
		field.String("ip_address").Optional(),
		field.String("user_agent").Optional(),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("created_at"),
	}
}

// Mixin for the Contact schema.
func (Contact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
