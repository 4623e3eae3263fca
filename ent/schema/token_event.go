package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenEvent records a token balance mutation.
type TokenEvent struct {
	ent.Schema
}

func (TokenEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TokenEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("debit, credit, or reconcile"),
		field.Int("amount").
			Comment("Tokens moved; for reconcile this is the authoritative balance"),
		field.Int("balance_after").
			Comment("Local balance after the mutation"),
		field.String("session_id").
			Default("").
			Comment("Session that triggered the mutation, if any"),
		field.String("reason").NotEmpty(),
	}
}

func (TokenEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("action"),
		index.Fields("session_id"),
	}
}
