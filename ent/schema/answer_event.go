package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session the answer belongs to"),
		field.String("question_id").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("Question category, e.g. anatomy or pharmacy"),
		field.String("kind").
			NotEmpty().
			Comment("coordinate or choice"),
		field.String("submitted").
			Comment("Submitted value: an option key or an x,y pair"),
		field.Bool("correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from question display to submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category"),
		index.Fields("correct"),
	}
}
