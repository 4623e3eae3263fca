package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("category").
			NotEmpty(),
		field.String("flavor").
			NotEmpty().
			Comment("anatomy, medicine, or challenge"),
		field.Int("question_count").
			Default(0).
			Comment("Effective question count (on start only)"),
		field.Int("attempted").
			Default(0).
			Comment("Answers recorded (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.String("outcome").
			Default("").
			Comment("completed, timeout, abandoned, or no-questions (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
