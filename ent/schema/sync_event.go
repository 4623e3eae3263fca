package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records a remote stat submission and its outcome. Failed
// submissions stay in state "pending" until replayed by `edifyx sync`,
// so local and remote counters never diverge silently.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Int("attempted"),
		field.Int("correct"),
		field.String("state").
			NotEmpty().
			Comment("sent, pending, or replayed"),
		field.String("last_error").
			Default("").
			Comment("Error from the most recent submission attempt"),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("state"),
		index.Fields("session_id"),
	}
}
