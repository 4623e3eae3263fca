// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/ent/answerevent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/schema"
	"github.com/DDLX-svg/EdifyX-sub000/ent/sessionevent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/snapshot"
	"github.com/DDLX-svg/EdifyX-sub000/ent/syncevent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/tokenevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[2].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[3].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCategory is the schema descriptor for category field.
	sessioneventDescCategory := sessioneventFields[2].Descriptor()
	// sessionevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	sessionevent.CategoryValidator = sessioneventDescCategory.Validators[0].(func(string) error)
	// sessioneventDescFlavor is the schema descriptor for flavor field.
	sessioneventDescFlavor := sessioneventFields[3].Descriptor()
	// sessionevent.FlavorValidator is a validator for the "flavor" field. It is called by the builders before save.
	sessionevent.FlavorValidator = sessioneventDescFlavor.Validators[0].(func(string) error)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescAttempted is the schema descriptor for attempted field.
	sessioneventDescAttempted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAttempted holds the default value on creation for the attempted field.
	sessionevent.DefaultAttempted = sessioneventDescAttempted.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescOutcome is the schema descriptor for outcome field.
	sessioneventDescOutcome := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultOutcome holds the default value on creation for the outcome field.
	sessionevent.DefaultOutcome = sessioneventDescOutcome.Default.(string)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[2].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescUserID is the schema descriptor for user_id field.
	synceventDescUserID := synceventFields[0].Descriptor()
	// syncevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	syncevent.UserIDValidator = synceventDescUserID.Validators[0].(func(string) error)
	// synceventDescSessionID is the schema descriptor for session_id field.
	synceventDescSessionID := synceventFields[1].Descriptor()
	// syncevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	syncevent.SessionIDValidator = synceventDescSessionID.Validators[0].(func(string) error)
	// synceventDescState is the schema descriptor for state field.
	synceventDescState := synceventFields[4].Descriptor()
	// syncevent.StateValidator is a validator for the "state" field. It is called by the builders before save.
	syncevent.StateValidator = synceventDescState.Validators[0].(func(string) error)
	// synceventDescLastError is the schema descriptor for last_error field.
	synceventDescLastError := synceventFields[5].Descriptor()
	// syncevent.DefaultLastError holds the default value on creation for the last_error field.
	syncevent.DefaultLastError = synceventDescLastError.Default.(string)
	tokeneventMixin := schema.TokenEvent{}.Mixin()
	tokeneventMixinFields0 := tokeneventMixin[0].Fields()
	_ = tokeneventMixinFields0
	tokeneventFields := schema.TokenEvent{}.Fields()
	_ = tokeneventFields
	// tokeneventDescTimestamp is the schema descriptor for timestamp field.
	tokeneventDescTimestamp := tokeneventMixinFields0[1].Descriptor()
	// tokenevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tokenevent.DefaultTimestamp = tokeneventDescTimestamp.Default.(func() time.Time)
	// tokeneventDescUserID is the schema descriptor for user_id field.
	tokeneventDescUserID := tokeneventFields[0].Descriptor()
	// tokenevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	tokenevent.UserIDValidator = tokeneventDescUserID.Validators[0].(func(string) error)
	// tokeneventDescAction is the schema descriptor for action field.
	tokeneventDescAction := tokeneventFields[1].Descriptor()
	// tokenevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	tokenevent.ActionValidator = tokeneventDescAction.Validators[0].(func(string) error)
	// tokeneventDescSessionID is the schema descriptor for session_id field.
	tokeneventDescSessionID := tokeneventFields[4].Descriptor()
	// tokenevent.DefaultSessionID holds the default value on creation for the session_id field.
	tokenevent.DefaultSessionID = tokeneventDescSessionID.Default.(string)
	// tokeneventDescReason is the schema descriptor for reason field.
	tokeneventDescReason := tokeneventFields[5].Descriptor()
	// tokenevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	tokenevent.ReasonValidator = tokeneventDescReason.Validators[0].(func(string) error)
}
