// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/DDLX-svg/EdifyX-sub000/ent/predicate"
	"github.com/DDLX-svg/EdifyX-sub000/ent/tokenevent"
)

// TokenEventUpdate is the builder for updating TokenEvent entities.
type TokenEventUpdate struct {
	config
	hooks    []Hook
	mutation *TokenEventMutation
}

// Where appends a list predicates to the TokenEventUpdate builder.
func (_u *TokenEventUpdate) Where(ps ...predicate.TokenEvent) *TokenEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TokenEventUpdate) SetUserID(v string) *TokenEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableUserID(v *string) *TokenEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TokenEventUpdate) SetAction(v string) *TokenEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableAction(v *string) *TokenEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TokenEventUpdate) SetAmount(v int) *TokenEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableAmount(v *int) *TokenEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TokenEventUpdate) AddAmount(v int) *TokenEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *TokenEventUpdate) SetBalanceAfter(v int) *TokenEventUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableBalanceAfter(v *int) *TokenEventUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *TokenEventUpdate) AddBalanceAfter(v int) *TokenEventUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TokenEventUpdate) SetSessionID(v string) *TokenEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableSessionID(v *string) *TokenEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TokenEventUpdate) SetReason(v string) *TokenEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TokenEventUpdate) SetNillableReason(v *string) *TokenEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the TokenEventMutation object of the builder.
func (_u *TokenEventUpdate) Mutation() *TokenEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := tokenevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tokenevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := tokenevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenevent.Table, tokenevent.Columns, sqlgraph.NewFieldSpec(tokenevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tokenevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tokenevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(tokenevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(tokenevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(tokenevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(tokenevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tokenevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tokenevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenEventUpdateOne is the builder for updating a single TokenEvent entity.
type TokenEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *TokenEventUpdateOne) SetUserID(v string) *TokenEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableUserID(v *string) *TokenEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TokenEventUpdateOne) SetAction(v string) *TokenEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableAction(v *string) *TokenEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TokenEventUpdateOne) SetAmount(v int) *TokenEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableAmount(v *int) *TokenEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TokenEventUpdateOne) AddAmount(v int) *TokenEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *TokenEventUpdateOne) SetBalanceAfter(v int) *TokenEventUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableBalanceAfter(v *int) *TokenEventUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *TokenEventUpdateOne) AddBalanceAfter(v int) *TokenEventUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TokenEventUpdateOne) SetSessionID(v string) *TokenEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableSessionID(v *string) *TokenEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TokenEventUpdateOne) SetReason(v string) *TokenEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TokenEventUpdateOne) SetNillableReason(v *string) *TokenEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the TokenEventMutation object of the builder.
func (_u *TokenEventUpdateOne) Mutation() *TokenEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenEventUpdate builder.
func (_u *TokenEventUpdateOne) Where(ps ...predicate.TokenEvent) *TokenEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenEventUpdateOne) Select(field string, fields ...string) *TokenEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenEvent entity.
func (_u *TokenEventUpdateOne) Save(ctx context.Context) (*TokenEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenEventUpdateOne) SaveX(ctx context.Context) *TokenEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := tokenevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tokenevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := tokenevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TokenEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenEventUpdateOne) sqlSave(ctx context.Context) (_node *TokenEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenevent.Table, tokenevent.Columns, sqlgraph.NewFieldSpec(tokenevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenevent.FieldID)
		for _, f := range fields {
			if !tokenevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tokenevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tokenevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(tokenevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(tokenevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(tokenevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(tokenevent.FieldBalanceAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tokenevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tokenevent.FieldReason, field.TypeString, value)
	}
	_node = &TokenEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
