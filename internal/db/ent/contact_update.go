// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"formgate/internal/db/ent/contact"
	"formgate/internal/db/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (cu *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *ContactUpdate) SetUpdatedAt(t time.Time) *ContactUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetName sets the "name" field.
func (cu *ContactUpdate) SetName(s string) *ContactUpdate {
	cu.mutation.SetName(s)
	return cu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableName(s *string) *ContactUpdate {
	if s != nil {
		cu.SetName(*s)
	}
	return cu
}

// SetEmail sets the "email" field.
func (cu *ContactUpdate) SetEmail(s string) *ContactUpdate {
	cu.mutation.SetEmail(s)
	return cu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableEmail(s *string) *ContactUpdate {
	if s != nil {
		cu.SetEmail(*s)
	}
	return cu
}

// SetPhone sets the "phone" field.
func (cu *ContactUpdate) SetPhone(s string) *ContactUpdate {
	cu.mutation.SetPhone(s)
	return cu
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (cu *ContactUpdate) SetNillablePhone(s *string) *ContactUpdate {
	if s != nil {
		cu.SetPhone(*s)
	}
	return cu
}

// SetCountryCode sets the "country_code" field.
func (cu *ContactUpdate) SetCountryCode(s string) *ContactUpdate {
	cu.mutation.SetCountryCode(s)
	return cu
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableCountryCode(s *string) *ContactUpdate {
	if s != nil {
		cu.SetCountryCode(*s)
	}
	return cu
}

// SetCompany sets the "company" field.
func (cu *ContactUpdate) SetCompany(s string) *ContactUpdate {
	cu.mutation.SetCompany(s)
	return cu
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableCompany(s *string) *ContactUpdate {
	if s != nil {
		cu.SetCompany(*s)
	}
	return cu
}

// ClearCompany clears the value of the "company" field.
func (cu *ContactUpdate) ClearCompany() *ContactUpdate {
	cu.mutation.ClearCompany()
	return cu
}

// SetSubject sets the "subject" field.
func (cu *ContactUpdate) SetSubject(s string) *ContactUpdate {
	cu.mutation.SetSubject(s)
	return cu
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableSubject(s *string) *ContactUpdate {
	if s != nil {
		cu.SetSubject(*s)
	}
	return cu
}

// SetServiceInterest sets the "service_interest" field.
func (cu *ContactUpdate) SetServiceInterest(s string) *ContactUpdate {
	cu.mutation.SetServiceInterest(s)
	return cu
}

// SetNillableServiceInterest sets the "service_interest" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableServiceInterest(s *string) *ContactUpdate {
	if s != nil {
		cu.SetServiceInterest(*s)
	}
	return cu
}

// ClearServiceInterest clears the value of the "service_interest" field.
func (cu *ContactUpdate) ClearServiceInterest() *ContactUpdate {
	cu.mutation.ClearServiceInterest()
	return cu
}

// SetBudgetRange sets the "budget_range" field.
func (cu *ContactUpdate) SetBudgetRange(s string) *ContactUpdate {
	cu.mutation.SetBudgetRange(s)
	return cu
}

// SetNillableBudgetRange sets the "budget_range" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableBudgetRange(s *string) *ContactUpdate {
	if s != nil {
		cu.SetBudgetRange(*s)
	}
	return cu
}

// ClearBudgetRange clears the value of the "budget_range" field.
func (cu *ContactUpdate) ClearBudgetRange() *ContactUpdate {
	cu.mutation.ClearBudgetRange()
	return cu
}

// SetMessage sets the "message" field.
func (cu *ContactUpdate) SetMessage(s string) *ContactUpdate {
	cu.mutation.SetMessage(s)
	return cu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableMessage(s *string) *ContactUpdate {
	if s != nil {
		cu.SetMessage(*s)
	}
	return cu
}

// SetCaptchaScore sets the "captcha_score" field.
func (cu *ContactUpdate) SetCaptchaScore(f float64) *ContactUpdate {
	cu.mutation.ResetCaptchaScore()
	cu.mutation.SetCaptchaScore(f)
	return cu
}

// SetNillableCaptchaScore sets the "captcha_score" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableCaptchaScore(f *float64) *ContactUpdate {
	if f != nil {
		cu.SetCaptchaScore(*f)
	}
	return cu
}

// AddCaptchaScore adds f to the "captcha_score" field.
func (cu *ContactUpdate) AddCaptchaScore(f float64) *ContactUpdate {
	cu.mutation.AddCaptchaScore(f)
	return cu
}

// ClearCaptchaScore clears the value of the "captcha_score" field.
func (cu *ContactUpdate) ClearCaptchaScore() *ContactUpdate {
	cu.mutation.ClearCaptchaScore()
	return cu
}

// SetIPAddress sets the "ip_address" field.
func (cu *ContactUpdate) SetIPAddress(s string) *ContactUpdate {
	cu.mutation.SetIPAddress(s)
	return cu
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableIPAddress(s *string) *ContactUpdate {
	if s != nil {
		cu.SetIPAddress(*s)
	}
	return cu
}

// ClearIPAddress clears the value of the "ip_address" field.
func (cu *ContactUpdate) ClearIPAddress() *ContactUpdate {
	cu.mutation.ClearIPAddress()
	return cu
}

// SetUserAgent sets the "user_agent" field.
func (cu *ContactUpdate) SetUserAgent(s string) *ContactUpdate {
	cu.mutation.SetUserAgent(s)
	return cu
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (cu *ContactUpdate) SetNillableUserAgent(s *string) *ContactUpdate {
	if s != nil {
		cu.SetUserAgent(*s)
	}
	return cu
}

// ClearUserAgent clears the value of the "user_agent" field.
func (cu *ContactUpdate) ClearUserAgent() *ContactUpdate {
	cu.mutation.ClearUserAgent()
	return cu
}

// Mutation returns the ContactMutation object of the builder.
func (cu *ContactUpdate) Mutation() *ContactMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ContactUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ContactUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ContactUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *ContactUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

func (cu *ContactUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUint32))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := cu.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if value, ok := cu.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if value, ok := cu.mutation.CountryCode(); ok {
		_spec.SetField(contact.FieldCountryCode, field.TypeString, value)
	}
	if value, ok := cu.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if cu.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := cu.mutation.Subject(); ok {
		_spec.SetField(contact.FieldSubject, field.TypeString, value)
	}
	if value, ok := cu.mutation.ServiceInterest(); ok {
		_spec.SetField(contact.FieldServiceInterest, field.TypeString, value)
	}
	if cu.mutation.ServiceInterestCleared() {
		_spec.ClearField(contact.FieldServiceInterest, field.TypeString)
	}
	if value, ok := cu.mutation.BudgetRange(); ok {
		_spec.SetField(contact.FieldBudgetRange, field.TypeString, value)
	}
	if cu.mutation.BudgetRangeCleared() {
		_spec.ClearField(contact.FieldBudgetRange, field.TypeString)
	}
	if value, ok := cu.mutation.Message(); ok {
		_spec.SetField(contact.FieldMessage, field.TypeString, value)
	}
	if value, ok := cu.mutation.CaptchaScore(); ok {
		_spec.SetField(contact.FieldCaptchaScore, field.TypeFloat64, value)
	}
	if value, ok := cu.mutation.AddedCaptchaScore(); ok {
		_spec.AddField(contact.FieldCaptchaScore, field.TypeFloat64, value)
	}
	if cu.mutation.CaptchaScoreCleared() {
		_spec.ClearField(contact.FieldCaptchaScore, field.TypeFloat64)
	}
	if value, ok := cu.mutation.IPAddress(); ok {
		_spec.SetField(contact.FieldIPAddress, field.TypeString, value)
	}
	if cu.mutation.IPAddressCleared() {
		_spec.ClearField(contact.FieldIPAddress, field.TypeString)
	}
	if value, ok := cu.mutation.UserAgent(); ok {
		_spec.SetField(contact.FieldUserAgent, field.TypeString, value)
	}
	if cu.mutation.UserAgentCleared() {
		_spec.ClearField(contact.FieldUserAgent, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *ContactUpdateOne) SetUpdatedAt(t time.Time) *ContactUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetName sets the "name" field.
func (cuo *ContactUpdateOne) SetName(s string) *ContactUpdateOne {
	cuo.mutation.SetName(s)
	return cuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableName(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetName(*s)
	}
	return cuo
}

// SetEmail sets the "email" field.
func (cuo *ContactUpdateOne) SetEmail(s string) *ContactUpdateOne {
	cuo.mutation.SetEmail(s)
	return cuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableEmail(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetEmail(*s)
	}
	return cuo
}

// SetPhone sets the "phone" field.
func (cuo *ContactUpdateOne) SetPhone(s string) *ContactUpdateOne {
	cuo.mutation.SetPhone(s)
	return cuo
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillablePhone(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetPhone(*s)
	}
	return cuo
}

// SetCountryCode sets the "country_code" field.
func (cuo *ContactUpdateOne) SetCountryCode(s string) *ContactUpdateOne {
	cuo.mutation.SetCountryCode(s)
	return cuo
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableCountryCode(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetCountryCode(*s)
	}
	return cuo
}

// SetCompany sets the "company" field.
func (cuo *ContactUpdateOne) SetCompany(s string) *ContactUpdateOne {
	cuo.mutation.SetCompany(s)
	return cuo
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableCompany(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetCompany(*s)
	}
	return cuo
}

// ClearCompany clears the value of the "company" field.
func (cuo *ContactUpdateOne) ClearCompany() *ContactUpdateOne {
	cuo.mutation.ClearCompany()
	return cuo
}

// SetSubject sets the "subject" field.
func (cuo *ContactUpdateOne) SetSubject(s string) *ContactUpdateOne {
	cuo.mutation.SetSubject(s)
	return cuo
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableSubject(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetSubject(*s)
	}
	return cuo
}

// SetServiceInterest sets the "service_interest" field.
func (cuo *ContactUpdateOne) SetServiceInterest(s string) *ContactUpdateOne {
	cuo.mutation.SetServiceInterest(s)
	return cuo
}

// SetNillableServiceInterest sets the "service_interest" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableServiceInterest(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetServiceInterest(*s)
	}
	return cuo
}

// ClearServiceInterest clears the value of the "service_interest" field.
func (cuo *ContactUpdateOne) ClearServiceInterest() *ContactUpdateOne {
	cuo.mutation.ClearServiceInterest()
	return cuo
}

// SetBudgetRange sets the "budget_range" field.
func (cuo *ContactUpdateOne) SetBudgetRange(s string) *ContactUpdateOne {
	cuo.mutation.SetBudgetRange(s)
	return cuo
}

// SetNillableBudgetRange sets the "budget_range" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableBudgetRange(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetBudgetRange(*s)
	}
	return cuo
}

// ClearBudgetRange clears the value of the "budget_range" field.
func (cuo *ContactUpdateOne) ClearBudgetRange() *ContactUpdateOne {
	cuo.mutation.ClearBudgetRange()
	return cuo
}

// SetMessage sets the "message" field.
func (cuo *ContactUpdateOne) SetMessage(s string) *ContactUpdateOne {
	cuo.mutation.SetMessage(s)
	return cuo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableMessage(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetMessage(*s)
	}
	return cuo
}

// SetCaptchaScore sets the "captcha_score" field.
func (cuo *ContactUpdateOne) SetCaptchaScore(f float64) *ContactUpdateOne {
	cuo.mutation.ResetCaptchaScore()
	cuo.mutation.SetCaptchaScore(f)
	return cuo
}

// SetNillableCaptchaScore sets the "captcha_score" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableCaptchaScore(f *float64) *ContactUpdateOne {
	if f != nil {
		cuo.SetCaptchaScore(*f)
	}
	return cuo
}

// AddCaptchaScore adds f to the "captcha_score" field.
func (cuo *ContactUpdateOne) AddCaptchaScore(f float64) *ContactUpdateOne {
	cuo.mutation.AddCaptchaScore(f)
	return cuo
}

// ClearCaptchaScore clears the value of the "captcha_score" field.
func (cuo *ContactUpdateOne) ClearCaptchaScore() *ContactUpdateOne {
	cuo.mutation.ClearCaptchaScore()
	return cuo
}

// SetIPAddress sets the "ip_address" field.
func (cuo *ContactUpdateOne) SetIPAddress(s string) *ContactUpdateOne {
	cuo.mutation.SetIPAddress(s)
	return cuo
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableIPAddress(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetIPAddress(*s)
	}
	return cuo
}

// ClearIPAddress clears the value of the "ip_address" field.
func (cuo *ContactUpdateOne) ClearIPAddress() *ContactUpdateOne {
	cuo.mutation.ClearIPAddress()
	return cuo
}

// SetUserAgent sets the "user_agent" field.
func (cuo *ContactUpdateOne) SetUserAgent(s string) *ContactUpdateOne {
	cuo.mutation.SetUserAgent(s)
	return cuo
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (cuo *ContactUpdateOne) SetNillableUserAgent(s *string) *ContactUpdateOne {
	if s != nil {
		cuo.SetUserAgent(*s)
	}
	return cuo
}

// ClearUserAgent clears the value of the "user_agent" field.
func (cuo *ContactUpdateOne) ClearUserAgent() *ContactUpdateOne {
	cuo.mutation.ClearUserAgent()
	return cuo
}

// Mutation returns the ContactMutation object of the builder.
func (cuo *ContactUpdateOne) Mutation() *ContactMutation {
	return cuo.mutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (cuo *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Contact entity.
func (cuo *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *ContactUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

func (cuo *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUint32))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if value, ok := cuo.mutation.CountryCode(); ok {
		_spec.SetField(contact.FieldCountryCode, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if cuo.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := cuo.mutation.Subject(); ok {
		_spec.SetField(contact.FieldSubject, field.TypeString, value)
	}
	if value, ok := cuo.mutation.ServiceInterest(); ok {
		_spec.SetField(contact.FieldServiceInterest, field.TypeString, value)
	}
	if cuo.mutation.ServiceInterestCleared() {
		_spec.ClearField(contact.FieldServiceInterest, field.TypeString)
	}
	if value, ok := cuo.mutation.BudgetRange(); ok {
		_spec.SetField(contact.FieldBudgetRange, field.TypeString, value)
	}
	if cuo.mutation.BudgetRangeCleared() {
		_spec.ClearField(contact.FieldBudgetRange, field.TypeString)
	}
	if value, ok := cuo.mutation.Message(); ok {
		_spec.SetField(contact.FieldMessage, field.TypeString, value)
	}
	if value, ok := cuo.mutation.CaptchaScore(); ok {
		_spec.SetField(contact.FieldCaptchaScore, field.TypeFloat64, value)
	}
	if value, ok := cuo.mutation.AddedCaptchaScore(); ok {
		_spec.AddField(contact.FieldCaptchaScore, field.TypeFloat64, value)
	}
	if cuo.mutation.CaptchaScoreCleared() {
		_spec.ClearField(contact.FieldCaptchaScore, field.TypeFloat64)
	}
	if value, ok := cuo.mutation.IPAddress(); ok {
		_spec.SetField(contact.FieldIPAddress, field.TypeString, value)
	}
	if cuo.mutation.IPAddressCleared() {
		_spec.ClearField(contact.FieldIPAddress, field.TypeString)
	}
	if value, ok := cuo.mutation.UserAgent(); ok {
		_spec.SetField(contact.FieldUserAgent, field.TypeString, value)
	}
	if cuo.mutation.UserAgentCleared() {
		_spec.ClearField(contact.FieldUserAgent, field.TypeString)
	}
	_node = &Contact{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
