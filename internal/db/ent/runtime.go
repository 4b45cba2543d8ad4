// Code generated by ent, DO NOT EDIT.

package ent

import (
	"formgate/internal/db/ent/contact"
	"formgate/internal/db/ent/schema"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactMixin := schema.Contact{}.Mixin()
	contactMixinFields0 := contactMixin[0].Fields()
	_ = contactMixinFields0
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactMixinFields0[0].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactMixinFields0[1].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescUUID is the schema descriptor for uuid field.
	contactDescUUID := contactFields[1].Descriptor()
	// contact.DefaultUUID holds the default value on creation for the uuid field.
	contact.DefaultUUID = contactDescUUID.Default.(func() uuid.UUID)
	// contactDescCountryCode is the schema descriptor for country_code field.
	contactDescCountryCode := contactFields[5].Descriptor()
	// contact.DefaultCountryCode holds the default value on creation for the country_code field.
	contact.DefaultCountryCode = contactDescCountryCode.Default.(string)
	// contactDescCompany is the schema descriptor for company field.
	contactDescCompany := contactFields[6].Descriptor()
	// contact.DefaultCompany holds the default value on creation for the company field.
	contact.DefaultCompany = contactDescCompany.Default.(string)
	// contactDescServiceInterest is the schema descriptor for service_interest field.
	contactDescServiceInterest := contactFields[8].Descriptor()
	// contact.DefaultServiceInterest holds the default value on creation for the service_interest field.
	contact.DefaultServiceInterest = contactDescServiceInterest.Default.(string)
	// contactDescBudgetRange is the schema descriptor for budget_range field.
	contactDescBudgetRange := contactFields[9].Descriptor()
	// contact.DefaultBudgetRange holds the default value on creation for the budget_range field.
	contact.DefaultBudgetRange = contactDescBudgetRange.Default.(string)
}
