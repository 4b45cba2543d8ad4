// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "uuid", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "country_code", Type: field.TypeString, Default: ""},
		{Name: "company", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "subject", Type: field.TypeString},
		{Name: "service_interest", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "budget_range", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "captcha_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[5]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactsTable,
	}
)

func init() {
}
