package repository

import (
	"context"
	"time"

	"formgate/internal/db/ent"
	"formgate/internal/db/ent/contact"
	"formgate/internal/models"

	"github.com/google/uuid"
)

// contactRepository implements ContactRepository interface
type contactRepository struct {
	client *ent.Client
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(client *ent.Client) ContactRepository {
	return &contactRepository{
		client: client,
	}
}

func (r *contactRepository) Create(ctx context.Context, input models.CreateContactInput) (*models.Contact, error) {
	builder := r.client.Contact.Create().
		SetName(input.Name).
		SetEmail(input.Email).
		SetPhone(input.Phone).
		SetCountryCode(input.CountryCode).
		SetCompany(input.Company).
		SetSubject(input.Subject).
		SetServiceInterest(input.ServiceInterest).
		SetBudgetRange(input.BudgetRange).
		SetMessage(input.Message).
		SetIPAddress(input.IPAddress).
		SetUserAgent(input.UserAgent)

	if input.CaptchaScore != nil {
		builder = builder.SetCaptchaScore(*input.CaptchaScore)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}
	return toModel(row), nil
}

func (r *contactRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	row, err := r.client.Contact.Query().
		Where(contact.UUID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toModel(row), nil
}

func (r *contactRepository) List(ctx context.Context, offset, limit int) ([]*models.Contact, error) {
	rows, err := r.client.Contact.Query().
		Order(ent.Desc(contact.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]*models.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, toModel(row))
	}
	return contacts, nil
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.Contact.Query().Count(ctx)
	return int64(count), err
}

func (r *contactRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return r.client.Contact.Delete().
		Where(contact.CreatedAtLT(cutoff)).
		Exec(ctx)
}

// toModel maps a generated ent row to the domain model
func toModel(row *ent.Contact) *models.Contact {
	return &models.Contact{
		ID:              row.ID,
		UUID:            row.UUID,
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		CountryCode:     row.CountryCode,
		Company:         row.Company,
		Subject:         row.Subject,
		ServiceInterest: row.ServiceInterest,
		BudgetRange:     row.BudgetRange,
		Message:         row.Message,
		CaptchaScore:    row.CaptchaScore,
		IPAddress:       row.IPAddress,
		UserAgent:       row.UserAgent,
		CreatedAt:       row.CreatedAt,
	}
}
