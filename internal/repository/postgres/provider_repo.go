package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"faena/internal/domain"
	"faena/internal/port"
)

// categorySeparator joins the category list into a single text column.
const categorySeparator = ";"

type providerRepo struct {
	db *sqlx.DB
}

// NewProviderRepo creates a new PostgreSQL-backed ProviderRepository.
func NewProviderRepo(db *sqlx.DB) port.ProviderRepository {
	return &providerRepo{db: db}
}

// providerRow is the flat table shape of a ProviderRecord.
type providerRow struct {
	ID               string    `db:"id"`
	TaxID            string    `db:"tax_id"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	SecondLastName   string    `db:"second_last_name"`
	FullName         string    `db:"full_name"`
	Profession       string    `db:"profession"`
	RegistrationDate string    `db:"registration_date"`
	Phone            string    `db:"phone"`
	Email            string    `db:"email"`
	Address          string    `db:"address"`
	Website          string    `db:"website"`
	ContactPerson    string    `db:"contact_person"`
	Categories       string    `db:"categories"`
	Description      string    `db:"description"`
	SourceFile       string    `db:"source_file"`
	SourceFormat     string    `db:"source_format"`
	ImportedAt       time.Time `db:"imported_at"`
}

func toRow(p *domain.ProviderRecord) providerRow {
	return providerRow{
		ID:               p.ID,
		TaxID:            p.TaxID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		SecondLastName:   p.SecondLastName,
		FullName:         p.FullName,
		Profession:       p.Profession,
		RegistrationDate: p.RegistrationDate,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		Website:          p.Website,
		ContactPerson:    p.ContactPerson,
		Categories:       strings.Join(p.Categories, categorySeparator),
		Description:      p.Description,
		SourceFile:       p.SourceFile,
		SourceFormat:     p.SourceFormat,
		ImportedAt:       p.ImportedAt,
	}
}

func fromRow(r *providerRow) domain.ProviderRecord {
	var categories []string
	for _, c := range strings.Split(r.Categories, categorySeparator) {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		categories = []string{domain.DefaultCategory}
	}
	return domain.ProviderRecord{
		ID:               r.ID,
		TaxID:            r.TaxID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		SecondLastName:   r.SecondLastName,
		FullName:         r.FullName,
		Profession:       r.Profession,
		RegistrationDate: r.RegistrationDate,
		Phone:            r.Phone,
		Email:            r.Email,
		Address:          r.Address,
		Website:          r.Website,
		ContactPerson:    r.ContactPerson,
		Categories:       categories,
		Description:      r.Description,
		SourceFile:       r.SourceFile,
		SourceFormat:     r.SourceFormat,
		ImportedAt:       r.ImportedAt,
	}
}

const insertProvider = `
	INSERT INTO providers (
		id, tax_id, first_name, last_name, second_last_name, full_name,
		profession, registration_date, phone, email, address, website,
		contact_person, categories, description, source_file, source_format,
		imported_at
	) VALUES (
		:id, :tax_id, :first_name, :last_name, :second_last_name, :full_name,
		:profession, :registration_date, :phone, :email, :address, :website,
		:contact_person, :categories, :description, :source_file, :source_format,
		:imported_at
	)
	ON CONFLICT (id) DO NOTHING`

func (r *providerRepo) SaveBatch(ctx context.Context, records []domain.ProviderRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin provider batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range records {
		row := toRow(&records[i])
		if _, err := tx.NamedExecContext(ctx, insertProvider, row); err != nil {
			return fmt.Errorf("insert provider %s: %w", row.ID, err)
		}
	}
	return tx.Commit()
}

func (r *providerRepo) Search(ctx context.Context, query string, limit int) ([]domain.ProviderRecord, int, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + strings.TrimSpace(query) + "%"

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM providers
		 WHERE full_name ILIKE $1 OR tax_id ILIKE $1 OR profession ILIKE $1`, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("count providers: %w", err)
	}

	var rows []providerRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT * FROM providers
		 WHERE full_name ILIKE $1 OR tax_id ILIKE $1 OR profession ILIKE $1
		 ORDER BY full_name
		 LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("search providers: %w", err)
	}

	records := make([]domain.ProviderRecord, 0, len(rows))
	for i := range rows {
		records = append(records, fromRow(&rows[i]))
	}
	return records, total, nil
}

func (r *providerRepo) List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM providers`); err != nil {
		return nil, 0, fmt.Errorf("count providers: %w", err)
	}

	var rows []providerRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM providers ORDER BY full_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers: %w", err)
	}

	records := make([]domain.ProviderRecord, 0, len(rows))
	for i := range rows {
		records = append(records, fromRow(&rows[i]))
	}
	return records, total, nil
}
