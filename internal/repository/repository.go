package repository

import (
	"database/sql"
	"fmt"

	"github.com/zakatech/zakat-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO zakat.users (email, full_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Email, user.FullName, user.Role, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, full_name, role, password_hash, created_at
		FROM zakat.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Email, &user.FullName, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by ID
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, full_name, role, password_hash, created_at
		FROM zakat.users
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Email, &user.FullName, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CountUsers returns the number of registered users
func (r *Repository) CountUsers() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM zakat.users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// GetProfile retrieves the financial profile for a user
func (r *Repository) GetProfile(userID int64) (*models.DonorProfile, error) {
	p := &models.DonorProfile{}
	var haulStart, lastPayment, updatedAt sql.NullString
	query := `
		SELECT donor_id, age, income, savings, gold_value, investment_value,
		       family_size, employment_status, contribution_score,
		       haul_start_date, last_payment_date, updated_at
		FROM zakat.user_profiles
		WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(
		&p.DonorID, &p.Age, &p.Income, &p.Savings, &p.GoldValue, &p.InvestmentValue,
		&p.FamilySize, &p.EmploymentStatus, &p.ContributionScore,
		&haulStart, &lastPayment, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.HaulStartDate = haulStart.String
	p.LastPaymentDate = lastPayment.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}

// UpsertProfile creates or replaces the financial profile for a user. A new
// submission supersedes the previous one; profiles are never deleted.
func (r *Repository) UpsertProfile(userID int64, p *models.DonorProfile) error {
	query := `
		INSERT INTO zakat.user_profiles
			(user_id, donor_id, age, income, savings, gold_value, investment_value,
			 family_size, employment_status, contribution_score,
			 haul_start_date, last_payment_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			income = EXCLUDED.income,
			savings = EXCLUDED.savings,
			gold_value = EXCLUDED.gold_value,
			investment_value = EXCLUDED.investment_value,
			family_size = EXCLUDED.family_size,
			employment_status = EXCLUDED.employment_status,
			contribution_score = EXCLUDED.contribution_score,
			haul_start_date = EXCLUDED.haul_start_date,
			last_payment_date = EXCLUDED.last_payment_date,
			updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.Exec(query, userID, p.DonorID, p.Age, p.Income, p.Savings, p.GoldValue,
		p.InvestmentValue, p.FamilySize, p.EmploymentStatus, p.ContributionScore,
		p.HaulStartDate, p.LastPaymentDate)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// AddContribution records a new contribution. Contributions are immutable
// once recorded.
func (r *Repository) AddContribution(c *models.Contribution) error {
	query := `
		INSERT INTO zakat.contributions (user_id, amount, payment_date, year, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, c.UserID, c.Amount, c.PaymentDate, c.Year, c.Notes).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add contribution: %w", err)
	}
	return nil
}

// ListContributions returns a user's contributions, newest year first
func (r *Repository) ListContributions(userID int64) ([]models.Contribution, error) {
	query := `
		SELECT id, user_id, amount, payment_date, year, COALESCE(notes, ''), created_at
		FROM zakat.contributions
		WHERE user_id = $1
		ORDER BY year DESC, payment_date DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var out []models.Contribution
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.UserID, &c.Amount, &c.PaymentDate, &c.Year, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MonthlyCollectionSeries aggregates all contributions into an ascending
// monthly series for the forecasting engine.
func (r *Repository) MonthlyCollectionSeries() ([]models.ContributionPoint, error) {
	query := `
		SELECT to_char(date_trunc('month', payment_date::date), 'YYYY-MM-DD'), SUM(amount)
		FROM zakat.contributions
		GROUP BY 1
		ORDER BY 1 ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate collections: %w", err)
	}
	defer rows.Close()

	var series []models.ContributionPoint
	for rows.Next() {
		var p models.ContributionPoint
		if err := rows.Scan(&p.Period, &p.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan collection point: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// ListDonors returns all donor analytics records
func (r *Repository) ListDonors() ([]models.DonorRecord, error) {
	query := `
		SELECT donor_id, age, income, savings, gold_value, investment_value,
		       family_size, employment_status, contribution_score,
		       COALESCE(to_char(haul_start_date, 'YYYY-MM-DD'), ''),
		       COALESCE(to_char(last_payment_date, 'YYYY-MM-DD'), ''),
		       COALESCE(donor_tier, ''), zakat_amount
		FROM zakat.donors
		ORDER BY donor_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	defer rows.Close()

	var out []models.DonorRecord
	for rows.Next() {
		var d models.DonorRecord
		if err := rows.Scan(&d.DonorID, &d.Age, &d.Income, &d.Savings, &d.GoldValue,
			&d.InvestmentValue, &d.FamilySize, &d.EmploymentStatus, &d.ContributionScore,
			&d.HaulStartDate, &d.LastPaymentDate, &d.Tier, &d.ZakatAmount); err != nil {
			return nil, fmt.Errorf("failed to scan donor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDonorTiers stores freshly computed tier assignments after a
// segmentation run
func (r *Repository) UpdateDonorTiers(tiers map[string]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tier update: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE zakat.donors SET donor_tier = $1 WHERE donor_id = $2`)
	if err != nil {
		return fmt.Errorf("failed to prepare tier update: %w", err)
	}
	defer stmt.Close()

	for donorID, tier := range tiers {
		if _, err := stmt.Exec(tier, donorID); err != nil {
			return fmt.Errorf("failed to update tier for %s: %w", donorID, err)
		}
	}
	return tx.Commit()
}

// HaulReminderTarget pairs a user's contact details with their Haul start date.
type HaulReminderTarget struct {
	Email         string
	FullName      string
	HaulStartDate string
}

// ListHaulReminderTargets returns users with a Haul start date on record
func (r *Repository) ListHaulReminderTargets() ([]HaulReminderTarget, error) {
	query := `
		SELECT u.email, u.full_name, to_char(p.haul_start_date, 'YYYY-MM-DD')
		FROM zakat.users u
		JOIN zakat.user_profiles p ON p.user_id = u.id
		WHERE p.haul_start_date IS NOT NULL`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder targets: %w", err)
	}
	defer rows.Close()

	var out []HaulReminderTarget
	for rows.Next() {
		var t HaulReminderTarget
		if err := rows.Scan(&t.Email, &t.FullName, &t.HaulStartDate); err != nil {
			return nil, fmt.Errorf("failed to scan reminder target: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
