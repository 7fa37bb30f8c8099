package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gestionprojet/backend/internal/models"
)

// userRepository implements user data access on top of the users table
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (cin, nom, email, password, role, poste, num_tele)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.CIN,
		user.Nom,
		user.Email,
		user.PasswordHash,
		user.Role,
		nullString(user.Poste),
		nullString(user.NumTele),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByCIN retrieves a user by CIN
func (r *userRepository) GetByCIN(ctx context.Context, cin string) (*models.User, error) {
	query := `
		SELECT cin, nom, email, password, role, poste, num_tele, image_url
		FROM users
		WHERE cin = ?
	`

	user := &models.User{}
	var poste, numTele, imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, cin).Scan(
		&user.CIN,
		&user.Nom,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&poste,
		&numTele,
		&imageURL,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by cin: %w", err)
	}

	user.Poste = poste.String
	user.NumTele = numTele.String
	user.ImageURL = imageURL.String
	return user, nil
}

// ExistsByCINOrEmail checks if a user exists with the given CIN or email
func (r *userRepository) ExistsByCINOrEmail(ctx context.Context, cin, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE cin = ? OR email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, cin, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// EmailTakenByOther checks if the email belongs to a user other than cin
func (r *userRepository) EmailTakenByOther(ctx context.Context, email, cin string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ? AND cin != ?)`

	var taken bool
	err := r.db.QueryRowContext(ctx, query, email, cin).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return taken, nil
}

// GetAll retrieves all users without their password hashes, ordered by role
// then name
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT cin, nom, email, role, poste, num_tele, image_url
		FROM users
		ORDER BY role, nom
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var poste, numTele, imageURL sql.NullString
		if err := rows.Scan(&user.CIN, &user.Nom, &user.Email, &user.Role, &poste, &numTele, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Poste = poste.String
		user.NumTele = numTele.String
		user.ImageURL = imageURL.String
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Update merges the updatable admin-managed fields of a user
func (r *userRepository) Update(ctx context.Context, cin string, req *models.UpdateUserRequest) error {
	query := `
		UPDATE users
		SET nom = ?, email = ?, role = ?, poste = ?, num_tele = ?
		WHERE cin = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		req.Nom,
		req.Email,
		req.Role,
		nullString(req.Poste),
		nullString(req.NumTele),
		cin,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Delete removes a user by CIN
func (r *userRepository) Delete(ctx context.Context, cin string) error {
	query := `DELETE FROM users WHERE cin = ?`

	result, err := r.db.ExecContext(ctx, query, cin)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordHash replaces a user's password hash
func (r *userRepository) UpdatePasswordHash(ctx context.Context, cin, passwordHash string) error {
	query := `UPDATE users SET password = ? WHERE cin = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, cin); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// UpdateImageURL replaces a user's profile image reference
func (r *userRepository) UpdateImageURL(ctx context.Context, cin, imageURL string) error {
	query := `UPDATE users SET image_url = ? WHERE cin = ?`

	if _, err := r.db.ExecContext(ctx, query, imageURL, cin); err != nil {
		return fmt.Errorf("failed to update image url: %w", err)
	}

	return nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// nullString converts an empty string to a SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
