package database

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"study-assistant/models"
)

// ==================== USER OPERATIONS ====================

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// AddUser registers a user and seeds the default categories. A taken
// username surfaces as a failed insert (see IsUniqueViolation).
func (r *Repository) AddUser(ctx context.Context, username, password string) (*models.User, error) {
	res, err := r.exec.Execute(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, hashPassword(password),
	)
	if err != nil {
		return nil, err
	}

	user := &models.User{ID: res.LastInsertID, Username: username}
	for _, name := range models.DefaultCategories {
		// Seeding is best effort; the executor has already logged any failure.
		_, _ = r.AddCategory(ctx, user.ID, name)
	}
	return user, nil
}

// CheckUser returns the user whose credentials match, or nil when none do.
func (r *Repository) CheckUser(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := r.exec.FetchOne(ctx,
		"SELECT user_id, username FROM users WHERE username = ? AND password_hash = ?",
		[]any{username, hashPassword(password)},
		&user.ID, &user.Username,
	)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := r.exec.FetchOne(ctx,
		"SELECT user_id, username FROM users WHERE user_id = ?",
		[]any{userID},
		&user.ID, &user.Username,
	)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user; every owned row goes with it through ON DELETE CASCADE.
func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.exec.Execute(ctx, "DELETE FROM users WHERE user_id = ?", userID)
	return err
}
