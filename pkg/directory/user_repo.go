package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planbord/planbord/internal/fault"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	CreateUser(ctx context.Context, user User) (int, error)
	DeleteUser(ctx context.Context, username string) error
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

// FindByUsername matches the username exactly and case-sensitively. The
// username column is unique; ORDER BY id keeps the answer deterministic
// should that constraint ever be relaxed.
func (u *UserRepoImpl) FindByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT id, username, display_name, email, phone FROM users WHERE username = $1 ORDER BY id LIMIT 1`

	var user User
	var phone sql.NullString
	err := u.db.QueryRow(ctx, query, username).
		Scan(
			&user.Id,
			&user.Username,
			&user.DisplayName,
			&user.Email,
			&phone,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Infof("user with username %s not found", username)
		return User{}, fault.Errorf(fault.UserNotFound, "user %q not found", username)
	} else if err != nil {
		log.Errorf("failed to query user: %v", err)
		return User{}, fault.New(fault.DirectoryUnavailable, "directory lookup", err)
	}
	if phone.Valid {
		user.Phone = phone.String
	}
	return user, nil
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (username, display_name, email, phone) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := u.db.QueryRow(ctx, query,
		user.Username,
		user.DisplayName,
		user.Email,
		user.Phone,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, fault.New(fault.DirectoryUnavailable, "directory insert", err)
	}
	return id, nil
}

func (u *UserRepoImpl) DeleteUser(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`
	result, err := u.db.Exec(ctx, query, username)
	if err != nil {
		log.Errorf("failed to delete user: %v", err)
		return fault.New(fault.DirectoryUnavailable, "directory delete", err)
	}
	if result.RowsAffected() == 0 {
		log.Info("no rows affected of deleting user")
		return fault.Errorf(fault.UserNotFound, "user %q not found", username)
	}
	return nil
}
