package store

import (
	"fmt"

	"github.com/MKhiriev/agil-auth/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"user_id",
	"email",
	"username",
	"password_hash",
	"full_name",
	"phone",
	"created_at",
}

// buildCreateUserQuery builds the INSERT for a fully populated user.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Email,
			user.Username,
			user.PasswordHash,
			user.FullName,
			user.Phone,
			user.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByEmailQuery builds the lookup by normalized email.
func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
