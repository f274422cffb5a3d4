package authRepository

import (
	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID             sql.NullString `db:"id"`
	Name           sql.NullString `db:"name"`
	Surname        sql.NullString `db:"surname"`
	Username       sql.NullString `db:"username"`
	Email          sql.NullString `db:"email"`
	Password       sql.NullString `db:"password"`
	ProfilePicture sql.NullString `db:"profile_picture"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              user.ID,
		"name":            user.Name,
		"surname":         user.Surname,
		"username":        user.Username,
		"email":           user.Email,
		"password":        user.Password,
		"profile_picture": user.ProfilePicture,
		"created_at":      user.CreatedAt,
		"updated_at":      user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

func (r *userRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Query execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var usersList []UserDB

	query, args, err := sqlx.Named(queryGetAllUsers, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &usersList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	users := make([]entity.User, 0, len(usersList))
	for _, userDB := range usersList {
		users = append(users, r.makeUser(userDB))
	}

	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              user.ID,
		"name":            user.Name,
		"surname":         user.Surname,
		"profile_picture": user.ProfilePicture,
		"updated_at":      time.Now(),
	}

	return r.execExpectingRow(ctx, queryUpdateProfile, argsKV, requestID, "UpdateProfile")
}

func (r *userRepository) UpdateProfilePicture(ctx context.Context, id string, pictureURL string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              id,
		"profile_picture": pictureURL,
		"updated_at":      time.Now(),
	}

	return r.execExpectingRow(ctx, queryUpdateProfilePicture, argsKV, requestID, "UpdateProfilePicture")
}

// DeleteUser removes the user's comments, comments on the user's posts,
// the posts, then the user row. Callers run it inside a transaction client.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	cascade := []string{
		queryDeleteCommentsOnUserPosts,
		queryDeleteCommentsByAuthor,
		queryDeletePostsByAuthor,
	}

	for _, namedQuery := range cascade {
		query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"author_id": id})
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("DeleteUser cascade named query preparation err")
			return err
		}

		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("DeleteUser cascade execution err")
			return err
		}
	}

	return r.execExpectingRow(ctx, queryDeleteUser, map[string]interface{}{"id": id}, requestID, "DeleteUser")
}

func (r *userRepository) execExpectingRow(ctx context.Context, namedQuery string, argsKV map[string]interface{}, requestID string, operation string) error {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Query execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
		}).Warn("No rows affected")
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) makeUser(user UserDB) entity.User {
	return entity.User{
		ID:             user.ID.String,
		Name:           user.Name.String,
		Surname:        user.Surname.String,
		Username:       user.Username.String,
		Email:          user.Email.String,
		Password:       user.Password.String,
		ProfilePicture: user.ProfilePicture.String,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
