package commentRepository

import (
	"ProjectBlog/internal/api/comment"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID             sql.NullString `db:"id"`
	Content        sql.NullString `db:"content"`
	PostID         sql.NullString `db:"post_id"`
	AuthorID       sql.NullString `db:"author_id"`
	CreatedAt      time.Time      `db:"created_at"`
	AuthorName     sql.NullString `db:"author_name"`
	AuthorSurname  sql.NullString `db:"author_surname"`
	AuthorUsername sql.NullString `db:"author_username"`
	AuthorEmail    sql.NullString `db:"author_email"`
}

func (r *commentRepository) CreateComment(ctx context.Context, c entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         c.ID,
		"content":    c.Content,
		"post_id":    c.PostID,
		"author_id":  c.AuthorID,
		"created_at": c.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Comment{}, comment.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching comment")
		return entity.Comment{}, err
	}

	return makeComment(row), nil
}

func (r *commentRepository) GetCommentsByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CommentDB

	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByPost named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching comments")
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, makeComment(row))
	}
	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, id, content string) error {
	argsKV := map[string]interface{}{
		"id":      id,
		"content": content,
	}
	return r.execExpectingRow(ctx, queryUpdateComment, argsKV, "UpdateComment")
}

func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	argsKV := map[string]interface{}{
		"id": id,
	}
	return r.execExpectingRow(ctx, queryDeleteComment, argsKV, "DeleteComment")
}

func (r *commentRepository) PostExists(ctx context.Context, postID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row struct {
		Found bool `db:"found"`
	}

	argsKV := map[string]interface{}{
		"id": postID,
	}

	query, args, err := sqlx.Named(queryPostExists, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("PostExists named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when checking post existence")
		return false, err
	}

	return row.Found, nil
}

func (r *commentRepository) execExpectingRow(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) error {
	requestID := contextPkg.GetRequestID(ctx)

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
		}).Error("Database error on comment write")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func makeComment(row CommentDB) entity.Comment {
	return entity.Comment{
		ID:        row.ID.String,
		Content:   row.Content.String,
		PostID:    row.PostID.String,
		AuthorID:  row.AuthorID.String,
		CreatedAt: row.CreatedAt,
		Author: entity.Author{
			ID:       row.AuthorID.String,
			Name:     row.AuthorName.String,
			Surname:  row.AuthorSurname.String,
			Username: row.AuthorUsername.String,
			Email:    row.AuthorEmail.String,
		},
	}
}
