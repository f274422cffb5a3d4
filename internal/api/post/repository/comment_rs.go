package postRepository

import (
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
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

func (r *commentsRepository) GetCommentsByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
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
		}).Error("Database error when fetching comments for post")
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, makeComment(row))
	}
	return comments, nil
}

func (r *commentsRepository) DeleteCommentsByPost(ctx context.Context, postID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryDeleteCommentsByPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByPost named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting comments for post")
		return err
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
