package postRepository

import (
	"ProjectBlog/internal/api/post"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type PostDB struct {
	ID             sql.NullString `db:"id"`
	Title          sql.NullString `db:"title"`
	Content        sql.NullString `db:"content"`
	AuthorID       sql.NullString `db:"author_id"`
	ImageURLs      pq.StringArray `db:"image_urls"`
	VideoURLs      pq.StringArray `db:"video_urls"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	AuthorName     sql.NullString `db:"author_name"`
	AuthorSurname  sql.NullString `db:"author_surname"`
	AuthorUsername sql.NullString `db:"author_username"`
	AuthorEmail    sql.NullString `db:"author_email"`
	CommentCount   int            `db:"comment_count"`
}

func (r *postsRepository) CreatePost(ctx context.Context, p entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"author_id":  p.AuthorID,
		"image_urls": pq.StringArray(p.ImageURLs),
		"video_urls": pq.StringArray(p.VideoURLs),
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePost")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog post")
		return err
	}

	return nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row PostDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPostByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID named query preparation err")
		return entity.BlogPost{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.BlogPost{}, post.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching blog post")
		return entity.BlogPost{}, err
	}

	return makePost(row), nil
}

// GetPostAuthorAndMedia fetches only what ownership checks and media edits
// need, without the author join.
func (r *postsRepository) GetPostAuthorAndMedia(ctx context.Context, id string) (string, []string, []string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row struct {
		AuthorID  sql.NullString `db:"author_id"`
		ImageURLs pq.StringArray `db:"image_urls"`
		VideoURLs pq.StringArray `db:"video_urls"`
	}

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPostAuthorAndMedia, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostAuthorAndMedia named query preparation err")
		return "", nil, nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, nil, post.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching blog post media")
		return "", nil, nil, err
	}

	return row.AuthorID.String, []string(row.ImageURLs), []string(row.VideoURLs), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return r.selectPosts(ctx, queryGetAllPosts, map[string]interface{}{}, "GetAllPosts")
}

func (r *postsRepository) GetPostsByAuthor(ctx context.Context, authorID string) ([]entity.BlogPost, error) {
	argsKV := map[string]interface{}{
		"author_id": authorID,
	}
	return r.selectPosts(ctx, queryGetPostsByAuthor, argsKV, "GetPostsByAuthor")
}

func (r *postsRepository) selectPosts(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PostDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Database error when fetching blog posts")
		return nil, err
	}

	posts := make([]entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, makePost(row))
	}
	return posts, nil
}

func (r *postsRepository) UpdatePost(ctx context.Context, p entity.BlogPost) error {
	argsKV := map[string]interface{}{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"updated_at": time.Now(),
	}
	return r.execExpectingRow(ctx, queryUpdatePost, argsKV, "UpdatePost")
}

func (r *postsRepository) UpdatePostMedia(ctx context.Context, id string, imageURLs, videoURLs pq.StringArray) error {
	argsKV := map[string]interface{}{
		"id":         id,
		"image_urls": imageURLs,
		"video_urls": videoURLs,
		"updated_at": time.Now(),
	}
	return r.execExpectingRow(ctx, queryUpdatePostMedia, argsKV, "UpdatePostMedia")
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	argsKV := map[string]interface{}{
		"id": id,
	}
	return r.execExpectingRow(ctx, queryDeletePost, argsKV, "DeletePost")
}

func (r *postsRepository) execExpectingRow(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) error {
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
		}).Error("Database error on blog post write")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func makePost(row PostDB) entity.BlogPost {
	return entity.BlogPost{
		ID:        row.ID.String,
		Title:     row.Title.String,
		Content:   row.Content.String,
		AuthorID:  row.AuthorID.String,
		ImageURLs: []string(row.ImageURLs),
		VideoURLs: []string(row.VideoURLs),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Author: entity.Author{
			ID:       row.AuthorID.String,
			Name:     row.AuthorName.String,
			Surname:  row.AuthorSurname.String,
			Username: row.AuthorUsername.String,
			Email:    row.AuthorEmail.String,
		},
		CommentCount: row.CommentCount,
	}
}
