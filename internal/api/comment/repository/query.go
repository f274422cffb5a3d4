package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			content,
			post_id,
			author_id,
			created_at
		) VALUES (
			:id,
			:content,
			:post_id,
			:author_id,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			c.id,
			c.content,
			c.post_id,
			c.author_id,
			c.created_at,
			u.name AS author_name,
			u.surname AS author_surname,
			u.username AS author_username,
			u.email AS author_email
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = :id
	`

	queryGetCommentsByPost = `
		SELECT
			c.id,
			c.content,
			c.post_id,
			c.author_id,
			c.created_at,
			u.name AS author_name,
			u.surname AS author_surname,
			u.username AS author_username,
			u.email AS author_email
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = :post_id
		ORDER BY c.created_at ASC
	`

	queryUpdateComment = `
		UPDATE comments
		SET content = :content
		WHERE id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryPostExists = `
		SELECT EXISTS (
			SELECT 1 FROM blog_posts WHERE id = :id
		) AS found
	`
)
