package postRepository

const (
	queryCreatePost = `
		INSERT INTO blog_posts (
			id,
			title,
			content,
			author_id,
			image_urls,
			video_urls,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:author_id,
			:image_urls,
			:video_urls,
			:created_at,
			:updated_at
		)
	`

	queryGetPostByID = `
		SELECT
			p.id,
			p.title,
			p.content,
			p.author_id,
			p.image_urls,
			p.video_urls,
			p.created_at,
			p.updated_at,
			u.name AS author_name,
			u.surname AS author_surname,
			u.username AS author_username,
			u.email AS author_email,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = :id
	`

	queryGetAllPosts = `
		SELECT
			p.id,
			p.title,
			p.content,
			p.author_id,
			p.image_urls,
			p.video_urls,
			p.created_at,
			p.updated_at,
			u.name AS author_name,
			u.surname AS author_surname,
			u.username AS author_username,
			u.email AS author_email,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`

	queryGetPostsByAuthor = `
		SELECT
			p.id,
			p.title,
			p.content,
			p.author_id,
			p.image_urls,
			p.video_urls,
			p.created_at,
			p.updated_at,
			u.name AS author_name,
			u.surname AS author_surname,
			u.username AS author_username,
			u.email AS author_email,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = :author_id
		ORDER BY p.created_at DESC
	`

	queryGetPostAuthorAndMedia = `
		SELECT
			author_id,
			image_urls,
			video_urls
		FROM blog_posts
		WHERE id = :id
	`

	queryUpdatePost = `
		UPDATE blog_posts
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			content = CASE WHEN :content = '' THEN content ELSE :content END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdatePostMedia = `
		UPDATE blog_posts
		SET
			image_urls = :image_urls,
			video_urls = :video_urls,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM blog_posts
		WHERE id = :id
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

	queryDeleteCommentsByPost = `
		DELETE FROM comments
		WHERE post_id = :post_id
	`
)
