package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			name,
			surname,
			username,
			email,
			password,
			profile_picture,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:surname,
			:username,
			:email,
			:password,
			:profile_picture,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT id, name, surname, username, email, password, profile_picture, created_at, updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT id, name, surname, username, email, password, profile_picture, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByUsername = `
		SELECT id, name, surname, username, email, password, profile_picture, created_at, updated_at
		FROM users
		WHERE username = :username
	`

	queryGetAllUsers = `
		SELECT id, name, surname, username, email, profile_picture, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	queryUpdateProfile = `
		UPDATE users
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			surname = CASE WHEN :surname = '' THEN surname ELSE :surname END,
			profile_picture = CASE WHEN :profile_picture = '' THEN profile_picture ELSE :profile_picture END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateProfilePicture = `
		UPDATE users
		SET profile_picture = :profile_picture,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCommentsOnUserPosts = `
		DELETE FROM comments
		WHERE post_id IN (SELECT id FROM blog_posts WHERE author_id = :author_id)
	`

	queryDeleteCommentsByAuthor = `
		DELETE FROM comments
		WHERE author_id = :author_id
	`

	queryDeletePostsByAuthor = `
		DELETE FROM blog_posts
		WHERE author_id = :author_id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
