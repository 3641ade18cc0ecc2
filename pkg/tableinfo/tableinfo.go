package tableinfo

const (
	UsersTableName = "users"

	UserIDColumn           = "id"
	UserUsernameColumn     = "username"
	UserPasswordHashColumn = "password_hash"
	UserCreatedAtColumn    = "created_at"
)

const (
	GroupsTableName = "groups"

	GroupIDColumn          = "id"
	GroupTitleColumn       = "title"
	GroupSlugColumn        = "slug"
	GroupDescriptionColumn = "description"
)

const (
	PostsTableName = "posts"

	PostIDColumn       = "id"
	PostAuthorIDColumn = "author_id"
	PostTextColumn     = "text"
	PostPubDateColumn  = "pub_date"
	PostImageColumn    = "image"
	PostGroupIDColumn  = "group_id"
)

const (
	CommentsTableName = "comments"

	CommentIDColumn       = "id"
	CommentAuthorIDColumn = "author_id"
	CommentTextColumn     = "text"
	CommentCreatedColumn  = "created"
	CommentPostIDColumn   = "post_id"
)

const (
	FollowsTableName = "follows"

	FollowIDColumn          = "id"
	FollowUserIDColumn      = "user_id"
	FollowFollowingIDColumn = "following_id"
)

// Qualified returns "table.column".
func Qualified(table, column string) string {
	return table + "." + column
}
